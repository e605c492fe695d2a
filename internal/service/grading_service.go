package service

import (
	"math"
	"sort"
	"strings"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/util"
)

// PassThreshold is the minimum score that marks a lesson completed.
// Applied uniformly: the server recomputes completion from the score on
// every write path instead of trusting a client-supplied flag.
const PassThreshold = 50

// GradingService evaluates answers and aggregates quiz scores. All
// methods are pure: same inputs, same outputs, no side effects.
type GradingService struct{}

func NewGradingService() *GradingService {
	return &GradingService{}
}

// IsCorrect checks a submitted answer against the question's key.
// Single-answer types match trimmed and case-insensitively; an empty
// submission never matches. Multiple-correct questions require the
// submitted set to equal the key set exactly, in any order, with no
// partial credit.
func (s *GradingService) IsCorrect(q model.Question, a model.Answer) bool {
	if q.Type == model.MultipleCorrect {
		if len(q.CorrectAnswers) == 0 || len(a.Choices) != len(q.CorrectAnswers) {
			return false
		}
		submitted := append([]string(nil), a.Choices...)
		expected := append([]string(nil), q.CorrectAnswers...)
		sort.Strings(submitted)
		sort.Strings(expected)
		for i := range submitted {
			if submitted[i] != expected[i] {
				return false
			}
		}
		return true
	}

	submitted := strings.ToLower(strings.TrimSpace(a.Text))
	if submitted == "" {
		return false
	}
	return submitted == strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
}

// Score grades a full attempt: round(100 * correct / total), half up.
// Questions missing from the submission count as incorrect. A quiz with
// zero questions is a fixture bug, not a gradable attempt.
func (s *GradingService) Score(quiz model.Quiz, submission model.Submission) (int, error) {
	total := len(quiz.Questions)
	if total == 0 {
		return 0, util.ErrEmptyQuiz
	}

	correct := 0
	for _, q := range quiz.Questions {
		if answer, ok := submission[q.ID]; ok && s.IsCorrect(q, answer) {
			correct++
		}
	}

	return int(math.Round(float64(correct) / float64(total) * 100)), nil
}

// Passed reports whether a score meets the pass threshold.
func (s *GradingService) Passed(score int) bool {
	return score >= PassThreshold
}
