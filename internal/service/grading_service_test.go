package service

import (
	"errors"
	"fmt"
	"testing"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/util"
)

func TestIsCorrectSingleAnswer(t *testing.T) {
	g := NewGradingService()

	q := model.Question{ID: "q1", Type: model.FillInBlank, CorrectAnswer: "Bonjour"}

	cases := []struct {
		name string
		text string
		want bool
	}{
		{"exact match", "Bonjour", true},
		{"case insensitive", "bonjour", true},
		{"upper case", "BONJOUR", true},
		{"surrounding whitespace", "  bonjour  ", true},
		{"wrong answer", "salut", false},
		{"empty submission", "", false},
		{"whitespace only", "   ", false},
		{"partial answer", "bon", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.IsCorrect(q, model.Answer{Text: tc.text})
			if got != tc.want {
				t.Errorf("IsCorrect(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestIsCorrectBinaryChoice(t *testing.T) {
	g := NewGradingService()

	q := model.Question{
		ID:            "q2",
		Type:          model.BinaryChoice,
		Option1:       "Masculine",
		Option2:       "Feminine",
		CorrectAnswer: "Feminine",
	}

	if !g.IsCorrect(q, model.Answer{Text: "feminine"}) {
		t.Error("binary choice should match case-insensitively")
	}
	if g.IsCorrect(q, model.Answer{Text: "Masculine"}) {
		t.Error("wrong option should not match")
	}
}

func TestIsCorrectMultipleCorrect(t *testing.T) {
	g := NewGradingService()

	q := model.Question{
		ID:             "q3",
		Type:           model.MultipleCorrect,
		Options:        []string{"le", "la", "les", "un"},
		CorrectAnswers: []string{"le", "la", "les"},
	}

	cases := []struct {
		name    string
		choices []string
		want    bool
	}{
		{"same order", []string{"le", "la", "les"}, true},
		{"different order", []string{"les", "le", "la"}, true},
		{"missing one", []string{"le", "la"}, false},
		{"extra one", []string{"le", "la", "les", "un"}, false},
		{"same size wrong member", []string{"le", "la", "un"}, false},
		{"empty", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.IsCorrect(q, model.Answer{Choices: tc.choices})
			if got != tc.want {
				t.Errorf("IsCorrect(%v) = %v, want %v", tc.choices, got, tc.want)
			}
		})
	}
}

func TestIsCorrectMultipleCorrectEmptyKey(t *testing.T) {
	g := NewGradingService()

	// A fixture with an empty key must never grade as correct, even for
	// an empty submission.
	q := model.Question{ID: "q4", Type: model.MultipleCorrect}
	if g.IsCorrect(q, model.Answer{}) {
		t.Error("empty key and empty submission must not match")
	}
}

func quizOfSize(n int) model.Quiz {
	quiz := model.Quiz{ID: "quiz-test", Title: "Test"}
	for i := 0; i < n; i++ {
		quiz.Questions = append(quiz.Questions, model.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Type:          model.FillInBlank,
			CorrectAnswer: fmt.Sprintf("answer%d", i+1),
		})
	}
	return quiz
}

func correctAnswers(n int) model.Submission {
	sub := model.Submission{}
	for i := 0; i < n; i++ {
		sub[fmt.Sprintf("q%d", i+1)] = model.Answer{Text: fmt.Sprintf("answer%d", i+1)}
	}
	return sub
}

func TestScoreRounding(t *testing.T) {
	g := NewGradingService()

	cases := []struct {
		total   int
		correct int
		want    int
	}{
		{4, 4, 100},
		{4, 3, 75},
		{4, 0, 0},
		{3, 1, 33},
		{3, 2, 67},  // 66.67 rounds half up
		{8, 1, 13},  // 12.5 rounds half up
		{6, 5, 83},  // 83.33
		{7, 5, 71},  // 71.43
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_of_%d", tc.correct, tc.total), func(t *testing.T) {
			score, err := g.Score(quizOfSize(tc.total), correctAnswers(tc.correct))
			if err != nil {
				t.Fatalf("Score returned error: %v", err)
			}
			if score != tc.want {
				t.Errorf("Score = %d, want %d", score, tc.want)
			}
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	g := NewGradingService()

	// Answering one more question correctly never lowers the score.
	for _, total := range []int{1, 3, 4, 7, 10} {
		quiz := quizOfSize(total)
		prev := -1
		for correct := 0; correct <= total; correct++ {
			score, err := g.Score(quiz, correctAnswers(correct))
			if err != nil {
				t.Fatalf("Score returned error: %v", err)
			}
			if score < prev {
				t.Errorf("score dropped from %d to %d at %d/%d correct", prev, score, correct, total)
			}
			prev = score
		}
		if prev != 100 {
			t.Errorf("all-correct score = %d, want 100", prev)
		}
	}
}

func TestScoreUnansweredCountIncorrect(t *testing.T) {
	g := NewGradingService()

	quiz := quizOfSize(4)
	sub := correctAnswers(2)
	// A wrong answer and an absent answer score identically.
	sub["q3"] = model.Answer{Text: "nonsense"}

	score, err := g.Score(quiz, sub)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if score != 50 {
		t.Errorf("Score = %d, want 50", score)
	}
}

func TestScoreEmptyQuiz(t *testing.T) {
	g := NewGradingService()

	_, err := g.Score(model.Quiz{}, model.Submission{})
	if !errors.Is(err, util.ErrEmptyQuiz) {
		t.Errorf("expected ErrEmptyQuiz, got %v", err)
	}
}

func TestPassed(t *testing.T) {
	g := NewGradingService()

	cases := []struct {
		score int
		want  bool
	}{
		{0, false},
		{49, false},
		{50, true},
		{75, true},
		{100, true},
	}

	for _, tc := range cases {
		if got := g.Passed(tc.score); got != tc.want {
			t.Errorf("Passed(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}
