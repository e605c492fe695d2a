package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"
	"lingua_edu_backend/pkg/logger"
	"lingua_edu_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressInput is a progress write as submitted by the client. The
// Completed flag is advisory only: completion is recomputed from the
// score against the pass threshold before anything is stored.
type ProgressInput struct {
	LessonID  string
	Score     int
	Completed bool
	Progress  int
}

// ProgressSummary is the derived dashboard view over a user's records.
type ProgressSummary struct {
	CompletedCount int     `json:"completedCount"`
	AverageScore   int     `json:"averageScore"`
	TotalHours     float64 `json:"totalHours"`
}

// QuestionReview is the per-question outcome of a graded attempt.
type QuestionReview struct {
	QuestionID     string   `json:"questionId"`
	Correct        bool     `json:"correct"`
	CorrectAnswer  string   `json:"correctAnswer,omitempty"`
	CorrectAnswers []string `json:"correctAnswers,omitempty"`
}

// AttemptResult is the outcome of a server-graded quiz attempt.
type AttemptResult struct {
	Score    int              `json:"score"`
	Passed   bool             `json:"passed"`
	Review   []QuestionReview `json:"review"`
	Progress *model.Progress  `json:"progress"`
}

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	Grading      *GradingService
	Redis        *redis.Client
	CacheTTL     time.Duration
}

func NewProgressService(progressRepo *repository.ProgressRepository, grading *GradingService, rdb *redis.Client, cacheTTL time.Duration) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		Grading:      grading,
		Redis:        rdb,
		CacheTTL:     cacheTTL,
	}
}

func validateLessonID(lessonID string) error {
	if !model.ValidLessonID(lessonID) {
		return util.NewValidationError("lessonId", `Lesson ID must match pattern "lesson-1" through "lesson-6"`)
	}
	if _, ok := model.LessonByID(lessonID); !ok {
		return util.NewValidationError("lessonId", "Unknown lesson")
	}
	return nil
}

// Upsert validates and normalizes a progress write, then stores it.
// Reports whether a new record was created.
func (s *ProgressService) Upsert(userID uint, in ProgressInput) (*model.Progress, bool, error) {
	if err := validateLessonID(in.LessonID); err != nil {
		return nil, false, err
	}
	if in.Score < 0 || in.Score > 100 {
		return nil, false, util.NewValidationError("score", "must be between 0 and 100")
	}
	if in.Progress < 0 || in.Progress > 100 {
		return nil, false, util.NewValidationError("progress", "must be between 0 and 100")
	}

	// Server-authoritative completion: derived from the score, never
	// taken from the client. Progress mirrors the score until the
	// lesson completes, then pins at 100.
	completed := s.Grading.Passed(in.Score)
	progressPct := in.Score
	if completed {
		progressPct = 100
	}

	// Pre-read only to detect a first-time completion for the metric;
	// correctness does not depend on it.
	prior, err := s.ProgressRepo.GetByUserAndLesson(userID, in.LessonID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	record, created, err := s.ProgressRepo.Upsert(userID, in.LessonID, in.Score, completed, progressPct)
	if err != nil {
		return nil, false, err
	}

	if completed && (prior == nil || !prior.Completed) {
		monitoring.LessonCompletions.WithLabelValues(in.LessonID).Inc()
	}

	s.invalidateSummary(userID)
	return record, created, nil
}

// GetAll returns the user's records, most recently updated first.
func (s *ProgressService) GetAll(userID uint) ([]model.Progress, error) {
	return s.ProgressRepo.ListByUser(userID)
}

// GetOne returns the record for one lesson.
func (s *ProgressService) GetOne(userID uint, lessonID string) (*model.Progress, error) {
	if !model.ValidLessonID(lessonID) {
		return nil, util.NewValidationError("lessonId", "Invalid lesson ID")
	}
	record, err := s.ProgressRepo.GetByUserAndLesson(userID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProgressNotFound
		}
		return nil, err
	}
	return record, nil
}

// SubmitAttempt grades a quiz submission on the server and records the
// resulting progress in one step.
func (s *ProgressService) SubmitAttempt(userID uint, lessonID string, submission model.Submission) (*AttemptResult, error) {
	if err := validateLessonID(lessonID); err != nil {
		return nil, err
	}
	lesson, _ := model.LessonByID(lessonID)

	score, err := s.Grading.Score(lesson.Quiz, submission)
	if err != nil {
		return nil, err
	}
	passed := s.Grading.Passed(score)

	review := make([]QuestionReview, 0, len(lesson.Quiz.Questions))
	for _, q := range lesson.Quiz.Questions {
		answer := submission[q.ID]
		item := QuestionReview{
			QuestionID: q.ID,
			Correct:    s.Grading.IsCorrect(q, answer),
		}
		if q.Type == model.MultipleCorrect {
			item.CorrectAnswers = q.CorrectAnswers
		} else {
			item.CorrectAnswer = q.CorrectAnswer
		}
		review = append(review, item)
	}

	record, _, err := s.Upsert(userID, ProgressInput{
		LessonID:  lessonID,
		Score:     score,
		Completed: passed,
		Progress:  score,
	})
	if err != nil {
		return nil, err
	}

	monitoring.QuizSubmissions.WithLabelValues(lessonID, strconv.FormatBool(passed)).Inc()

	return &AttemptResult{
		Score:    score,
		Passed:   passed,
		Review:   review,
		Progress: record,
	}, nil
}

// Summary derives dashboard statistics from the user's full record set.
// Empty progress is a zero summary, not an error. Results are cached in
// Redis for a short TTL and invalidated on every write.
func (s *ProgressService) Summary(userID uint) (*ProgressSummary, error) {
	if cached := s.cachedSummary(userID); cached != nil {
		return cached, nil
	}

	records, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &ProgressSummary{}
	scoreSum := 0
	minutes := 0
	for _, record := range records {
		if !record.Completed {
			continue
		}
		summary.CompletedCount++
		scoreSum += record.Score
		if lesson, ok := model.LessonByID(record.LessonID); ok {
			minutes += lesson.Duration
		}
	}
	if summary.CompletedCount > 0 {
		summary.AverageScore = int(math.Round(float64(scoreSum) / float64(summary.CompletedCount)))
		summary.TotalHours = math.Round(float64(minutes)/60*10) / 10
	}

	s.storeSummary(userID, summary)
	return summary, nil
}

func summaryCacheKey(userID uint) string {
	return fmt.Sprintf("progress:summary:%d", userID)
}

func (s *ProgressService) cachedSummary(userID uint) *ProgressSummary {
	if s.Redis == nil {
		return nil
	}
	payload, err := s.Redis.Get(context.Background(), summaryCacheKey(userID)).Bytes()
	if err != nil {
		return nil
	}
	var summary ProgressSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *ProgressService) storeSummary(userID uint, summary *ProgressSummary) {
	if s.Redis == nil {
		return
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), summaryCacheKey(userID), payload, s.CacheTTL).Err(); err != nil {
		logger.Log.Warn("failed to cache progress summary", zap.Uint("userId", userID), zap.Error(err))
	}
}

func (s *ProgressService) invalidateSummary(userID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), summaryCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate progress summary cache", zap.Uint("userId", userID), zap.Error(err))
	}
}
