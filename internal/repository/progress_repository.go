package repository

import (
	"errors"
	"time"

	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert creates or updates the record for (userID, lessonID) and
// reports whether it was created. The write is create-first: a
// concurrent duplicate insert loses on the unique index and falls
// through to the update path, so two racing submissions can never
// produce two records. completed_at is written through COALESCE and is
// therefore set at most once, on the first completing write.
func (r *ProgressRepository) Upsert(userID uint, lessonID string, score int, completed bool, progressPct int) (*model.Progress, bool, error) {
	record := &model.Progress{
		UserID:    userID,
		LessonID:  lessonID,
		Score:     score,
		Completed: completed,
		Progress:  progressPct,
	}
	if completed {
		now := time.Now()
		record.CompletedAt = &now
	}

	err := r.DB.Create(record).Error
	if err == nil {
		return record, true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, false, err
	}

	updates := map[string]interface{}{
		"score":     score,
		"completed": completed,
		"progress":  progressPct,
	}
	if completed {
		updates["completed_at"] = gorm.Expr("COALESCE(completed_at, ?)", time.Now())
	}

	result := r.DB.Model(&model.Progress{}).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Updates(updates)
	if result.Error != nil {
		return nil, false, result.Error
	}

	updated, err := r.GetByUserAndLesson(userID, lessonID)
	if err != nil {
		return nil, false, err
	}
	return updated, false, nil
}

// ListByUser returns the user's records, most recently updated first.
func (r *ProgressRepository) ListByUser(userID uint) ([]model.Progress, error) {
	var records []model.Progress
	err := r.DB.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&records).Error
	return records, err
}

func (r *ProgressRepository) GetByUserAndLesson(userID uint, lessonID string) (*model.Progress, error) {
	var record model.Progress
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
