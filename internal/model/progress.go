package model

import "time"

// Progress is the per-user, per-lesson completion record. The compound
// unique index on (user_id, lesson_id) is the sole guard against
// duplicate records; concurrent submissions for the same pair serialize
// through it rather than through application locks.
//
// swagger:model Progress
type Progress struct {
	BaseModel
	UserID      uint       `gorm:"uniqueIndex:idx_user_lesson;index;not null" json:"-"`
	LessonID    string     `gorm:"uniqueIndex:idx_user_lesson;size:20;not null" json:"lessonId"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	Score       int        `gorm:"not null" json:"score"`
	Progress    int        `gorm:"not null" json:"progress"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (Progress) TableName() string {
	return "progress"
}
