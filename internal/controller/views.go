package controller

import (
	"time"

	"lingua_edu_backend/internal/model"
)

// progressView is the wire shape of a progress record.
type progressView struct {
	ID          uint    `json:"id"`
	LessonID    string  `json:"lessonId"`
	Completed   bool    `json:"completed"`
	Score       int     `json:"score"`
	Progress    int     `json:"progress"`
	CompletedAt *string `json:"completedAt"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func toProgressView(record *model.Progress) progressView {
	view := progressView{
		ID:        record.ID,
		LessonID:  record.LessonID,
		Completed: record.Completed,
		Score:     record.Score,
		Progress:  record.Progress,
		CreatedAt: record.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: record.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if record.CompletedAt != nil {
		completedAt := record.CompletedAt.UTC().Format(time.RFC3339)
		view.CompletedAt = &completedAt
	}
	return view
}

func toProgressViews(records []model.Progress) []progressView {
	views := make([]progressView, 0, len(records))
	for i := range records {
		views = append(views, toProgressView(&records[i]))
	}
	return views
}

// userView is the wire shape of an account, password omitted.
type userView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Avatar      *string `json:"avatar"`
	CreatedAt   string  `json:"createdAt"`
}

func toUserView(user *model.User) userView {
	view := userView{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt.UTC().Format(time.RFC3339),
	}
	if user.Avatar != "" {
		avatar := user.Avatar
		view.Avatar = &avatar
	}
	return view
}

// questionView is a question as served to clients: the answer key is
// never on the wire.
type questionView struct {
	ID      string             `json:"id"`
	Type    model.QuestionType `json:"type"`
	Prompt  string             `json:"question"`
	Options []string           `json:"options,omitempty"`
	Option1 string             `json:"option1,omitempty"`
	Option2 string             `json:"option2,omitempty"`
}

type quizView struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Questions []questionView `json:"questions"`
}

type lessonView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Duration    int      `json:"duration"`
	VideoURL    string   `json:"videoUrl"`
	Description string   `json:"description"`
	Quiz        quizView `json:"quiz"`
}

type lessonSummaryView struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Duration      int    `json:"duration"`
	Description   string `json:"description"`
	QuestionCount int    `json:"questionCount"`
}

func toLessonView(lesson model.Lesson) lessonView {
	questions := make([]questionView, 0, len(lesson.Quiz.Questions))
	for _, q := range lesson.Quiz.Questions {
		questions = append(questions, questionView{
			ID:      q.ID,
			Type:    q.Type,
			Prompt:  q.Prompt,
			Options: q.Options,
			Option1: q.Option1,
			Option2: q.Option2,
		})
	}
	return lessonView{
		ID:          lesson.ID,
		Title:       lesson.Title,
		Category:    lesson.Category,
		Duration:    lesson.Duration,
		VideoURL:    lesson.VideoURL,
		Description: lesson.Description,
		Quiz: quizView{
			ID:        lesson.Quiz.ID,
			Title:     lesson.Quiz.Title,
			Questions: questions,
		},
	}
}

func toLessonSummaries(lessons []model.Lesson) []lessonSummaryView {
	views := make([]lessonSummaryView, 0, len(lessons))
	for _, lesson := range lessons {
		views = append(views, lessonSummaryView{
			ID:            lesson.ID,
			Title:         lesson.Title,
			Category:      lesson.Category,
			Duration:      lesson.Duration,
			Description:   lesson.Description,
			QuestionCount: len(lesson.Quiz.Questions),
		})
	}
	return views
}
