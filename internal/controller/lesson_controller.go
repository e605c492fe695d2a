package controller

import (
	"errors"
	"net/http"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	ProgressService *service.ProgressService
}

func NewLessonController(progressService *service.ProgressService) *LessonController {
	return &LessonController{ProgressService: progressService}
}

// AttemptRequest is a full quiz submission keyed by question id.
// swagger:model AttemptRequest
type AttemptRequest struct {
	Answers model.Submission `json:"answers"`
}

// List godoc
// @Summary Lesson catalog
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/lessons [get]
func (c *LessonController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"lessons": toLessonSummaries(model.LessonCatalog)})
}

// Get godoc
// @Summary One lesson with its quiz (answer key withheld)
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "lesson id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /api/lessons/{lessonId} [get]
func (c *LessonController) Get(ctx *gin.Context) {
	lesson, ok := model.LessonByID(ctx.Param("lessonId"))
	if !ok {
		util.NotFound(ctx, "Lesson not found")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"lesson": toLessonView(lesson)})
}

// SubmitAttempt godoc
// @Summary Grade a quiz attempt and record progress
// @Description Grades the submission server-side; completion is derived
// @Description from the score, never taken from the client.
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "lesson id"
// @Param body body AttemptRequest true "answers keyed by question id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/lessons/{lessonId}/attempts [post]
func (c *LessonController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Authentication required")
		return
	}

	lessonID := ctx.Param("lessonId")
	lesson, ok := model.LessonByID(lessonID)
	if !ok {
		util.NotFound(ctx, "Lesson not found")
		return
	}

	var req AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid attempt data", nil)
		return
	}

	// A graded attempt requires every question answered; partial
	// submissions are a client-flow bug, not a lower score.
	var missing []util.FieldError
	for _, q := range lesson.Quiz.Questions {
		answer, ok := req.Answers[q.ID]
		if !ok || (answer.Text == "" && len(answer.Choices) == 0) {
			missing = append(missing, util.FieldError{Field: q.ID, Message: "is unanswered"})
		}
	}
	if len(missing) > 0 {
		util.ValidationFailed(ctx, "All questions must be answered", missing)
		return
	}

	result, err := c.ProgressService.SubmitAttempt(claims.UserID, lessonID, req.Answers)
	if err != nil {
		if ve, ok := util.AsValidationError(err); ok {
			util.ValidationFailed(ctx, "Invalid attempt data", ve.Details)
			return
		}
		if errors.Is(err, util.ErrEmptyQuiz) {
			util.ValidationFailed(ctx, "Lesson has no quiz", nil)
			return
		}
		util.LogInternalError(ctx, "Failed to grade attempt", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"attempt": result})
}
