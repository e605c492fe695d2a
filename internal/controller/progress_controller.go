package controller

import (
	"errors"
	"net/http"

	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// ProgressRequest is the progress upsert payload. Pointer fields
// distinguish absent from zero, so every field can be required.
// swagger:model ProgressRequest
type ProgressRequest struct {
	LessonID  *string `json:"lessonId"`
	Score     *int    `json:"score"`
	Completed *bool   `json:"completed"`
	Progress  *int    `json:"progress"`
}

func (r *ProgressRequest) missingFields() []util.FieldError {
	var details []util.FieldError
	if r.LessonID == nil {
		details = append(details, util.FieldError{Field: "lessonId", Message: "is required"})
	}
	if r.Score == nil {
		details = append(details, util.FieldError{Field: "score", Message: "is required"})
	}
	if r.Completed == nil {
		details = append(details, util.FieldError{Field: "completed", Message: "is required"})
	}
	if r.Progress == nil {
		details = append(details, util.FieldError{Field: "progress", Message: "is required"})
	}
	return details
}

// Upsert godoc
// @Summary Create or update lesson progress
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ProgressRequest true "progress data"
// @Success 200 {object} map[string]interface{} "updated"
// @Success 201 {object} map[string]interface{} "created"
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/progress [post]
func (c *ProgressController) Upsert(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Authentication required")
		return
	}

	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid progress data", nil)
		return
	}
	if details := req.missingFields(); len(details) > 0 {
		util.ValidationFailed(ctx, "Invalid progress data", details)
		return
	}

	record, created, err := c.ProgressService.Upsert(claims.UserID, service.ProgressInput{
		LessonID:  *req.LessonID,
		Score:     *req.Score,
		Completed: *req.Completed,
		Progress:  *req.Progress,
	})
	if err != nil {
		if ve, ok := util.AsValidationError(err); ok {
			util.ValidationFailed(ctx, "Invalid progress data", ve.Details)
			return
		}
		util.LogInternalError(ctx, "Failed to save progress", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, gin.H{"progress": toProgressView(record)})
}

// GetAll godoc
// @Summary All progress for the current user
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} util.ErrorResponse
// @Router /api/progress [get]
func (c *ProgressController) GetAll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Authentication required")
		return
	}

	records, err := c.ProgressService.GetAll(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, "Failed to fetch progress", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"progress": toProgressViews(records)})
}

// GetOne godoc
// @Summary Progress for one lesson
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "lesson id (lesson-1 .. lesson-6)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/progress/{lessonId} [get]
func (c *ProgressController) GetOne(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Authentication required")
		return
	}

	record, err := c.ProgressService.GetOne(claims.UserID, ctx.Param("lessonId"))
	if err != nil {
		if _, ok := util.AsValidationError(err); ok {
			util.ValidationFailed(ctx, "Invalid lesson ID", nil)
			return
		}
		if errors.Is(err, util.ErrProgressNotFound) {
			util.NotFound(ctx, "Progress not found for this lesson")
			return
		}
		util.LogInternalError(ctx, "Failed to fetch progress", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"progress": toProgressView(record)})
}

// Summary godoc
// @Summary Derived progress statistics for the dashboard
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} util.ErrorResponse
// @Router /api/progress/summary [get]
func (c *ProgressController) Summary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Authentication required")
		return
	}

	summary, err := c.ProgressService.Summary(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, "Failed to fetch progress summary", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"summary": summary})
}
