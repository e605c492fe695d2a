package util

import (
	"net/http"

	"lingua_edu_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes carried in the wire envelope.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	CodeServerError        = "SERVER_ERROR"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error      string      `json:"error"`
	Code       string      `json:"code"`
	StatusCode int         `json:"statusCode"`
	Details    interface{} `json:"details,omitempty"`
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:      message,
		Code:       code,
		StatusCode: status,
	})
}

func ValidationFailed(c *gin.Context, message string, details interface{}) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:      message,
		Code:       CodeValidation,
		StatusCode: http.StatusBadRequest,
		Details:    details,
	})
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// InternalServerError returns a generic message; internal detail stays
// in the log only.
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, CodeServerError, message)
}

func LogInternalError(c *gin.Context, message string, err error) {
	logger.Log.Error(message,
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c, message)
}
