package controller

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterRequest is the registration payload.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// LoginRequest is the login payload.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func validateRegister(req *RegisterRequest) []util.FieldError {
	var details []util.FieldError

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 2 || len(req.Name) > 100 {
		details = append(details, util.FieldError{Field: "name", Message: "must be between 2 and 100 characters"})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(req.Email) {
		details = append(details, util.FieldError{Field: "email", Message: "must be a valid email address"})
	}

	if len(req.Password) < 8 || len(req.Password) > 128 {
		details = append(details, util.FieldError{Field: "password", Message: "must be between 8 and 128 characters"})
	} else if !strings.ContainsAny(req.Password, "abcdefghijklmnopqrstuvwxyz") ||
		!strings.ContainsAny(req.Password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") ||
		!strings.ContainsAny(req.Password, "0123456789") {
		details = append(details, util.FieldError{Field: "password", Message: "must contain at least 1 uppercase letter, 1 lowercase letter, and 1 number"})
	}

	if len(req.PhoneNumber) < 10 || len(req.PhoneNumber) > 15 {
		details = append(details, util.FieldError{Field: "phoneNumber", Message: "must be between 10 and 15 characters"})
	}

	return details
}

// Register godoc
// @Summary Create a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid input data", nil)
		return
	}

	if details := validateRegister(&req); len(details) > 0 {
		util.ValidationFailed(ctx, "Invalid input data", details)
		return
	}

	user := &model.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, http.StatusConflict, util.CodeDuplicateEmail, "Email already registered")
			return
		}
		util.LogInternalError(ctx, "Registration failed", err)
		return
	}

	token, err := c.issueToken(user)
	if err != nil {
		util.LogInternalError(ctx, "Registration failed", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user":  toUserView(user),
		"token": token,
	})
}

func (c *AuthController) issueToken(user *model.User) (string, error) {
	return util.GenerateJWT(user, c.AuthService.Cfg.JWT.Secret, c.AuthService.Cfg.JWT.ExpireTime)
}

// Login godoc
// @Summary Authenticate an existing account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid credentials", nil)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		util.ValidationFailed(ctx, "Invalid credentials", nil)
		return
	}

	user, token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, http.StatusUnauthorized, util.CodeInvalidCredentials, "Invalid email or password")
			return
		}
		util.LogInternalError(ctx, "Login failed", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":  toUserView(user),
		"token": token,
	})
}

// Me godoc
// @Summary Current authenticated account
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Authentication required")
		return
	}

	user, err := c.AuthService.GetCurrentUser(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
			return
		}
		util.LogInternalError(ctx, "Failed to fetch user", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": toUserView(user)})
}
