package controller

import (
	"net/http"
	"path/filepath"
	"strings"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 2 << 20 // 2 MiB

var allowedAvatarExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type UserController struct {
	UserRepo       *repository.UserRepository
	StorageService *service.StorageService
}

func NewUserController(userRepo *repository.UserRepository, storageService *service.StorageService) *UserController {
	return &UserController{
		UserRepo:       userRepo,
		StorageService: storageService,
	}
}

// UploadAvatar godoc
// @Summary Upload a profile avatar
// @Tags user
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param avatar formData file true "avatar image (jpg/png/webp, max 2MiB)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/user/avatar/upload [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Authentication required")
		return
	}

	file, err := ctx.FormFile("avatar")
	if err != nil {
		util.ValidationFailed(ctx, "Avatar file is required", nil)
		return
	}
	if file.Size > maxAvatarSize {
		util.ValidationFailed(ctx, "Avatar must be at most 2MiB", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := allowedAvatarExts[ext]
	if !ok {
		util.ValidationFailed(ctx, "Avatar must be a jpg, png or webp image", nil)
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, "Failed to store avatar", err)
		return
	}
	defer src.Close()

	objectName := "avatars/" + model.GenerateUUID() + ext
	url, err := c.StorageService.Upload(ctx.Request.Context(), objectName, src, file.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, "Failed to store avatar", err)
		return
	}

	if err := c.UserRepo.UpdateAvatar(claims.UserID, url); err != nil {
		util.LogInternalError(ctx, "Failed to store avatar", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"avatar": url})
}
