package app

import (
	"fmt"
	"time"

	"lingua_edu_backend/docs"
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/middleware"
	"lingua_edu_backend/pkg/monitoring"
	"lingua_edu_backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	router.GET("/metrics", monitoring.PrometheusHandler())

	loginAttempts := cfg.RateLimit.LoginMaxAttempts
	if loginAttempts <= 0 {
		loginAttempts = 5
	}
	loginWindowMinutes := cfg.RateLimit.LoginWindowMinutes
	if loginWindowMinutes <= 0 {
		loginWindowMinutes = 15
	}
	loginLimiter := security.RateLimiter(
		loginAttempts,
		time.Duration(loginWindowMinutes)*time.Minute,
		fmt.Sprintf("Too many login attempts, please try again in %d minutes", loginWindowMinutes),
	)

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", loginLimiter, c.auth.Login)
	}

	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/auth/me", c.auth.Me)

		authed.GET("/lessons", c.lesson.List)
		authed.GET("/lessons/:lessonId", c.lesson.Get)
		authed.POST("/lessons/:lessonId/attempts", c.lesson.SubmitAttempt)

		authed.POST("/progress", c.progress.Upsert)
		authed.GET("/progress", c.progress.GetAll)
		authed.GET("/progress/summary", c.progress.Summary)
		authed.GET("/progress/:lessonId", c.progress.GetOne)

		authed.POST("/user/avatar/upload", c.user.UploadAvatar)
	}
}
