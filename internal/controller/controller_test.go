package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/middleware"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/pkg/database"
	"lingua_edu_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		JWT: config.JWTConfig{
			Secret:     "test-secret-for-handler-tests-0123456789",
			ExpireTime: time.Hour,
		},
	}
}

// newTestRouter wires the real service stack over an in-memory database
// and the route table the server uses, minus the ambient middleware.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := testConfig()
	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	authService := service.NewAuthService(userRepo, cfg)
	grading := service.NewGradingService()
	progressService := service.NewProgressService(progressRepo, grading, nil, time.Minute)

	auth := NewAuthController(authService)
	progress := NewProgressController(progressService)
	lesson := NewLessonController(progressService)

	router := gin.New()

	public := router.Group("/api")
	public.POST("/auth/register", auth.Register)
	public.POST("/auth/login", auth.Login)

	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(cfg))
	authed.GET("/auth/me", auth.Me)
	authed.GET("/lessons", lesson.List)
	authed.GET("/lessons/:lessonId", lesson.Get)
	authed.POST("/lessons/:lessonId/attempts", lesson.SubmitAttempt)
	authed.POST("/progress", progress.Upsert)
	authed.GET("/progress", progress.GetAll)
	authed.GET("/progress/summary", progress.Summary)
	authed.GET("/progress/:lessonId", progress.GetOne)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":        "Test User",
		"email":       email,
		"password":    "Password1",
		"phoneNumber": "5551234567",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("register response missing token: %v", body)
	}
	return token
}

func assertErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) map[string]interface{} {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("status = %d, want %d: %s", rec.Code, status, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["code"] != code {
		t.Errorf("code = %v, want %s", body["code"], code)
	}
	if body["statusCode"] != float64(status) {
		t.Errorf("statusCode = %v, want %d", body["statusCode"], status)
	}
	if msg, ok := body["error"].(string); !ok || msg == "" {
		t.Errorf("error message missing: %v", body)
	}
	return body
}
