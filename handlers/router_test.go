package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careerprep/handlers"
	"careerprep/middleware"
	"careerprep/models"
	"careerprep/routes"
	"careerprep/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret        = "test-secret"
	testAdminEmail    = "careerexp@admin.com"
	testAdminPassword = "password"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full HTTP surface over an in-memory database, the
// way main does, minus redis.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.AuthUser{},
		&models.User{},
		&models.Invitation{},
		&models.PasswordReset{},
		&models.Quiz{},
		&models.QuizAttempt{},
		&models.Article{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	hub := services.NewHub()
	go hub.Run()

	identityService := services.NewIdentityService(db)
	authService := services.NewAuthService(db, identityService, testSecret, testAdminEmail, testAdminPassword)
	invitationService := services.NewInvitationService(db)
	registrationService := services.NewRegistrationService(db, identityService)
	studentService := services.NewStudentService(db, identityService)
	quizService := services.NewQuizService(db)
	attemptService := services.NewAttemptService(db, nil, hub)

	router := gin.New()
	router.Use(middleware.CORS())
	routes.SetupRoutes(router,
		handlers.NewAuthHandler(authService, registrationService),
		handlers.NewInvitationHandler(invitationService),
		handlers.NewStudentHandler(studentService),
		handlers.NewQuizHandler(quizService),
		handlers.NewAttemptHandler(attemptService),
		hub,
		testSecret,
	)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
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
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login status = %d: %s", rec.Code, rec.Body.String())
	}
	return decodeBody(t, rec)["token"].(string)
}
