package services

import (
	"fmt"
	"strings"
	"testing"

	"careerprep/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the production schema.
// The DSN is derived from the test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
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

	return db
}
