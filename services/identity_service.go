package services

import (
	"errors"
	"strings"
	"time"

	"careerprep/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IdentityProvider is the account-and-credential surface the rest of the app
// talks to. The registration flow depends on this interface, not on the
// concrete store, so tests can assert that validation failures never reach it.
type IdentityProvider interface {
	CreateUser(email, password string, emailConfirm bool, metadata map[string]string) (string, error)
	SignUp(email, password string, metadata map[string]string) (string, error)
	GenerateRecoveryLink(email string) (string, error)
	VerifyPassword(email, password string) error
	DeleteUser(authID string) error
}

// IdentityService is the self-hosted provider: bcrypt-hashed credentials in
// auth_users, recovery tokens in password_resets.
type IdentityService struct {
	db *gorm.DB
}

func NewIdentityService(db *gorm.DB) *IdentityService {
	return &IdentityService{db: db}
}

func (s *IdentityService) CreateUser(email, password string, emailConfirm bool, metadata map[string]string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	account := models.AuthUser{
		ID:             uuid.NewString(),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:   string(hash),
		EmailConfirmed: emailConfirm,
		Metadata:       metadata,
	}

	if err := s.db.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrEmailRegistered
		}
		return "", err
	}

	return account.ID, nil
}

func (s *IdentityService) SignUp(email, password string, metadata map[string]string) (string, error) {
	return s.CreateUser(email, password, false, metadata)
}

// GenerateRecoveryLink creates a 24-hour recovery token for an existing
// account and returns it. Delivery is out of scope; admins hand the token to
// the student.
func (s *IdentityService) GenerateRecoveryLink(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var account models.AuthUser
	if err := s.db.Where("email = ?", normalized).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrStudentNotFound
		}
		return "", err
	}

	var profile models.User
	if err := s.db.Where("auth_id = ?", account.ID).First(&profile).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	reset := models.PasswordReset{
		UserID:    profile.ID,
		Email:     normalized,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	if err := s.db.Create(&reset).Error; err != nil {
		return "", err
	}

	return reset.Token, nil
}

func (s *IdentityService) VerifyPassword(email, password string) error {
	var account models.AuthUser
	if err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}

func (s *IdentityService) DeleteUser(authID string) error {
	return s.db.Where("id = ?", authID).Delete(&models.AuthUser{}).Error
}
