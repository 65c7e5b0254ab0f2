package services

import (
	"errors"
	"strings"
	"time"

	"careerprep/models"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type AuthService struct {
	db            *gorm.DB
	identity      IdentityProvider
	jwtSecret     string
	adminEmail    string
	adminPassword string
}

func NewAuthService(db *gorm.DB, identity IdentityProvider, jwtSecret, adminEmail, adminPassword string) *AuthService {
	return &AuthService{
		db:            db,
		identity:      identity,
		jwtSecret:     jwtSecret,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates the fixed admin credential pair directly, and students
// by profile lookup plus identity-provider password check.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == s.adminEmail && req.Password == s.adminPassword {
		admin := models.User{
			Email:    s.adminEmail,
			FullName: "Admin Teacher",
			Role:     models.RoleAdmin,
		}
		token, err := s.GenerateToken(&admin)
		if err != nil {
			return nil, err
		}
		return &LoginResponse{Token: token, User: admin}, nil
	}

	var user models.User
	if err := s.db.Where("email = ? AND role = ?", email, models.RoleStudent).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.identity.VerifyPassword(email, req.Password); err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user}, nil
}

func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &user, nil
}
