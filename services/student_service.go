package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"careerprep/models"

	"gorm.io/gorm"
)

type StudentService struct {
	db       *gorm.DB
	identity IdentityProvider
}

func NewStudentService(db *gorm.DB, identity IdentityProvider) *StudentService {
	return &StudentService{db: db, identity: identity}
}

func (s *StudentService) GetRegisteredStudents() ([]models.User, error) {
	var students []models.User
	err := s.db.Where("role = ?", models.RoleStudent).
		Order("created_at DESC").
		Find(&students).Error
	return students, err
}

// DeleteStudent removes the identity account, the profile row, and any
// invitation records for the email, in that order.
func (s *StudentService) DeleteStudent(id uint) error {
	var student models.User
	if err := s.db.Where("id = ? AND role = ?", id, models.RoleStudent).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	if err := s.identity.DeleteUser(student.AuthID); err != nil {
		log.Printf("Failed to delete identity account %s for student %d: %v", student.AuthID, id, err)
	}

	if err := s.db.Delete(&models.User{}, student.ID).Error; err != nil {
		return err
	}

	return s.db.Where("email = ?", student.Email).Delete(&models.Invitation{}).Error
}

// CreatePasswordResetRequest records an admin-initiated reset for a student.
// Any previous reset rows for the email are replaced; the reset token is
// stored in the invitation table's code column, marked is_password_reset so
// it never satisfies registration verification.
func (s *StudentService) CreatePasswordResetRequest(email string) (*models.Invitation, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var student models.User
	if err := s.db.Where("email = ? AND role = ?", normalized, models.RoleStudent).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if err := s.db.Where("email = ? AND is_password_reset = ?", normalized, true).
		Delete(&models.Invitation{}).Error; err != nil {
		return nil, err
	}

	token, err := s.identity.GenerateRecoveryLink(normalized)
	if err != nil {
		return nil, err
	}

	reset := models.Invitation{
		Email:           normalized,
		InviteCode:      token,
		StudentID:       fmt.Sprintf("RESET_%d", student.ID),
		FullName:        student.FullName,
		IsPasswordReset: true,
	}

	if err := s.db.Create(&reset).Error; err != nil {
		return nil, err
	}

	return &reset, nil
}

func (s *StudentService) ListPasswordResetRequests() ([]models.Invitation, error) {
	var resets []models.Invitation
	err := s.db.Where("is_password_reset = ?", true).
		Order("created_at DESC").
		Find(&resets).Error
	return resets, err
}

func (s *StudentService) DeletePasswordResetRequest(id uint) error {
	result := s.db.Where("id = ? AND is_password_reset = ?", id, true).Delete(&models.Invitation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResetNotFound
	}
	return nil
}
