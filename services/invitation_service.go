package services

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"careerprep/models"

	"gorm.io/gorm"
)

const maxCodeAttempts = 10

type InvitationService struct {
	db *gorm.DB

	// overridable in tests to force collisions
	generateCode func() string
}

func NewInvitationService(db *gorm.DB) *InvitationService {
	return &InvitationService{
		db:           db,
		generateCode: generateInviteCode,
	}
}

// generateInviteCode returns a uniform 6-digit code in [100000, 999999].
func generateInviteCode() string {
	var buf [8]byte
	rand.Read(buf[:])
	n := binary.BigEndian.Uint64(buf[:]) % 900000
	return fmt.Sprintf("%06d", 100000+n)
}

type CreateInvitationRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FullName  string `json:"full_name" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
}

// CreateInvitation runs the three pre-checks (pending invitation, registered
// user, duplicate student ID) and then inserts with a fresh code. The unique
// index on invite_code is the collision signal: a duplicate-key failure
// regenerates and retries, at most maxCodeAttempts times.
func (s *InvitationService) CreateInvitation(req *CreateInvitationRequest) (*models.Invitation, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	studentID := strings.TrimSpace(req.StudentID)

	var existing models.Invitation
	if err := s.db.Where("email = ? AND is_registered = ? AND is_password_reset = ?", email, false, false).
		First(&existing).Error; err == nil {
		return nil, ErrEmailInvited
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err == nil {
		return nil, ErrEmailRegistered
	}

	if err := s.db.Where("student_id = ? AND is_registered = ? AND is_password_reset = ?", studentID, false, false).
		First(&existing).Error; err == nil {
		return nil, ErrStudentIDExists
	}

	invitation := models.Invitation{
		Email:     email,
		StudentID: studentID,
		FullName:  strings.TrimSpace(req.FullName),
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		invitation.InviteCode = s.generateCode()
		err := s.db.Create(&invitation).Error
		if err == nil {
			return &invitation, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// collided with an existing code; clear the assigned ID and retry
		invitation.ID = 0
	}

	return nil, ErrCodeGenerationExhausted
}

// ListInvitations returns pending and consumed registration invitations,
// newest first. Password-reset records live in the same table but are listed
// separately by the student service.
func (s *InvitationService) ListInvitations() ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := s.db.Where("is_password_reset = ?", false).
		Order("created_at DESC").
		Find(&invitations).Error
	return invitations, err
}

// RegenerateInviteCode overwrites the stored code with a fresh one, using the
// same duplicate-key retry loop as creation.
func (s *InvitationService) RegenerateInviteCode(id uint) (*models.Invitation, error) {
	var invitation models.Invitation
	if err := s.db.First(&invitation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := s.generateCode()
		err := s.db.Model(&invitation).Update("invite_code", code).Error
		if err == nil {
			invitation.InviteCode = code
			return &invitation, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	return nil, ErrCodeGenerationExhausted
}

// DeleteInvitation is unconditional; foreign-key behavior in the store covers
// any dependents.
func (s *InvitationService) DeleteInvitation(id uint) error {
	return s.db.Delete(&models.Invitation{}, id).Error
}

// findInvitationByCode is the single code lookup both the public pre-check
// and the verify step go through. Password-reset records never match; a
// missing code is reported as invalid-or-expired.
func findInvitationByCode(db *gorm.DB, code string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := db.Where("invite_code = ? AND is_password_reset = ?", strings.TrimSpace(code), false).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}
	return &invitation, nil
}

// CheckInvitationByCode resolves a registration code and rejects consumed
// invitations.
func (s *InvitationService) CheckInvitationByCode(code string) (*models.Invitation, error) {
	invitation, err := findInvitationByCode(s.db, code)
	if err != nil {
		return nil, err
	}

	if invitation.IsRegistered {
		return nil, ErrAlreadyConsumed
	}

	return invitation, nil
}
