package services

import (
	"errors"
	"log"
	"strings"

	"careerprep/models"

	"gorm.io/gorm"
)

// RegistrationService is the two-step registration flow. Verify resolves an
// invitation snapshot which the caller holds and hands back to Register;
// nothing is stashed in a server-side session between the steps.
type RegistrationService struct {
	db       *gorm.DB
	identity IdentityProvider
}

func NewRegistrationService(db *gorm.DB, identity IdentityProvider) *RegistrationService {
	return &RegistrationService{db: db, identity: identity}
}

type VerifyCodeRequest struct {
	Email      string `json:"email" binding:"required,email"`
	InviteCode string `json:"invite_code" binding:"required,len=6"`
}

type RegisterRequest struct {
	InvitationID    uint   `json:"invitation_id" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// VerifyCode checks the (email, code) pair and returns the invitation
// snapshot the Register step needs. Email comparison is case-insensitive.
func (s *RegistrationService) VerifyCode(req *VerifyCodeRequest) (*models.Invitation, error) {
	invitation, err := findInvitationByCode(s.db, req.InviteCode)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(strings.TrimSpace(req.Email), invitation.Email) {
		return nil, ErrEmailMismatch
	}

	if invitation.IsRegistered {
		return nil, ErrAlreadyConsumed
	}

	return invitation, nil
}

// Register completes the flow: password checks first (no identity-provider
// contact on failure), then identity account creation, then the profile row
// and invitation consumption in one transaction. If the transaction fails the
// identity account is deleted so a retry starts clean.
func (s *RegistrationService) Register(req *RegisterRequest) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(req.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	var invitation models.Invitation
	if err := s.db.First(&invitation, req.InvitationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	if invitation.IsRegistered || invitation.IsPasswordReset {
		return nil, ErrAlreadyConsumed
	}

	authID, err := s.identity.CreateUser(invitation.Email, req.Password, true, map[string]string{
		"full_name": invitation.FullName,
		"role":      models.RoleStudent,
	})
	if err != nil {
		return nil, err
	}

	user := models.User{
		AuthID:    authID,
		Email:     invitation.Email,
		FullName:  invitation.FullName,
		Role:      models.RoleStudent,
		StudentID: invitation.StudentID,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Model(&models.Invitation{}).
			Where("id = ?", invitation.ID).
			Update("is_registered", true).Error
	})
	if txErr != nil {
		// compensate so the half-registered account does not orphan the email
		if delErr := s.identity.DeleteUser(authID); delErr != nil {
			log.Printf("Failed to clean up identity account %s after registration error: %v", authID, delErr)
		}
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailRegistered
		}
		return nil, txErr
	}

	return &user, nil
}
