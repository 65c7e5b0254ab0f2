package services

import (
	"errors"
	"testing"
	"time"

	"careerprep/models"

	"gorm.io/gorm"
)

func seedStudent(t *testing.T, db *gorm.DB, identity *IdentityService, email string) *models.User {
	t.Helper()
	authID, err := identity.CreateUser(email, "hunter22", true, nil)
	if err != nil {
		t.Fatalf("seed identity: %v", err)
	}
	user := models.User{AuthID: authID, Email: email, FullName: "Student", Role: models.RoleStudent, StudentID: "S-" + email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func TestGetRegisteredStudentsFiltersByRole(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentityService(db)
	svc := NewStudentService(db, identity)

	seedStudent(t, db, identity, "vic@example.com")
	admin := models.User{AuthID: "auth-admin", Email: "admin@example.com", FullName: "Admin", Role: models.RoleAdmin}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	students, err := svc.GetRegisteredStudents()
	if err != nil {
		t.Fatalf("GetRegisteredStudents: %v", err)
	}
	if len(students) != 1 || students[0].Email != "vic@example.com" {
		t.Fatalf("unexpected students: %+v", students)
	}
}

func TestDeleteStudentCleansUpIdentityAndInvitations(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentityService(db)
	svc := NewStudentService(db, identity)

	student := seedStudent(t, db, identity, "wes@example.com")
	invitation := models.Invitation{Email: "wes@example.com", InviteCode: "777777", FullName: "Wes", IsRegistered: true}
	if err := db.Create(&invitation).Error; err != nil {
		t.Fatalf("seed invitation: %v", err)
	}

	if err := svc.DeleteStudent(student.ID); err != nil {
		t.Fatalf("DeleteStudent: %v", err)
	}

	var count int64
	db.Model(&models.User{}).Where("id = ?", student.ID).Count(&count)
	if count != 0 {
		t.Fatalf("user row survived deletion")
	}
	db.Model(&models.AuthUser{}).Where("id = ?", student.AuthID).Count(&count)
	if count != 0 {
		t.Fatalf("identity account survived deletion")
	}
	db.Model(&models.Invitation{}).Where("email = ?", "wes@example.com").Count(&count)
	if count != 0 {
		t.Fatalf("invitation rows survived deletion")
	}

	if err := svc.DeleteStudent(student.ID); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("second DeleteStudent err = %v, want ErrStudentNotFound", err)
	}
}

func TestCreatePasswordResetRequest(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentityService(db)
	svc := NewStudentService(db, identity)

	if _, err := svc.CreatePasswordResetRequest("ghost@example.com"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("unknown student err = %v, want ErrStudentNotFound", err)
	}

	seedStudent(t, db, identity, "xena@example.com")

	reset, err := svc.CreatePasswordResetRequest("Xena@Example.com")
	if err != nil {
		t.Fatalf("CreatePasswordResetRequest: %v", err)
	}
	if !reset.IsPasswordReset || reset.InviteCode == "" {
		t.Fatalf("unexpected reset record: %+v", reset)
	}

	// The recovery token is persisted with a 24-hour expiry.
	var link models.PasswordReset
	if err := db.Where("token = ?", reset.InviteCode).First(&link).Error; err != nil {
		t.Fatalf("recovery link not persisted: %v", err)
	}
	if remaining := time.Until(link.ExpiresAt); remaining < 23*time.Hour || remaining > 25*time.Hour {
		t.Fatalf("expiry %v not ~24h out", link.ExpiresAt)
	}

	// A second request replaces the first.
	second, err := svc.CreatePasswordResetRequest("xena@example.com")
	if err != nil {
		t.Fatalf("second CreatePasswordResetRequest: %v", err)
	}
	var count int64
	db.Model(&models.Invitation{}).
		Where("email = ? AND is_password_reset = ?", "xena@example.com", true).
		Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 reset row after replacement, got %d", count)
	}
	if second.InviteCode == reset.InviteCode {
		t.Fatalf("reset token not rotated")
	}
}

func TestDeletePasswordResetRequest(t *testing.T) {
	db := newTestDB(t)
	identity := NewIdentityService(db)
	svc := NewStudentService(db, identity)

	seedStudent(t, db, identity, "yuri@example.com")
	reset, err := svc.CreatePasswordResetRequest("yuri@example.com")
	if err != nil {
		t.Fatalf("CreatePasswordResetRequest: %v", err)
	}

	// Registration invitations are not deletable through the reset path.
	invitation := models.Invitation{Email: "zoe@example.com", InviteCode: "888888", FullName: "Zoe"}
	if err := db.Create(&invitation).Error; err != nil {
		t.Fatalf("seed invitation: %v", err)
	}
	if err := svc.DeletePasswordResetRequest(invitation.ID); !errors.Is(err, ErrResetNotFound) {
		t.Fatalf("deleting invitation via reset path err = %v, want ErrResetNotFound", err)
	}

	if err := svc.DeletePasswordResetRequest(reset.ID); err != nil {
		t.Fatalf("DeletePasswordResetRequest: %v", err)
	}

	resets, err := svc.ListPasswordResetRequests()
	if err != nil {
		t.Fatalf("ListPasswordResetRequests: %v", err)
	}
	if len(resets) != 0 {
		t.Fatalf("expected no reset rows, got %d", len(resets))
	}
}
