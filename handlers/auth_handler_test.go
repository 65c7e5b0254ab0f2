package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body)
	}
}

func TestLoginValidatesInput(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{"email": "no-password@example.com"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAdminRoutesRequireAdminSession(t *testing.T) {
	router, _ := newTestRouter(t)

	// No token at all.
	rec := doJSON(t, router, http.MethodGet, "/api/admin/invitations", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d, want 401", rec.Code)
	}

	// A registered student must not reach admin routes.
	token := registerStudentViaAPI(t, router, "sven@example.com", "S-100")
	rec = doJSON(t, router, http.MethodGet, "/api/admin/invitations", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("student status = %d, want 403", rec.Code)
	}
}

// registerStudentViaAPI drives the whole invitation + registration flow over
// HTTP and returns the student's session token.
func registerStudentViaAPI(t *testing.T, router *gin.Engine, email, studentID string) string {
	t.Helper()
	admin := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/invitations", admin, gin.H{
		"email":      email,
		"full_name":  "Test Student",
		"student_id": studentID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create invitation status = %d: %s", rec.Code, rec.Body.String())
	}
	code := decodeBody(t, rec)["invite_code"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/register/verify", "", gin.H{
		"email":       email,
		"invite_code": code,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("verify status = %d: %s", rec.Code, rec.Body.String())
	}
	invitation := decodeBody(t, rec)["invitation"].(map[string]interface{})
	invitationID := invitation["id"].(float64)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"invitation_id":    invitationID,
		"password":         "hunter22",
		"confirm_password": "hunter22",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", rec.Code, rec.Body.String())
	}
	return decodeBody(t, rec)["token"].(string)
}

func TestRegistrationFlowEndToEnd(t *testing.T) {
	router, _ := newTestRouter(t)
	admin := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/invitations", admin, gin.H{
		"email":      "tara@example.com",
		"full_name":  "Tara",
		"student_id": "S-200",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create invitation status = %d: %s", rec.Code, rec.Body.String())
	}
	code := decodeBody(t, rec)["invite_code"].(string)

	// Wrong email for the code.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/register/verify", "", gin.H{
		"email":       "wrong@example.com",
		"invite_code": code,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("mismatched email status = %d, want 400", rec.Code)
	}

	// Unknown code.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/register/verify", "", gin.H{
		"email":       "tara@example.com",
		"invite_code": "000000",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown code status = %d, want 404", rec.Code)
	}

	// Successful verify carries the invitation snapshot.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/register/verify", "", gin.H{
		"email":       "tara@example.com",
		"invite_code": code,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("verify status = %d: %s", rec.Code, rec.Body.String())
	}
	invitation := decodeBody(t, rec)["invitation"].(map[string]interface{})
	invitationID := invitation["id"].(float64)

	// Short password is rejected before any account is created.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"invitation_id":    invitationID,
		"password":         "abc",
		"confirm_password": "abc",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("short password status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"invitation_id":    invitationID,
		"password":         "hunter22",
		"confirm_password": "hunter22",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", rec.Code, rec.Body.String())
	}

	// The invitation is consumed: verifying again must fail.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/register/verify", "", gin.H{
		"email":       "tara@example.com",
		"invite_code": code,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("re-verify status = %d, want 409", rec.Code)
	}

	// And the student can log in.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "tara@example.com",
		"password": "hunter22",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("student login status = %d: %s", rec.Code, rec.Body.String())
	}

	// A second invitation for the registered email is a conflict.
	rec = doJSON(t, router, http.MethodPost, "/api/admin/invitations", admin, gin.H{
		"email":      "tara@example.com",
		"full_name":  "Tara",
		"student_id": "S-201",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("re-invite status = %d, want 409", rec.Code)
	}
}
