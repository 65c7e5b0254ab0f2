package handlers

import (
	"net/http"

	"careerprep/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService         *services.AuthService
	registrationService *services.RegistrationService
}

func NewAuthHandler(authService *services.AuthService, registrationService *services.RegistrationService) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		registrationService: registrationService,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": resp.Token, "user": resp.User})
}

// VerifyCode is step one of registration: it resolves the (email, code) pair
// to an invitation snapshot the client passes back to Register.
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req services.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	invitation, err := h.registrationService.VerifyCode(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "invitation": invitation})
}

// Register is step two: password collection and account creation.
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.registrationService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": user})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	user, err := h.authService.GetProfile(userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
