package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"careerprep/services"

	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	invitationService *services.InvitationService
}

func NewInvitationHandler(invitationService *services.InvitationService) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
	}
}

func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	var req services.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	invitation, err := h.invitationService.CreateInvitation(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"invite_code": invitation.InviteCode,
		"invitation":  invitation,
	})
}

func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	invitations, err := h.invitationService.ListInvitations()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": invitations})
}

func (h *InvitationHandler) RegenerateInviteCode(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	invitation, err := h.invitationService.RegenerateInviteCode(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"new_invite_code": invitation.InviteCode,
		"invitation":      invitation,
	})
}

func (h *InvitationHandler) DeleteInvitation(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.invitationService.DeleteInvitation(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckCode is the public pre-check the registration form runs before asking
// for an email: is this code still usable at all.
func (h *InvitationHandler) CheckCode(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		respondBindError(c, errors.New("code query parameter is required"))
		return
	}

	invitation, err := h.invitationService.CheckInvitationByCode(code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "invitation": invitation})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
