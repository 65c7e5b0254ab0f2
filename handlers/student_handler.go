package handlers

import (
	"net/http"

	"careerprep/services"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentService *services.StudentService
}

func NewStudentHandler(studentService *services.StudentService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
	}
}

func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.GetRegisteredStudents()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": students})
}

func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.studentService.DeleteStudent(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *StudentHandler) CreatePasswordReset(c *gin.Context) {
	var req passwordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	reset, err := h.studentService.CreatePasswordResetRequest(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"reset_token": reset.InviteCode,
		"request":     reset,
	})
}

func (h *StudentHandler) ListPasswordResets(c *gin.Context) {
	resets, err := h.studentService.ListPasswordResetRequests()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": resets})
}

func (h *StudentHandler) DeletePasswordReset(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.studentService.DeletePasswordResetRequest(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
