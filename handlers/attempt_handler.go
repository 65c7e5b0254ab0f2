package handlers

import (
	"net/http"

	"careerprep/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	attemptService *services.AttemptService
}

func NewAttemptHandler(attemptService *services.AttemptService) *AttemptHandler {
	return &AttemptHandler{
		attemptService: attemptService,
	}
}

func (h *AttemptHandler) RecordAttempt(c *gin.Context) {
	var req services.RecordAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	attempt, err := h.attemptService.RecordAttempt(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Quiz attempt recorded successfully",
		"data":    attempt,
	})
}

func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	attempts, err := h.attemptService.ListAttempts()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": attempts})
}

func (h *AttemptHandler) GetScoreboard(c *gin.Context) {
	summaries, err := h.attemptService.GetScoreboard()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": summaries})
}
