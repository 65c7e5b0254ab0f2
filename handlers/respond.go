package handlers

import (
	"log"
	"net/http"

	"careerprep/services"

	"github.com/gin-gonic/gin"
)

// respondError converts a service failure into the uniform
// {success:false, error} shape. Upstream failures are logged server-side and
// replaced with a generic message so internals never leak to the client.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch services.Classify(err) {
	case services.KindValidation:
		status = http.StatusBadRequest
	case services.KindConflict:
		status = http.StatusConflict
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindUnauthorized:
		status = http.StatusUnauthorized
	default:
		log.Printf("Upstream error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "An unexpected error occurred"
	}

	c.JSON(status, gin.H{"success": false, "error": message})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
}
