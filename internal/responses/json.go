package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The public API contract is a bare payload on success and a single
// human-readable error string on failure. No envelope.

func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}
