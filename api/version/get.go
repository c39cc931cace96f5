package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build information, set at link time
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Get handles version requests
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Voice Note API",
			"version":     Version,
			"commit":      Commit,
			"built":       Date,
			"description": "API for recording, transcribing and enhancing voice notes",
			"status":      "running",
		})
	}
}
