package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/api/types"
)

// Get handles health check requests
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  getDatabaseStatus(deps),
		}

		if deps != nil && deps.Queue != nil {
			if stats, err := deps.Queue.Stats(c.Request.Context()); err == nil {
				response["queue"] = stats
			}
		}

		c.JSON(http.StatusOK, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
