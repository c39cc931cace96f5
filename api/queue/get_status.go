package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/api/types"
)

// GetStatus reports the offline queue backlog and drop counter
// @Summary Offline queue status
// @Tags queue
// @Produce json
// @Success 200 {object} offlinequeue.Stats
// @Router /api/v1/queue [get]
func GetStatus(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := deps.Queue.Stats(c.Request.Context())
		if err != nil {
			types.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
