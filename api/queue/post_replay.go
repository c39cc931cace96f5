package queue

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/api/types"
	"github.com/voicenotes/voicenote-api/internal/services/offlinequeue"
)

// PostReplay triggers one replay pass over the buffered operations
// @Summary Replay the offline queue
// @Tags queue
// @Produce json
// @Success 200 {object} offlinequeue.ReplayStats
// @Failure 409 {object} types.ErrorResponse
// @Router /api/v1/queue/replay [post]
func PostReplay(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := deps.Queue.Replay(c.Request.Context())
		if err != nil {
			if errors.Is(err, offlinequeue.ErrReplayInProgress) {
				c.JSON(http.StatusConflict, types.ErrorResponse{
					Status:  "error",
					Message: err.Error(),
				})
				return
			}
			types.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
