package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/api/types"
)

// PostConnectivity records the client's connectivity state. Coming back
// online triggers one replay pass and returns its stats.
// @Summary Set connectivity state
// @Tags queue
// @Accept json
// @Produce json
// @Param request body types.ConnectivityRequest true "Connectivity state"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/queue/connectivity [post]
func PostConnectivity(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ConnectivityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  "error",
				Message: "invalid request: " + err.Error(),
			})
			return
		}

		stats, err := deps.Queue.SetConnectivity(c.Request.Context(), *req.Online)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		response := gin.H{"online": *req.Online}
		if stats != nil {
			response["replay"] = stats
		}
		c.JSON(http.StatusOK, response)
	}
}
