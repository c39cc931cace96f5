package queue

import (
	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/api/types"
)

// RegisterRoutes registers offline queue routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/queue - Pending backlog and drop counter
	router.GET("", GetStatus(deps))

	// POST /api/v1/queue/replay - Trigger one replay pass
	router.POST("/replay", PostReplay(deps))

	// POST /api/v1/queue/connectivity - Flip the connectivity state
	router.POST("/connectivity", PostConnectivity(deps))
}
