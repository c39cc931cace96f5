package recordings

import (
	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/api/types"
)

// RegisterRoutes registers recording routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/recordings/process - Run the full pipeline on an upload
	router.POST("/process", PostProcess(deps))

	// GET /api/v1/recordings - List a user's recordings
	router.GET("", GetList(deps))

	// GET /api/v1/recordings/:recordingId - Get one recording
	router.GET("/:recordingId", GetByID(deps))

	// DELETE /api/v1/recordings/:recordingId - Delete a recording and its audio
	router.DELETE("/:recordingId", Delete(deps))

	// POST /api/v1/recordings/:recordingId/regenerate - Re-enhance in a new style
	router.POST("/:recordingId/regenerate", PostRegenerate(deps))

	// POST /api/v1/recordings/:recordingId/translate - Translate the transcript
	router.POST("/:recordingId/translate", PostTranslate(deps))
}
