package recordings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/api/types"
)

// GetByID returns a single recording
// @Summary Get a recording
// @Tags recordings
// @Produce json
// @Param recordingId path string true "Recording ID"
// @Success 200 {object} models.Recording
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/recordings/{recordingId} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recording, err := deps.RecordingService.GetByRecordingID(c.Request.Context(), c.Param("recordingId"))
		if err != nil {
			types.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, recording)
	}
}
