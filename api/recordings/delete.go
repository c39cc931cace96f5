package recordings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/api/types"
)

// Delete removes a recording and its stored audio object
// @Summary Delete a recording
// @Tags recordings
// @Produce json
// @Param recordingId path string true "Recording ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/recordings/{recordingId} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordingID := c.Param("recordingId")
		if err := deps.RecordingService.Delete(c.Request.Context(), recordingID); err != nil {
			types.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":       "deleted",
			"recording_id": recordingID,
		})
	}
}
