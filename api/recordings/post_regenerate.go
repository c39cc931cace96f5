package recordings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/api/types"
	"github.com/voicenotes/voicenote-api/internal/pipeline"
)

// PostRegenerate rewrites a stored note in a new style from its original
// transcript, without re-uploading or re-transcribing the audio.
// @Summary Regenerate a note in a different style
// @Tags recordings
// @Accept json
// @Produce json
// @Param recordingId path string true "Recording ID"
// @Param request body types.RegenerateRequest true "Target style"
// @Success 200 {object} models.Recording
// @Failure 400 {object} types.ErrorResponse
// @Failure 403 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/recordings/{recordingId}/regenerate [post]
func PostRegenerate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RegenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  "error",
				Message: "invalid request: " + err.Error(),
			})
			return
		}

		style, err := pipeline.ParseStyle(req.Style, req.CustomPrompt)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		recording, err := deps.Pipeline.Regenerate(
			c.Request.Context(),
			c.Param("recordingId"),
			style,
			types.IsPremium(c),
		)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, recording)
	}
}
