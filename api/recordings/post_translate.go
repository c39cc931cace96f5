package recordings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/api/types"
)

// PostTranslate renders a stored note's transcript in another language. The
// translation is returned to the caller only; the note is not modified.
// @Summary Translate a note's transcript
// @Tags recordings
// @Accept json
// @Produce json
// @Param recordingId path string true "Recording ID"
// @Param request body types.TranslateRequest true "Target language"
// @Success 200 {object} types.TranslateResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/recordings/{recordingId}/translate [post]
func PostTranslate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TranslateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  "error",
				Message: "invalid request: " + err.Error(),
			})
			return
		}

		recordingID := c.Param("recordingId")
		text, err := deps.Pipeline.Translate(c.Request.Context(), recordingID, req.TargetLanguage)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.TranslateResponse{
			RecordingID:    recordingID,
			TargetLanguage: req.TargetLanguage,
			Text:           text,
		})
	}
}
