package recordings

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/voicenotes/voicenote-api/api/types"
	"github.com/voicenotes/voicenote-api/internal/pipeline"
)

// PostProcess accepts a recorded audio file plus its processing options and
// runs the full pipeline synchronously: upload, transcribe, enhance, save.
// @Summary Process a voice recording
// @Description Uploads the audio, transcribes it, enhances the transcript in the requested style and persists the note
// @Tags recordings
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file"
// @Param user_id formData string true "Owning user"
// @Param style formData string true "Output style (note, email, blog, summary, transcript, custom)"
// @Param custom_prompt formData string false "Instruction text for the custom style"
// @Param recording_id formData string false "Client-generated recording ID, generated when absent"
// @Param language formData string false "Language hint for transcription"
// @Success 200 {object} pipeline.Result
// @Failure 400 {object} types.ErrorResponse
// @Failure 403 {object} types.ErrorResponse
// @Failure 413 {object} types.ErrorResponse
// @Router /api/v1/recordings/process [post]
func PostProcess(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ProcessRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  "error",
				Message: "invalid form: " + err.Error(),
			})
			return
		}

		style, err := pipeline.ParseStyle(req.Style, req.CustomPrompt)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		header, err := c.FormFile("audio")
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  "error",
				Message: "audio file is required",
			})
			return
		}

		recordingID := req.RecordingID
		if recordingID == "" {
			recordingID = uuid.NewString()
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if ext == "" {
			ext = ".m4a"
		}
		tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("voicenote-%s%s", recordingID, ext))
		if err := c.SaveUploadedFile(header, tmpPath); err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  "error",
				Message: "storing uploaded audio failed",
			})
			return
		}
		defer os.Remove(tmpPath)

		result, err := deps.Pipeline.Process(c.Request.Context(), pipeline.Request{
			UserID:         req.UserID,
			RecordingID:    recordingID,
			LocalAudioPath: tmpPath,
			Style:          style,
			LanguageHint:   req.Language,
			IsPremium:      types.IsPremium(c),
			OnStageComplete: func(stage pipeline.Stage) {
				deps.Log.WithFields(logrus.Fields{
					"recording_id": recordingID,
					"stage":        stage,
				}).Debug("stage complete")
			},
		})
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
