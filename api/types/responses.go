package types

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/internal/models"
	"github.com/voicenotes/voicenote-api/internal/pipeline"
	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Code     string `json:"code,omitempty"`
	Category string `json:"category,omitempty"`
	Stage    string `json:"stage,omitempty"`
}

// ListRecordingsResponse wraps a paginated recordings page
type ListRecordingsResponse struct {
	Recordings []models.Recording `json:"recordings"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

// TranslateResponse carries an on-demand translation
type TranslateResponse struct {
	RecordingID    string `json:"recording_id"`
	TargetLanguage string `json:"target_language"`
	Text           string `json:"text"`
}

// RespondError writes err as a JSON error response with the status code the
// error implies. Pipeline errors additionally expose the failed stage and the
// user-facing failure category.
func RespondError(c *gin.Context, err error) {
	resp := ErrorResponse{
		Status:  "error",
		Message: err.Error(),
	}

	var pipeErr *pipeline.Error
	if errors.As(err, &pipeErr) {
		resp.Stage = string(pipeErr.Stage)
		resp.Category = string(pipeErr.Category)
		err = pipeErr.Err
	}

	resp.Code = string(apperrors.GetCode(err))
	c.JSON(apperrors.GetHTTPCode(err), resp)
}
