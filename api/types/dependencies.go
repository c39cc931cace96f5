package types

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/voicenotes/voicenote-api/internal/database"
	"github.com/voicenotes/voicenote-api/internal/models"
	"github.com/voicenotes/voicenote-api/internal/pipeline"
	"github.com/voicenotes/voicenote-api/internal/services/offlinequeue"
	"github.com/voicenotes/voicenote-api/internal/services/recordings"
)

// RecordingPipeline is the slice of the pipeline orchestrator the handlers
// use. Narrowed to an interface so handler tests can stand in for it.
type RecordingPipeline interface {
	Process(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
	Regenerate(ctx context.Context, recordingID string, style pipeline.Style, isPremium bool) (*models.Recording, error)
	Translate(ctx context.Context, recordingID, targetLanguage string) (string, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB               *database.DB
	Pipeline         RecordingPipeline
	RecordingService recordings.RecordingService
	Queue            offlinequeue.Queue
	Log              *logrus.Logger
}
