package pipeline

import (
	"context"
	"strings"

	"github.com/voicenotes/voicenote-api/internal/models"
	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

// NoteStore is the persistence contract the pipeline writes finished notes
// through. The recordings service provides the production implementation.
type NoteStore interface {
	Create(ctx context.Context, recording *models.Recording) error
	GetByRecordingID(ctx context.Context, recordingID string) (*models.Recording, error)
	Update(ctx context.Context, recording *models.Recording) error
}

// persist writes the finished note. Counts are computed here, after any
// enhancement fallback, so they always describe the transcript the user will
// actually see. Persistence failures are fatal and not retried: the database
// is local and a failing write points at a bug, not a blip.
func (o *Orchestrator) persist(ctx context.Context, j *job) error {
	j.report(StageSaving, 0)

	recording := &models.Recording{
		RecordingID:         j.req.RecordingID,
		UserID:              j.req.UserID,
		AudioPath:           j.audioPath,
		AudioURL:            j.audioURL,
		OriginalTranscript:  j.originalTranscript,
		EnhancedTranscript:  j.enhancedTranscript,
		Language:            j.detectedLanguage,
		Style:               string(j.req.Style.Kind),
		DurationSeconds:     j.durationSeconds,
		WordCount:           countWords(j.enhancedTranscript),
		CharacterCount:      len(j.enhancedTranscript),
		CostEstimate:        j.cost,
		EnhancementDegraded: j.degraded,
	}

	if err := o.notes.Create(ctx, recording); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "saving recording")
	}
	j.noteID = recording.ID

	j.stageComplete(StageSaving)
	return nil
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
