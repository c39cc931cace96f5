package recordings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voicenotes/voicenote-api/internal/models"
	"github.com/voicenotes/voicenote-api/internal/providers"
	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

// QueueExecutor applies buffered recording mutations during offline queue
// replay. Application is idempotent: a replayed operation that already took
// effect counts as success.
type QueueExecutor struct {
	repo  RecordingRepository
	store providers.ObjectStore
}

func NewQueueExecutor(repo RecordingRepository, store providers.ObjectStore) *QueueExecutor {
	return &QueueExecutor{repo: repo, store: store}
}

func (e *QueueExecutor) Apply(ctx context.Context, op *models.QueuedOperation) error {
	if op.TargetTable != (models.Recording{}.TableName()) {
		return fmt.Errorf("unknown target table %q", op.TargetTable)
	}

	switch op.Type {
	case models.OperationCreate:
		return e.applyCreate(ctx, op)
	case models.OperationUpdate:
		return e.applyUpdate(ctx, op)
	case models.OperationDelete:
		return e.applyDelete(ctx, op)
	default:
		return fmt.Errorf("unknown operation type %q", op.Type)
	}
}

func (e *QueueExecutor) applyCreate(ctx context.Context, op *models.QueuedOperation) error {
	recording, err := decodeRecording(op.Payload)
	if err != nil {
		return err
	}

	if err := e.repo.CreateRecording(ctx, recording); err != nil {
		if apperrors.Is(err, apperrors.ErrCodeAlreadyExists) {
			return nil
		}
		return err
	}
	return nil
}

func (e *QueueExecutor) applyUpdate(ctx context.Context, op *models.QueuedOperation) error {
	incoming, err := decodeRecording(op.Payload)
	if err != nil {
		return err
	}

	existing, err := e.repo.GetByRecordingID(ctx, incoming.RecordingID)
	if err != nil {
		return err
	}

	incoming.ID = existing.ID
	incoming.CreatedAt = existing.CreatedAt
	return e.repo.UpdateRecording(ctx, incoming)
}

func (e *QueueExecutor) applyDelete(ctx context.Context, op *models.QueuedOperation) error {
	if path, ok := op.Payload["audio_path"].(string); ok && path != "" {
		if err := e.store.Delete(ctx, path); err != nil {
			return fmt.Errorf("deleting audio object: %w", err)
		}
	}

	recordingID, _ := op.Payload["recording_id"].(string)
	if recordingID == "" {
		return nil
	}
	if err := e.repo.DeleteByRecordingID(ctx, recordingID); err != nil {
		// The row is usually gone already; only the object delete was queued.
		if apperrors.Is(err, apperrors.ErrCodeNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// decodeRecording rebuilds a Recording from the payload's JSON shape
func decodeRecording(payload models.OperationPayload) (*models.Recording, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	var recording models.Recording
	if err := json.Unmarshal(raw, &recording); err != nil {
		return nil, fmt.Errorf("decoding payload into recording: %w", err)
	}
	if recording.RecordingID == "" {
		return nil, fmt.Errorf("payload missing recording_id")
	}
	return &recording, nil
}
