package recordings

import (
	"context"

	"github.com/voicenotes/voicenote-api/internal/models"
)

// RecordingRepository defines the interface for recording persistence
type RecordingRepository interface {
	CreateRecording(ctx context.Context, recording *models.Recording) error
	GetByRecordingID(ctx context.Context, recordingID string) (*models.Recording, error)
	ListByUserID(ctx context.Context, userID string, page, limit int) ([]models.Recording, int64, error)
	UpdateRecording(ctx context.Context, recording *models.Recording) error
	DeleteByRecordingID(ctx context.Context, recordingID string) error
}

// OperationBuffer is the slice of the offline queue the recordings service
// needs: buffering a mutation for replay when its live target is unreachable.
type OperationBuffer interface {
	Enqueue(ctx context.Context, opType models.OperationType, targetTable string, payload models.OperationPayload) (string, error)
}

// RecordingService defines the business logic interface for stored notes
type RecordingService interface {
	Create(ctx context.Context, recording *models.Recording) error
	GetByRecordingID(ctx context.Context, recordingID string) (*models.Recording, error)
	List(ctx context.Context, userID string, page, limit int) ([]models.Recording, int64, error)
	Update(ctx context.Context, recording *models.Recording) error
	Delete(ctx context.Context, recordingID string) error
}
