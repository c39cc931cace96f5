package offlinequeue

import (
	"context"

	"github.com/voicenotes/voicenote-api/internal/models"
)

// OperationRepository defines the interface for queued operation persistence
type OperationRepository interface {
	Enqueue(ctx context.Context, op *models.QueuedOperation) error
	ListInOrder(ctx context.Context) ([]models.QueuedOperation, error)
	UpdateRetryCount(ctx context.Context, id uint, retryCount int) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// Executor applies one buffered operation against its live target. The
// recordings service provides the production implementation.
type Executor interface {
	Apply(ctx context.Context, op *models.QueuedOperation) error
}

// Queue defines the business logic interface for the offline buffer
type Queue interface {
	Enqueue(ctx context.Context, opType models.OperationType, targetTable string, payload models.OperationPayload) (string, error)
	Replay(ctx context.Context) (*ReplayStats, error)
	SetConnectivity(ctx context.Context, online bool) (*ReplayStats, error)
	Online() bool
	Stats(ctx context.Context) (*Stats, error)
}
