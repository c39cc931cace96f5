package offlinequeue

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/voicenotes/voicenote-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements OperationRepository interface
var _ OperationRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Enqueue(ctx context.Context, op *models.QueuedOperation) error {
	if err := r.db.WithContext(ctx).Create(op).Error; err != nil {
		return fmt.Errorf("enqueuing operation: %w", err)
	}
	return nil
}

// ListInOrder returns every pending operation in enqueue order
func (r *Repository) ListInOrder(ctx context.Context) ([]models.QueuedOperation, error) {
	var ops []models.QueuedOperation
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ops).Error; err != nil {
		return nil, fmt.Errorf("listing queued operations: %w", err)
	}
	return ops, nil
}

func (r *Repository) UpdateRetryCount(ctx context.Context, id uint, retryCount int) error {
	result := r.db.WithContext(ctx).
		Model(&models.QueuedOperation{}).
		Where("id = ?", id).
		Update("retry_count", retryCount)
	if result.Error != nil {
		return fmt.Errorf("updating retry count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("queued operation %d not found", id)
	}
	return nil
}

// Delete removes the row for good. Replayed and dropped operations must not
// linger as soft-deleted rows, so this bypasses gorm's DeletedAt handling.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.QueuedOperation{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting queued operation: %w", result.Error)
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.QueuedOperation{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting queued operations: %w", err)
	}
	return count, nil
}
