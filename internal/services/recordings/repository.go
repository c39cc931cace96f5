package recordings

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/voicenotes/voicenote-api/internal/models"
	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements RecordingRepository interface
var _ RecordingRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateRecording(ctx context.Context, recording *models.Recording) error {
	if err := r.db.WithContext(ctx).Create(recording).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.New(apperrors.ErrCodeAlreadyExists,
				fmt.Sprintf("recording %s already exists", recording.RecordingID))
		}
		return fmt.Errorf("creating recording: %w", err)
	}
	return nil
}

func (r *Repository) GetByRecordingID(ctx context.Context, recordingID string) (*models.Recording, error) {
	var recording models.Recording
	if err := r.db.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		First(&recording).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("recording", recordingID)
		}
		return nil, fmt.Errorf("getting recording: %w", err)
	}
	return &recording, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID string, page, limit int) ([]models.Recording, int64, error) {
	var recordings []models.Recording
	var total int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&models.Recording{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting recordings: %w", err)
	}

	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recordings).Error; err != nil {
		return nil, 0, fmt.Errorf("listing recordings: %w", err)
	}

	return recordings, total, nil
}

func (r *Repository) UpdateRecording(ctx context.Context, recording *models.Recording) error {
	result := r.db.WithContext(ctx).Save(recording)
	if result.Error != nil {
		return fmt.Errorf("updating recording: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("recording", recording.RecordingID)
	}
	return nil
}

func (r *Repository) DeleteByRecordingID(ctx context.Context, recordingID string) error {
	result := r.db.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		Delete(&models.Recording{})
	if result.Error != nil {
		return fmt.Errorf("deleting recording: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("recording", recordingID)
	}
	return nil
}
