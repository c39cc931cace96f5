// Package recordings owns the stored notes: CRUD around the recordings table
// plus cleanup of the audio objects a deleted note leaves behind.
package recordings

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/voicenotes/voicenote-api/internal/models"
	"github.com/voicenotes/voicenote-api/internal/providers"
	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

type Service struct {
	repo   RecordingRepository
	store  providers.ObjectStore
	buffer OperationBuffer
	log    *logrus.Logger
}

// Ensure Service implements RecordingService interface
var _ RecordingService = (*Service)(nil)

func NewService(repo RecordingRepository, store providers.ObjectStore, buffer OperationBuffer, log *logrus.Logger) *Service {
	return &Service{
		repo:   repo,
		store:  store,
		buffer: buffer,
		log:    log,
	}
}

func (s *Service) Create(ctx context.Context, recording *models.Recording) error {
	return s.repo.CreateRecording(ctx, recording)
}

func (s *Service) GetByRecordingID(ctx context.Context, recordingID string) (*models.Recording, error) {
	return s.repo.GetByRecordingID(ctx, recordingID)
}

func (s *Service) List(ctx context.Context, userID string, page, limit int) ([]models.Recording, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.ListByUserID(ctx, userID, page, limit)
}

func (s *Service) Update(ctx context.Context, recording *models.Recording) error {
	return s.repo.UpdateRecording(ctx, recording)
}

// Delete removes the note row and its stored audio object. When the object
// store is unreachable the storage delete is buffered for replay instead of
// failing the call: the user's note is gone either way, the object cleanup
// just happens later.
func (s *Service) Delete(ctx context.Context, recordingID string) error {
	recording, err := s.repo.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteByRecordingID(ctx, recordingID); err != nil {
		return err
	}

	if recording.AudioPath == "" {
		return nil
	}

	if err := s.store.Delete(ctx, recording.AudioPath); err != nil {
		if apperrors.Categorize(err) == apperrors.CategoryNetwork && s.buffer != nil {
			opID, bufErr := s.buffer.Enqueue(ctx, models.OperationDelete, models.Recording{}.TableName(),
				models.OperationPayload{
					"recording_id": recordingID,
					"audio_path":   recording.AudioPath,
				})
			if bufErr != nil {
				return bufErr
			}
			s.log.WithFields(logrus.Fields{
				"recording_id": recordingID,
				"op_id":        opID,
			}).Info("object store unreachable, buffered audio delete for replay")
			return nil
		}

		s.log.WithError(err).WithFields(logrus.Fields{
			"recording_id": recordingID,
			"path":         recording.AudioPath,
		}).Error("deleting audio object failed, orphaned object remains")
	}
	return nil
}
