package recordings

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/voicenotes/voicenote-api/internal/models"
	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Recording{})
	require.NoError(t, err)

	return db
}

func testRecording(recordingID string) *models.Recording {
	return &models.Recording{
		RecordingID:        recordingID,
		UserID:             "user-1",
		AudioPath:          "user-1/" + recordingID + ".m4a",
		AudioURL:           "https://cdn.example.com/user-1/" + recordingID + ".m4a",
		OriginalTranscript: "remember to buy groceries",
		EnhancedTranscript: "Buy groceries.",
		Language:           "en",
		Style:              "note",
		DurationSeconds:    12.5,
		WordCount:          2,
		CharacterCount:     14,
	}
}

func TestRepository_CreateRecording(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	recording := testRecording("rec-1")
	err := repo.CreateRecording(ctx, recording)
	require.NoError(t, err)
	assert.NotZero(t, recording.ID)

	t.Run("duplicate recording id is rejected", func(t *testing.T) {
		err := repo.CreateRecording(ctx, testRecording("rec-1"))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeAlreadyExists))
	})
}

func TestRepository_GetByRecordingID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateRecording(ctx, testRecording("rec-1")))

	retrieved, err := repo.GetByRecordingID(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries.", retrieved.EnhancedTranscript)

	_, err = repo.GetByRecordingID(ctx, "missing")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}

func TestRepository_ListByUserID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.CreateRecording(ctx, testRecording(fmt.Sprintf("rec-%d", i))))
	}
	other := testRecording("other-1")
	other.UserID = "user-2"
	require.NoError(t, repo.CreateRecording(ctx, other))

	recordings, total, err := repo.ListByUserID(ctx, "user-1", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, recordings, 3)

	recordings, _, err = repo.ListByUserID(ctx, "user-1", 2, 3)
	require.NoError(t, err)
	assert.Len(t, recordings, 2)
}

func TestRepository_UpdateRecording(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	recording := testRecording("rec-1")
	require.NoError(t, repo.CreateRecording(ctx, recording))

	recording.EnhancedTranscript = "Buy groceries and milk."
	recording.Style = "summary"
	require.NoError(t, repo.UpdateRecording(ctx, recording))

	retrieved, err := repo.GetByRecordingID(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries and milk.", retrieved.EnhancedTranscript)
	assert.Equal(t, "summary", retrieved.Style)
}

func TestRepository_DeleteByRecordingID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateRecording(ctx, testRecording("rec-1")))
	require.NoError(t, repo.DeleteByRecordingID(ctx, "rec-1"))

	_, err := repo.GetByRecordingID(ctx, "rec-1")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	err = repo.DeleteByRecordingID(ctx, "rec-1")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}
