package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

func TestUploadRetrySchedule(t *testing.T) {
	path := writeTempAudio(t, "audio bytes")
	o, pm := newTestOrchestrator(Config{})

	pm.store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("connection reset by peer")).Twice()
	pm.store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/user-1/rec-1.m4a", nil).Once()

	j := newJob(baseRequest(path))
	err := o.upload(context.Background(), j)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/user-1/rec-1.m4a", j.audioURL)
	pm.store.AssertNumberOfCalls(t, "Upload", 3)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, pm.timer.waits)
}

func TestUploadGivesUpAfterThreeAttempts(t *testing.T) {
	path := writeTempAudio(t, "audio bytes")
	o, pm := newTestOrchestrator(Config{})

	pm.store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("connection reset by peer"))

	j := newJob(baseRequest(path))
	err := o.upload(context.Background(), j)
	require.Error(t, err)

	assert.Empty(t, j.audioURL)
	pm.store.AssertNumberOfCalls(t, "Upload", 3)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, pm.timer.waits)
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	path := writeTempAudio(t, "these bytes exceed a tiny ceiling")
	o, pm := newTestOrchestrator(Config{MaxUploadSize: 8})

	j := newJob(baseRequest(path))
	err := o.upload(context.Background(), j)
	require.Error(t, err)

	assert.True(t, apperrors.Is(err, apperrors.ErrCodeFileTooLarge))
	assert.Empty(t, pm.store.Calls, "oversize files are rejected before any upload attempt")
}

func TestUploadRejectsMissingAndEmptyFiles(t *testing.T) {
	o, pm := newTestOrchestrator(Config{})

	j := newJob(baseRequest("/nonexistent/note.m4a"))
	err := o.upload(context.Background(), j)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	empty := writeTempAudio(t, "")
	j = newJob(baseRequest(empty))
	err = o.upload(context.Background(), j)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	assert.Empty(t, pm.store.Calls)
}

func TestUploadObjectPathIsDeterministic(t *testing.T) {
	path := writeTempAudio(t, "audio")
	o, pm := newTestOrchestrator(Config{})

	pm.store.On("Upload", mock.Anything, "user-1/rec-1.m4a", mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/user-1/rec-1.m4a", nil)

	for i := 0; i < 2; i++ {
		j := newJob(baseRequest(path))
		require.NoError(t, o.upload(context.Background(), j))
		assert.Equal(t, "user-1/rec-1.m4a", j.audioPath, "rerun %d must target the same object", i)
	}
	pm.store.AssertNumberOfCalls(t, "Upload", 2)
}

func TestAudioContentType(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".m4a", "audio/mp4"},
		{".mp3", "audio/mpeg"},
		{".wav", "audio/wav"},
		{".ogg", "audio/ogg"},
		{".bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, audioContentType(tt.ext), "extension %s", tt.ext)
	}
}
