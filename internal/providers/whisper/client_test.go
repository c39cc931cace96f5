package whisper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

func TestTranscribe(t *testing.T) {
	t.Run("parses verbose response", func(t *testing.T) {
		var gotAuth, gotModel, gotFormat, gotLanguage string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotAuth = r.Header.Get("Authorization")
			gotModel = r.FormValue("model")
			gotFormat = r.FormValue("response_format")
			gotLanguage = r.FormValue("language")

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "note.m4a", header.Filename)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"text":"hello from the meeting","language":"en","duration":93.5}`))
		}))
		defer server.Close()

		client := NewClient(Config{APIKey: "test-key", APIURL: server.URL})

		result, err := client.Transcribe(context.Background(), []byte("fake audio"), "note.m4a", "en")
		require.NoError(t, err)

		assert.Equal(t, "hello from the meeting", result.Text)
		assert.Equal(t, "en", result.Language)
		assert.Equal(t, 93.5, result.DurationSeconds)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "whisper-1", gotModel)
		assert.Equal(t, "verbose_json", gotFormat)
		assert.Equal(t, "en", gotLanguage)
	})

	t.Run("omits language field without a hint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Empty(t, r.FormValue("language"))
			w.Write([]byte(`{"text":"ok","language":"de","duration":1}`))
		}))
		defer server.Close()

		client := NewClient(Config{APIKey: "test-key", APIURL: server.URL})

		result, err := client.Transcribe(context.Background(), []byte("fake audio"), "note.m4a", "")
		require.NoError(t, err)
		assert.Equal(t, "de", result.Language)
	})

	t.Run("rejects oversize payload without calling the API", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := NewClient(Config{APIKey: "test-key", APIURL: server.URL, MaxFileSize: 8})

		_, err := client.Transcribe(context.Background(), []byte("way over eight bytes"), "note.m4a", "")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeUnsupported))
		assert.Contains(t, err.Error(), "chunked transcription is not yet supported")
		assert.False(t, called)
	})

	t.Run("surfaces API error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
		}))
		defer server.Close()

		client := NewClient(Config{APIKey: "bad-key", APIURL: server.URL})

		_, err := client.Transcribe(context.Background(), []byte("fake audio"), "note.m4a", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "Incorrect API key provided")
		assert.Equal(t, apperrors.CategoryInvalidCredentials, apperrors.Categorize(err))
	})

	t.Run("handles non-JSON error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		}))
		defer server.Close()

		client := NewClient(Config{APIKey: "test-key", APIURL: server.URL})

		_, err := client.Transcribe(context.Background(), []byte("fake audio"), "note.m4a", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})

	assert.Equal(t, "https://api.openai.com/v1/audio/transcriptions", client.cfg.APIURL)
	assert.Equal(t, "whisper-1", client.cfg.Model)
	assert.Equal(t, int64(DefaultMaxFileSize), client.cfg.MaxFileSize)
}
