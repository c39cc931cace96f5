// Package whisper implements the speech-to-text contract against the OpenAI
// audio transcription endpoint.
package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
	"github.com/voicenotes/voicenote-api/internal/providers"
)

// DefaultMaxFileSize is the provider's hard per-request ceiling (25 MiB).
const DefaultMaxFileSize = 25 * 1024 * 1024

// Config holds Whisper API settings
type Config struct {
	APIKey      string
	APIURL      string
	Model       string
	Temperature float64
	Timeout     time.Duration
	MaxFileSize int64
}

// Client calls the transcription API
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a transcription client
func NewClient(cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = "https://api.openai.com/v1/audio/transcriptions"
	}
	if cfg.Model == "" {
		cfg.Model = "whisper-1"
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// verboseResponse is the verbose_json response shape
type verboseResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
}

// errorResponse is the API error envelope
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Transcribe sends audio bytes to the transcription API and returns the
// recognized text. Payloads over the provider ceiling fail immediately:
// splitting large recordings into chunks is not yet supported, and silently
// truncating would corrupt the note.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename, languageHint string) (*providers.SpeechResult, error) {
	if int64(len(audio)) > c.cfg.MaxFileSize {
		return nil, apperrors.Newf(apperrors.ErrCodeUnsupported,
			"audio payload is %d bytes, over the %d byte transcription limit; chunked transcription is not yet supported",
			len(audio), c.cfg.MaxFileSize)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("writing audio payload: %w", err)
	}

	_ = writer.WriteField("model", c.cfg.Model)
	_ = writer.WriteField("response_format", "verbose_json")
	_ = writer.WriteField("temperature", strconv.FormatFloat(c.cfg.Temperature, 'f', -1, 64))
	if languageHint != "" {
		_ = writer.WriteField("language", languageHint)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, &body)
	if err != nil {
		return nil, fmt.Errorf("creating transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading transcription response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("transcription API returned %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("transcription API returned %d", resp.StatusCode)
	}

	var parsed verboseResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decoding transcription response: %w", err)
	}

	return &providers.SpeechResult{
		Text:            parsed.Text,
		Language:        parsed.Language,
		DurationSeconds: parsed.Duration,
	}, nil
}
