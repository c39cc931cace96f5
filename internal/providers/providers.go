// Package providers defines the narrow contracts the pipeline uses to reach
// its external collaborators: object storage, speech-to-text, text generation
// and local audio probing. Concrete clients live in subpackages.
package providers

import (
	"context"
	"io"
)

// ObjectStore uploads and deletes durable audio objects.
type ObjectStore interface {
	// Upload stores body at path and returns the public URL of the object.
	Upload(ctx context.Context, path, contentType string, body io.Reader, size int64) (string, error)
	// Delete removes the object at path.
	Delete(ctx context.Context, path string) error
}

// SpeechResult is the outcome of one transcription request.
type SpeechResult struct {
	Text            string
	Language        string
	DurationSeconds float64 // as reported by the provider; may be zero
}

// SpeechToText transcribes audio bytes.
type SpeechToText interface {
	Transcribe(ctx context.Context, audio []byte, filename, languageHint string) (*SpeechResult, error)
}

// Completion is the outcome of one text generation request.
type Completion struct {
	Text       string
	TokensUsed int // total tokens billed for the request; may be zero
}

// TextGenerator produces text from a system instruction and user text. Used
// for both enhancement and translation with different instructions.
type TextGenerator interface {
	Complete(ctx context.Context, systemInstruction, userText string) (*Completion, error)
}

// AudioProber measures a local audio asset.
type AudioProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}
