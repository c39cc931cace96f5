// Package ffmpeg wraps ffprobe for local audio inspection. The pipeline uses
// it to measure recording duration independently of what the transcription
// provider reports, so cost accounting works even when the provider omits it.
package ffmpeg

import (
	"fmt"
	"os/exec"
	"time"
)

// FFmpeg wraps ffprobe functionality
type FFmpeg struct {
	ffprobePath string
	timeout     time.Duration
}

// New creates a new FFmpeg instance
func New(ffprobePath string, timeout time.Duration) *FFmpeg {
	return &FFmpeg{
		ffprobePath: ffprobePath,
		timeout:     timeout,
	}
}

// ValidateBinaries checks if ffprobe is available
func (f *FFmpeg) ValidateBinaries() error {
	if _, err := exec.LookPath(f.ffprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFprobeNotFound, f.ffprobePath)
	}
	return nil
}
