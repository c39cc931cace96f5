package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
	"github.com/voicenotes/voicenote-api/pkg/retry"
)

// transcribe probes the audio duration, sends the audio to the speech-to-text
// provider under the retry policy and accumulates the per-minute cost. An
// empty transcript is fatal: nothing downstream can work with it.
func (o *Orchestrator) transcribe(ctx context.Context, j *job) error {
	j.report(StageTranscribing, 0)

	// The probe is authoritative for billing; the provider's reported
	// duration is only a fallback when probing fails.
	probed, probeErr := o.prober.Duration(ctx, j.req.LocalAudioPath)
	if probeErr != nil {
		o.log.WithError(probeErr).WithField("recording_id", j.req.RecordingID).
			Warn("duration probe failed, falling back to provider-reported duration")
	} else {
		j.durationSeconds = probed
	}
	j.report(StageTranscribing, 10)

	filename := filepath.Base(j.req.LocalAudioPath)

	err := o.retry(j, StageTranscribing).Do(ctx, func() error {
		result, sttErr := o.stt.Transcribe(ctx, j.audioData, filename, j.req.LanguageHint)
		if sttErr != nil {
			// Oversize and unsupported-format rejections never heal on
			// their own, so retrying would only burn the budget.
			if apperrors.Is(sttErr, apperrors.ErrCodeUnsupported) || apperrors.Is(sttErr, apperrors.ErrCodeFileTooLarge) {
				return retry.Permanent(sttErr)
			}
			return fmt.Errorf("transcribing %s: %w", filename, sttErr)
		}

		if strings.TrimSpace(result.Text) == "" {
			return retry.Permanent(apperrors.New(apperrors.ErrCodeExternalService,
				"transcription returned empty text, audio may be silent or corrupted"))
		}

		j.originalTranscript = result.Text
		j.detectedLanguage = result.Language
		if j.durationSeconds == 0 {
			j.durationSeconds = result.DurationSeconds
		}
		return nil
	})
	if err != nil {
		return err
	}

	if j.detectedLanguage == "" {
		j.detectedLanguage = j.req.LanguageHint
	}
	j.warnings = append(j.warnings, transcriptWarnings(j.originalTranscript)...)
	j.cost += j.durationSeconds / 60 * o.cfg.CostPerMinute

	j.stageComplete(StageTranscribing)
	return nil
}
