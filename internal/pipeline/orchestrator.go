// Package pipeline runs the four-stage recording flow: upload the audio,
// transcribe it, enhance the transcript, persist the note. Stages report
// progress into fixed bands of a single 0-100 scale and a failed run cleans
// up any audio it already uploaded.
package pipeline

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voicenotes/voicenote-api/internal/models"
	"github.com/voicenotes/voicenote-api/internal/providers"
	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
	"github.com/voicenotes/voicenote-api/pkg/retry"
)

// Config carries the pipeline's tunables
type Config struct {
	// MaxUploadSize is the local file ceiling in bytes
	MaxUploadSize int64
	// CostPerMinute is the transcription price per audio minute
	CostPerMinute float64
	// InputTokenCost and OutputTokenCost are per-token generation prices
	InputTokenCost  float64
	OutputTokenCost float64
	// Retry is applied to every provider call
	Retry retry.Policy
}

// Orchestrator drives recording runs against injected providers
type Orchestrator struct {
	store  providers.ObjectStore
	stt    providers.SpeechToText
	gen    providers.TextGenerator
	prober providers.AudioProber
	notes  NoteStore
	cfg    Config
	log    *logrus.Logger
}

// NewOrchestrator wires the pipeline against its collaborators
func NewOrchestrator(
	store providers.ObjectStore,
	stt providers.SpeechToText,
	gen providers.TextGenerator,
	prober providers.AudioProber,
	notes NoteStore,
	cfg Config,
	log *logrus.Logger,
) *Orchestrator {
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = retry.DefaultPolicy()
	}
	return &Orchestrator{
		store:  store,
		stt:    stt,
		gen:    gen,
		prober: prober,
		notes:  notes,
		cfg:    cfg,
		log:    log,
	}
}

// retry builds the stage policy with attempt logging layered on top of any
// caller-provided notify hook.
func (o *Orchestrator) retry(j *job, stage Stage) retry.Policy {
	p := o.cfg.Retry
	inner := p.Notify
	p.Notify = func(err error, wait time.Duration) {
		o.log.WithError(err).WithFields(logrus.Fields{
			"recording_id": j.req.RecordingID,
			"stage":        stage,
			"wait":         wait,
		}).Warn("stage attempt failed, retrying")
		if inner != nil {
			inner(err, wait)
		}
	}
	return p
}

// Process runs the full pipeline for one recording. Validation happens before
// any provider is touched; a fatal stage failure triggers the compensating
// delete of already-uploaded audio and comes back as a stage-tagged *Error.
func (o *Orchestrator) Process(ctx context.Context, req Request) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	j := newJob(req)
	log := o.log.WithFields(logrus.Fields{
		"recording_id": req.RecordingID,
		"user_id":      req.UserID,
		"style":        req.Style.Kind,
	})
	log.Info("starting recording pipeline")

	if err := o.upload(ctx, j); err != nil {
		return nil, o.fail(ctx, j, StageUploading, err)
	}
	if err := o.transcribe(ctx, j); err != nil {
		return nil, o.fail(ctx, j, StageTranscribing, err)
	}
	if err := o.enhance(ctx, j); err != nil {
		return nil, o.fail(ctx, j, StageEnhancing, err)
	}
	if err := o.persist(ctx, j); err != nil {
		return nil, o.fail(ctx, j, StageSaving, err)
	}

	j.report(StageComplete, 100)
	log.WithFields(logrus.Fields{
		"duration_seconds": j.durationSeconds,
		"cost_estimate":    j.cost,
		"degraded":         j.degraded,
	}).Info("recording pipeline complete")

	return j.result(), nil
}

func validateRequest(req Request) error {
	if req.UserID == "" {
		return apperrors.ValidationError("user_id", "must not be empty")
	}
	if req.RecordingID == "" {
		return apperrors.ValidationError("recording_id", "must not be empty")
	}
	if req.LocalAudioPath == "" {
		return apperrors.ValidationError("audio", "local audio path must not be empty")
	}
	if req.Style.RequiresPremium() && !req.IsPremium {
		return apperrors.New(apperrors.ErrCodePremiumOnly, "custom styles require a premium account")
	}
	return nil
}

// fail wraps a stage error and, when audio already reached storage, removes
// it again so an aborted run leaves nothing behind. The delete runs at most
// once and its own failure is logged but never masks the stage error.
func (o *Orchestrator) fail(ctx context.Context, j *job, stage Stage, err error) error {
	j.report(StageError, 0)

	if j.audioURL != "" {
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()

		if delErr := o.store.Delete(cleanupCtx, j.audioPath); delErr != nil {
			o.log.WithError(delErr).WithField("path", j.audioPath).
				Error("compensating delete failed, orphaned audio object remains")
		} else {
			o.log.WithField("path", j.audioPath).Info("removed uploaded audio after pipeline failure")
		}
		j.audioURL = ""
	}

	return &Error{Stage: stage, Category: apperrors.Categorize(err), Err: err}
}

// Regenerate re-enhances a stored note in a new style without re-uploading or
// re-transcribing. Unlike the in-pipeline enhancement there is no silent
// fallback: the user asked for this rewrite explicitly, so failure surfaces.
func (o *Orchestrator) Regenerate(ctx context.Context, recordingID string, style Style, isPremium bool) (*models.Recording, error) {
	if style.RequiresPremium() && !isPremium {
		return nil, apperrors.New(apperrors.ErrCodePremiumOnly, "custom styles require a premium account")
	}

	recording, err := o.notes.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return nil, err
	}

	instruction, err := style.Instruction()
	if err != nil {
		return nil, err
	}

	j := newJob(Request{RecordingID: recordingID, Style: style})
	enhanced, tokens, err := o.generate(ctx, j, instruction, recording.OriginalTranscript)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExternalService, "regenerating transcript")
	}

	recording.EnhancedTranscript = enhanced
	recording.Style = string(style.Kind)
	recording.WordCount = countWords(enhanced)
	recording.CharacterCount = len(enhanced)
	recording.CostEstimate += tokenCost(tokens, o.cfg.InputTokenCost, o.cfg.OutputTokenCost)
	recording.EnhancementDegraded = false

	if err := o.notes.Update(ctx, recording); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "saving regenerated transcript")
	}
	return recording, nil
}

// Translate renders a stored note's enhanced transcript in another language.
// The translation is returned, not persisted; the note keeps its original
// language version.
func (o *Orchestrator) Translate(ctx context.Context, recordingID, targetLanguage string) (string, error) {
	if targetLanguage == "" {
		return "", apperrors.ValidationError("target_language", "must not be empty")
	}

	recording, err := o.notes.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return "", err
	}

	j := newJob(Request{RecordingID: recordingID})
	translated, _, err := o.generate(ctx, j, translateInstruction(targetLanguage), recording.EnhancedTranscript)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeExternalService, "translating transcript")
	}
	return translated, nil
}
