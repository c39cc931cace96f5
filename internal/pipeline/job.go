package pipeline

import (
	"fmt"

	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

// ProgressFunc receives the current stage and the overall 0-100 percentage
type ProgressFunc func(stage Stage, overallPercent int)

// StageCompleteFunc is invoked once when a stage finishes
type StageCompleteFunc func(stage Stage)

// Request describes one end-to-end pipeline run for a single recording
type Request struct {
	UserID         string
	RecordingID    string // client-generated, stable across retries
	LocalAudioPath string
	Style          Style
	LanguageHint   string
	IsPremium      bool

	OnProgress      ProgressFunc
	OnStageComplete StageCompleteFunc
}

// Result is the successful outcome of a pipeline run
type Result struct {
	NoteID              uint      `json:"note_id"`
	RecordingID         string    `json:"recording_id"`
	AudioURL            string    `json:"audio_url"`
	OriginalTranscript  string    `json:"original_transcript"`
	EnhancedTranscript  string    `json:"enhanced_transcript"`
	Language            string    `json:"language"`
	Style               StyleKind `json:"style"`
	DurationSeconds     float64   `json:"duration_seconds"`
	WordCount           int       `json:"word_count"`
	CharacterCount      int       `json:"character_count"`
	CostEstimate        float64   `json:"cost_estimate"`
	EnhancementDegraded bool      `json:"enhancement_degraded"`
	Warnings            []string  `json:"warnings,omitempty"`
}

// Error is a stage-tagged pipeline failure with its user-facing category
type Error struct {
	Stage    Stage
	Category apperrors.Category
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pipeline failed during %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// job carries the mutable accumulators of one run. The orchestrator owns it
// exclusively for the lifetime of the run; callers only observe the progress
// callbacks.
type job struct {
	req Request

	audioData []byte
	audioPath string
	audioURL  string

	originalTranscript string
	enhancedTranscript string
	detectedLanguage   string
	durationSeconds    float64
	cost               float64

	noteID   uint
	degraded bool
	warnings []string

	lastOverall int
}

func newJob(req Request) *job {
	return &job{req: req}
}

// report maps stage-local progress onto the overall scale and notifies the
// caller. Reported percentages never decrease, even if an upload attempt
// restarts after a retry.
func (j *job) report(stage Stage, stagePercent int) {
	overall := OverallProgress(stage, stagePercent)
	if overall < j.lastOverall {
		overall = j.lastOverall
	}
	j.lastOverall = overall

	if j.req.OnProgress != nil {
		j.req.OnProgress(stage, overall)
	}
}

// stageComplete reports the end of a stage's band and fires the completion hook
func (j *job) stageComplete(stage Stage) {
	j.report(stage, 100)
	if j.req.OnStageComplete != nil {
		j.req.OnStageComplete(stage)
	}
}

func (j *job) warn(msg string) {
	j.warnings = append(j.warnings, msg)
}

func (j *job) result() *Result {
	return &Result{
		NoteID:              j.noteID,
		RecordingID:         j.req.RecordingID,
		AudioURL:            j.audioURL,
		OriginalTranscript:  j.originalTranscript,
		EnhancedTranscript:  j.enhancedTranscript,
		Language:            j.detectedLanguage,
		Style:               j.req.Style.Kind,
		DurationSeconds:     j.durationSeconds,
		WordCount:           countWords(j.enhancedTranscript),
		CharacterCount:      len(j.enhancedTranscript),
		CostEstimate:        j.cost,
		EnhancementDegraded: j.degraded,
		Warnings:            j.warnings,
	}
}
