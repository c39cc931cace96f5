package pipeline

import (
	"context"
	"fmt"
	"strings"
)

// enhance rewrites the transcript in the requested style. Enhancement is the
// one non-fatal stage: any failure falls back to the original transcript and
// marks the result degraded so the caller still gets a usable note.
func (o *Orchestrator) enhance(ctx context.Context, j *job) error {
	j.report(StageEnhancing, 0)

	instruction, err := j.req.Style.Instruction()
	if err != nil {
		// ParseStyle already validated the style; this only triggers on a
		// hand-built Request.
		return err
	}

	enhanced, tokens, genErr := o.generate(ctx, j, instruction, j.originalTranscript)
	if genErr != nil {
		o.log.WithError(genErr).WithField("recording_id", j.req.RecordingID).
			Warn("enhancement failed, keeping original transcript")
		j.enhancedTranscript = j.originalTranscript
		j.degraded = true
		j.warn("enhancement unavailable, showing original transcript")
		j.stageComplete(StageEnhancing)
		return nil
	}

	if strings.TrimSpace(enhanced) == "" {
		o.log.WithField("recording_id", j.req.RecordingID).
			Warn("enhancement returned empty text, keeping original transcript")
		j.enhancedTranscript = j.originalTranscript
		j.degraded = true
		j.warn("enhancement unavailable, showing original transcript")
		j.stageComplete(StageEnhancing)
		return nil
	}

	j.enhancedTranscript = enhanced
	if score := scoreEnhancement(j.originalTranscript, enhanced); score < QualityThreshold {
		j.warn(fmt.Sprintf("enhancement quality score %d is below %d", score, QualityThreshold))
	}
	j.cost += tokenCost(tokens, o.cfg.InputTokenCost, o.cfg.OutputTokenCost)

	j.stageComplete(StageEnhancing)
	return nil
}

// generate runs one text generation call under the retry policy, reporting
// coarse stage progress around the call.
func (o *Orchestrator) generate(ctx context.Context, j *job, instruction, text string) (string, int, error) {
	var (
		out    string
		tokens int
	)
	err := o.retry(j, StageEnhancing).Do(ctx, func() error {
		j.report(StageEnhancing, 20)
		completion, genErr := o.gen.Complete(ctx, instruction, text)
		if genErr != nil {
			return fmt.Errorf("generating text: %w", genErr)
		}
		out = completion.Text
		tokens = completion.TokensUsed
		return nil
	})
	if err != nil {
		return "", 0, err
	}
	return out, tokens, nil
}

// tokenCost estimates the generation cost from the total billed tokens. The
// API only reports a combined figure, so the split assumes the usual 60/40
// input-to-output ratio for rewrite workloads.
func tokenCost(totalTokens int, inputCost, outputCost float64) float64 {
	input := float64(totalTokens) * 0.6
	output := float64(totalTokens) * 0.4
	return input*inputCost + output*outputCost
}
