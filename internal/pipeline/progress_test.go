package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallProgress(t *testing.T) {
	tests := []struct {
		name         string
		stage        Stage
		stagePercent int
		want         int
	}{
		{"upload start", StageUploading, 0, 0},
		{"upload half", StageUploading, 50, 12},
		{"upload done", StageUploading, 100, 25},
		{"transcribe start", StageTranscribing, 0, 25},
		{"transcribe half", StageTranscribing, 50, 42},
		{"transcribe done", StageTranscribing, 100, 60},
		{"enhance start", StageEnhancing, 0, 60},
		{"enhance half", StageEnhancing, 50, 75},
		{"enhance done", StageEnhancing, 100, 90},
		{"save start", StageSaving, 0, 90},
		{"save done", StageSaving, 100, 100},
		{"complete always full", StageComplete, 0, 100},
		{"negative clamps to band start", StageTranscribing, -20, 25},
		{"overshoot clamps to band end", StageEnhancing, 150, 90},
		{"unknown stage", Stage("mystery"), 50, 0},
		{"error stage", StageError, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverallProgress(tt.stage, tt.stagePercent))
		})
	}
}

func TestStageBandsAreContiguous(t *testing.T) {
	order := []Stage{StageUploading, StageTranscribing, StageEnhancing, StageSaving}

	assert.Equal(t, 0, stageBands[order[0]].start)
	for i := 1; i < len(order); i++ {
		assert.Equal(t, stageBands[order[i-1]].end, stageBands[order[i]].start,
			"band of %s must start where %s ends", order[i], order[i-1])
	}
	assert.Equal(t, 100, stageBands[order[len(order)-1]].end)
}

func TestJobReportIsMonotonic(t *testing.T) {
	var reported []int
	j := newJob(Request{
		OnProgress: func(_ Stage, overall int) {
			reported = append(reported, overall)
		},
	})

	j.report(StageUploading, 80)
	j.report(StageUploading, 40) // a retried attempt restarting from zero
	j.report(StageUploading, 100)
	j.report(StageTranscribing, 0)

	assert.Equal(t, []int{20, 20, 25, 25}, reported)
}
