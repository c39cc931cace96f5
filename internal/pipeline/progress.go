package pipeline

// Stage is one discrete step of the recording pipeline
type Stage string

const (
	StageUploading    Stage = "uploading"
	StageTranscribing Stage = "transcribing"
	StageEnhancing    Stage = "enhancing"
	StageSaving       Stage = "saving"
	StageComplete     Stage = "complete"
	StageError        Stage = "error"
)

// progressBand is the slice of the overall 0-100 scale reserved for a stage
type progressBand struct {
	start int
	end   int
}

var stageBands = map[Stage]progressBand{
	StageUploading:    {0, 25},
	StageTranscribing: {25, 60},
	StageEnhancing:    {60, 90},
	StageSaving:       {90, 100},
}

// OverallProgress linearly remaps a stage-local percentage (0-100) onto the
// stage's reserved band of the overall scale. StageComplete always maps to
// 100; unknown stages map to 0.
func OverallProgress(stage Stage, stagePercent int) int {
	if stage == StageComplete {
		return 100
	}

	band, ok := stageBands[stage]
	if !ok {
		return 0
	}

	if stagePercent < 0 {
		stagePercent = 0
	} else if stagePercent > 100 {
		stagePercent = 100
	}

	return band.start + (band.end-band.start)*stagePercent/100
}
