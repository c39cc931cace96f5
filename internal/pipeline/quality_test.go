package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscriptWarnings(t *testing.T) {
	t.Run("clean transcript has no warnings", func(t *testing.T) {
		assert.Empty(t, transcriptWarnings("Remember to call the dentist tomorrow morning."))
	})

	t.Run("near-empty transcript", func(t *testing.T) {
		warnings := transcriptWarnings("hm")
		assert.NotEmpty(t, warnings)
	})

	t.Run("repeated character run", func(t *testing.T) {
		warnings := transcriptWarnings("the recording said aaaaaaaaaaaa over and over")
		assert.Contains(t, warnings, "transcript repeats a single character 10+ times")
	})

	t.Run("purely numeric output", func(t *testing.T) {
		warnings := transcriptWarnings("12345 67890 11111")
		assert.Contains(t, warnings, "transcript is entirely numeric")
	})

	t.Run("too few words", func(t *testing.T) {
		warnings := transcriptWarnings("hello there")
		assert.Contains(t, warnings, "transcript has fewer than 3 words")
	})
}

func TestScoreEnhancement(t *testing.T) {
	original := "um so I was thinking we should uh probably move the meeting to thursday"

	t.Run("good rewrite scores full marks", func(t *testing.T) {
		enhanced := "We should move the meeting to Thursday."
		assert.Equal(t, 100, scoreEnhancement(original, enhanced))
	})

	t.Run("unchanged output is heavily penalized", func(t *testing.T) {
		score := scoreEnhancement(original, original)
		assert.Less(t, score, QualityThreshold)
	})

	t.Run("severe truncation is penalized", func(t *testing.T) {
		score := scoreEnhancement(original, "Meeting moved.")
		assert.Equal(t, 80, score)
	})

	t.Run("missing terminal punctuation is penalized", func(t *testing.T) {
		score := scoreEnhancement(original, "We should move the meeting to Thursday")
		assert.Equal(t, 85, score)
	})

	t.Run("surviving filler words are penalized", func(t *testing.T) {
		score := scoreEnhancement(original, "We should um move the meeting to Thursday.")
		assert.Equal(t, 90, score)
	})

	t.Run("score never goes below zero", func(t *testing.T) {
		assert.GreaterOrEqual(t, scoreEnhancement("um uh", "um uh"), 0)
	})
}
