package pipeline

import (
	"strings"
	"unicode"
)

// Advisory quality checks. These flag suspect provider output to the caller
// but never fail the pipeline on their own.

// QualityThreshold is the enhancement score below which a warning is surfaced
const QualityThreshold = 70

// fillerWords are speech artifacts an enhanced transcript should have shed
var fillerWords = []string{"um", "uh", "umm", "uhh", "you know", "i mean", "sort of", "kind of"}

// transcriptWarnings returns the reasons a transcription result looks like a
// silence or noise misfire. Short-but-valid notes stay unflagged as long as
// they carry at least a few real words.
func transcriptWarnings(text string) []string {
	var warnings []string

	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 10 {
		warnings = append(warnings, "transcript is under 10 characters")
	}
	if hasRepeatedRun(trimmed, 10) {
		warnings = append(warnings, "transcript repeats a single character 10+ times")
	}
	if isAllNumeric(trimmed) {
		warnings = append(warnings, "transcript is entirely numeric")
	}
	if len(strings.Fields(trimmed)) < 3 {
		warnings = append(warnings, "transcript has fewer than 3 words")
	}

	return warnings
}

// scoreEnhancement rates an enhanced transcript against its input on a 0-100
// scale, starting at 100 and deducting per defect.
func scoreEnhancement(original, enhanced string) int {
	score := 100

	if enhanced == original {
		score -= 50
	}
	if len(original) > 0 && len(enhanced) < len(original)*30/100 {
		score -= 20
	}
	if !hasTerminalPunctuation(enhanced) {
		score -= 15
	}
	if containsFillerWords(enhanced) {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	return score
}

func hasRepeatedRun(s string, minRun int) bool {
	run := 0
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= minRun {
			return true
		}
		prev = r
	}
	return false
}

func isAllNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func hasTerminalPunctuation(s string) bool {
	return strings.ContainsAny(s, ".!?")
}

func containsFillerWords(s string) bool {
	lower := " " + strings.ToLower(s) + " "
	for _, filler := range fillerWords {
		if strings.Contains(lower, " "+filler+" ") ||
			strings.Contains(lower, " "+filler+",") ||
			strings.Contains(lower, " "+filler+".") {
			return true
		}
	}
	return false
}
