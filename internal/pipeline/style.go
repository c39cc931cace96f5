package pipeline

import (
	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

// StyleKind identifies an output style for the enhanced transcript
type StyleKind string

const (
	StyleNote       StyleKind = "note"
	StyleEmail      StyleKind = "email"
	StyleBlog       StyleKind = "blog"
	StyleSummary    StyleKind = "summary"
	StyleTranscript StyleKind = "transcript"
	StyleCustom     StyleKind = "custom"
)

// styleInstructions maps each fixed style to its system instruction. Custom is
// deliberately absent: its instruction comes from the caller.
var styleInstructions = map[StyleKind]string{
	StyleNote: "You restructure voice-note transcripts into clear notes. Remove filler words and " +
		"false starts, keep every substantive point, and organize the content as short bullet points " +
		"under brief headings where the material calls for them. Reply with the note only.",
	StyleEmail: "You rewrite voice-note transcripts as professional emails. Produce a short greeting, " +
		"a well-structured body that keeps every substantive point, and a courteous closing. " +
		"Reply with the email only.",
	StyleBlog: "You rewrite voice-note transcripts as engaging blog posts. Add a title, structure the " +
		"content into readable paragraphs with a clear flow, and keep the speaker's ideas and voice. " +
		"Reply with the post only.",
	StyleSummary: "You summarize voice-note transcripts. Extract the 3-5 most important points and " +
		"present them as concise bullet points. Reply with the bullets only.",
	StyleTranscript: "You clean up raw voice-note transcripts. Preserve all content and wording as far " +
		"as possible while fixing grammar, punctuation and obvious recognition mistakes. " +
		"Reply with the cleaned transcript only.",
}

// Style is a closed set of output variants. All fixed kinds carry their own
// instruction template; StyleCustom carries the caller-supplied instruction
// and is only available to premium accounts.
type Style struct {
	Kind              StyleKind
	CustomInstruction string
}

// ParseStyle builds a Style from wire values and validates the combination.
func ParseStyle(kind string, customInstruction string) (Style, error) {
	s := Style{Kind: StyleKind(kind), CustomInstruction: customInstruction}

	switch s.Kind {
	case StyleNote, StyleEmail, StyleBlog, StyleSummary, StyleTranscript:
		return s, nil
	case StyleCustom:
		if customInstruction == "" {
			return Style{}, apperrors.ValidationError("custom_prompt", "custom style requires instruction text")
		}
		return s, nil
	default:
		return Style{}, apperrors.ValidationError("style", "unknown style: "+kind)
	}
}

// RequiresPremium reports whether the style is gated to premium accounts
func (s Style) RequiresPremium() bool {
	return s.Kind == StyleCustom
}

// Instruction returns the system instruction for the style
func (s Style) Instruction() (string, error) {
	if s.Kind == StyleCustom {
		if s.CustomInstruction == "" {
			return "", apperrors.ValidationError("custom_prompt", "custom style requires instruction text")
		}
		return s.CustomInstruction, nil
	}

	instruction, ok := styleInstructions[s.Kind]
	if !ok {
		return "", apperrors.ValidationError("style", "unknown style: "+string(s.Kind))
	}
	return instruction, nil
}

// translateInstruction builds the system instruction for the stand-alone
// translation operation.
func translateInstruction(targetLanguage string) string {
	return "You translate transcripts. Translate the user's text into " + targetLanguage +
		", preserving meaning, tone and formatting. Reply with the translation only."
}
