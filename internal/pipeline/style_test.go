package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/voicenotes/voicenote-api/pkg/errors"
)

func TestParseStyle(t *testing.T) {
	t.Run("accepts every fixed style", func(t *testing.T) {
		for _, kind := range []string{"note", "email", "blog", "summary", "transcript"} {
			s, err := ParseStyle(kind, "")
			require.NoError(t, err, "style %s", kind)
			assert.Equal(t, StyleKind(kind), s.Kind)
			assert.False(t, s.RequiresPremium())
		}
	})

	t.Run("custom requires instruction text", func(t *testing.T) {
		_, err := ParseStyle("custom", "")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

		s, err := ParseStyle("custom", "rewrite as a haiku")
		require.NoError(t, err)
		assert.True(t, s.RequiresPremium())
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := ParseStyle("sonnet", "")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})
}

func TestStyleInstruction(t *testing.T) {
	t.Run("fixed styles have distinct instructions", func(t *testing.T) {
		seen := make(map[string]StyleKind)
		for _, kind := range []StyleKind{StyleNote, StyleEmail, StyleBlog, StyleSummary, StyleTranscript} {
			instruction, err := Style{Kind: kind}.Instruction()
			require.NoError(t, err)
			require.NotEmpty(t, instruction)
			if prev, dup := seen[instruction]; dup {
				t.Fatalf("styles %s and %s share an instruction", prev, kind)
			}
			seen[instruction] = kind
		}
	})

	t.Run("custom returns caller text verbatim", func(t *testing.T) {
		instruction, err := Style{Kind: StyleCustom, CustomInstruction: "make it rhyme"}.Instruction()
		require.NoError(t, err)
		assert.Equal(t, "make it rhyme", instruction)
	})
}
