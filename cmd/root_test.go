package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "voicenote-api", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"serve", "version", "migrate"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "subcommand %s", name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	cmd := NewRootCmd()

	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("json-logs"))
}
