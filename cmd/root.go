package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/voicenotes/voicenote-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "voicenote-api",
	Short: "Voice note processing API server",
	Long: `Voice Note API - recording processing service for a voice-note application

This API takes a captured audio recording through upload, transcription,
AI enhancement and persistence, with progress tracking, compensation on
failure and an offline operation queue.

Features:
  • Audio upload to object storage with retry and progress
  • Speech-to-text transcription with cost accounting
  • Transcript enhancement in selectable output styles
  • Translation of transcripts
  • Offline mutation queue with bounded replay`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// initConfig loads the configuration when a command needs it.
// Version and help never touch config.
func initConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
