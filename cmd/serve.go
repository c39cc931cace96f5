package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/voicenotes/voicenote-api/api"
	"github.com/voicenotes/voicenote-api/api/types"
	"github.com/voicenotes/voicenote-api/internal/database"
	"github.com/voicenotes/voicenote-api/internal/pipeline"
	"github.com/voicenotes/voicenote-api/internal/providers/openai"
	"github.com/voicenotes/voicenote-api/internal/providers/storage"
	"github.com/voicenotes/voicenote-api/internal/providers/whisper"
	"github.com/voicenotes/voicenote-api/internal/services/offlinequeue"
	"github.com/voicenotes/voicenote-api/internal/services/recordings"
	"github.com/voicenotes/voicenote-api/pkg/config"
	"github.com/voicenotes/voicenote-api/pkg/ffmpeg"
	"github.com/voicenotes/voicenote-api/pkg/logger"
	"github.com/voicenotes/voicenote-api/pkg/retry"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Voice Note API server with the configured settings.

The server accepts recorded audio, runs it through the processing
pipeline and serves the stored notes and the offline queue.

Example:
  voicenote-api serve
  voicenote-api serve --port 9090
  voicenote-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	level, format := cfg.Logging.Level, cfg.Logging.Format
	if cmd.Flags().Changed("log-level") {
		level, _ = cmd.Flags().GetString("log-level")
	}
	if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
		format = "json"
	}
	log := logger.New(level, format)

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	deps, err := buildDependencies(cfg, db, log)
	if err != nil {
		return err
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address, cfg)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.WithField("address", address).Info("server ready")

	select {
	case <-stop:
		log.Info("shutting down")
	case err := <-serverErr:
		log.WithError(err).Error("server failed, shutting down")
	}

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// buildDependencies wires providers, services and the pipeline together
func buildDependencies(cfg *config.Config, db *database.DB, log *logrus.Logger) (*types.Dependencies, error) {
	store := storage.NewClient(storage.Config{
		URL:    cfg.Storage.URL,
		APIKey: cfg.Storage.APIKey,
		Bucket: cfg.Storage.Bucket,
	})

	stt := whisper.NewClient(whisper.Config{
		APIKey:      cfg.Whisper.APIKey,
		APIURL:      cfg.Whisper.APIURL,
		Model:       cfg.Whisper.Model,
		Temperature: cfg.Whisper.Temperature,
		Timeout:     cfg.Whisper.Timeout,
		MaxFileSize: cfg.Whisper.MaxFileSize,
	})

	gen := openai.NewClient(openai.Config{
		APIKey:    cfg.OpenAI.APIKey,
		APIURL:    cfg.OpenAI.APIURL,
		Model:     cfg.OpenAI.Model,
		MaxTokens: cfg.OpenAI.MaxTokens,
		Timeout:   cfg.OpenAI.Timeout,
	})

	prober := ffmpeg.New(cfg.Pipeline.FFprobePath, 30*time.Second)
	if err := prober.ValidateBinaries(); err != nil {
		log.WithError(err).Warn("ffprobe not found, duration falls back to provider-reported values")
	}

	recordingRepo := recordings.NewRepository(db.DB)
	queueRepo := offlinequeue.NewRepository(db.DB)
	executor := recordings.NewQueueExecutor(recordingRepo, store)
	queueSvc := offlinequeue.NewService(queueRepo, executor, cfg.Queue.MaxRetries, log)
	recordingSvc := recordings.NewService(recordingRepo, store, queueSvc, log)

	orchestrator := pipeline.NewOrchestrator(store, stt, gen, prober, recordingSvc, pipeline.Config{
		MaxUploadSize:   cfg.Storage.MaxUploadSize,
		CostPerMinute:   cfg.Whisper.CostPerMinute,
		InputTokenCost:  cfg.OpenAI.InputTokenCost,
		OutputTokenCost: cfg.OpenAI.OutputTokenCost,
		Retry: retry.Policy{
			MaxAttempts: cfg.Pipeline.RetryAttempts,
			BaseDelay:   cfg.Pipeline.RetryBaseDelay,
		},
	}, log)

	return &types.Dependencies{
		DB:               db,
		Pipeline:         orchestrator,
		RecordingService: recordingSvc,
		Queue:            queueSvc,
		Log:              log,
	}, nil
}
