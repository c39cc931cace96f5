package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voicenotes/voicenote-api/internal/database"
	"github.com/voicenotes/voicenote-api/internal/models"
	"github.com/voicenotes/voicenote-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the Voice Note API.

Available subcommands:
  up      - Apply the schema for all models
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema for all models",
	RunE:  runMigrateUp,
}

// migrateStatusCmd shows schema status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func openDatabase() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	fmt.Println("Schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	tables := []struct {
		name  string
		model interface{}
	}{
		{models.Recording{}.TableName(), &models.Recording{}},
		{models.QueuedOperation{}.TableName(), &models.QueuedOperation{}},
	}

	fmt.Println("Database Schema Status")
	for _, table := range tables {
		if db.Migrator().HasTable(table.model) {
			var count int64
			db.Model(table.model).Count(&count)
			fmt.Printf("  %-20s present (%d rows)\n", table.name, count)
		} else {
			fmt.Printf("  %-20s missing\n", table.name)
		}
	}

	return nil
}
