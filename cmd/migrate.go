package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/annolab/annotator-api/internal/database"
	"github.com/annolab/annotator-api/internal/models"
	"github.com/annolab/annotator-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the Annotator API.

The schema is managed with GORM auto migration over the asset, label
and region models.

Available subcommands:
  up      - Apply the schema
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema",
	Long: `Bring the database schema up to date.

Runs GORM auto migration for all models, creating missing tables,
columns and indexes. Existing data is preserved.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long:  `Display which model tables exist in the configured database.`,
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
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Asset{}, &models.Label{}, &models.Region{}); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	tables := map[string]interface{}{
		"assets":  &models.Asset{},
		"labels":  &models.Label{},
		"regions": &models.Region{},
	}
	for name, model := range tables {
		state := "missing"
		if db.Migrator().HasTable(model) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-10s %s\n", name, state)
	}

	return nil
}
