package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/annolab/annotator-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "annotator-api",
	Short: "Media annotation API server",
	Long: `Annotator API - a region labeling backend for audio and images

This API stores label taxonomies and labeled regions (time intervals on
audio, bounding boxes on images) and exports them as self-contained JSON
documents for training dataset pipelines.

Features:
  • Per-owner audio labels and per-asset image labels
  • Atomic replace-all region saves
  • Draft → labeled → exported asset lifecycle
  • JSON export with coverage statistics`,
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
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Skip config loading for commands that don't need it
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	// Initialize the configuration
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
