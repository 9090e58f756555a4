package main

import (
	"fmt"
	"log/slog"
	"os"

	"gdrive-eraser/internal/config"

	"github.com/spf13/cobra"
)

var (
	credentialsPath string
	configDir       string
	debugMode       bool
)

var rootCmd = &cobra.Command{
	Use:   "gdrive-eraser",
	Short: "Find and delete large files from Google Drive by extension and size",
	Long: `gdrive-eraser enumerates files you own in Google Drive, filtered by
extension and/or minimum size, and moves them to trash (or permanently
deletes them) after confirmation.

Commands:
  setup     Guided instructions for Google Drive API credentials
  list      List matching files
  delete    Delete matching files (trash by default)
  history   Show files deleted by previous runs

Only files owned by the authenticated user are ever matched; a filter
(extension or --size) is always required before anything runs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debugMode {
			level = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)

		if credentialsPath != "" {
			config.SetCustomCredentialsPath(credentialsPath)
		}

		if configDir != "" {
			config.SetCustomConfigDir(configDir)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&credentialsPath, "credentials", "c", "", "Path to credentials.json file")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Custom configuration directory")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
