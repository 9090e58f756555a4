package main

import (
	"fmt"
	"log/slog"
	"os"

	"gdrive-eraser/internal/config"
	"gdrive-eraser/internal/eraser"
	"gdrive-eraser/internal/history"
	"gdrive-eraser/internal/output"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	deleteSizeMB    float64
	deleteOlderThan string
	deleteForce     bool
	deleteDryRun    bool
	deletePermanent bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete [extension]",
	Short: "Delete your Drive files matching an extension and/or size filter",
	Long: `Delete files you own in Google Drive, filtered by extension and/or
minimum size. Files are moved to trash by default; --permanent bypasses
the trash and cannot be undone. At least one filter is required.

Examples:
  gdrive-eraser delete pdf                      # trash all PDF files
  gdrive-eraser delete --size 100               # trash files >= 100 MB
  gdrive-eraser delete mp4 --size 500           # trash MP4 files >= 500 MB
  gdrive-eraser delete --size 1000 --dry-run    # preview only
  gdrive-eraser delete old --permanent --force  # no trash, no prompt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeleteCommand,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().Float64VarP(&deleteSizeMB, "size", "s", 0, "Minimum file size in MB (e.g. 100 for files >= 100 MB)")
	deleteCmd.Flags().StringVar(&deleteOlderThan, "older-than", "", "Only files last modified before this date (ISO date, 30d, or natural language)")
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
	deleteCmd.Flags().BoolVar(&deleteDryRun, "dry-run", false, "Show what would be deleted without deleting")
	deleteCmd.Flags().BoolVar(&deletePermanent, "permanent", false, "Permanently delete files (default: move to trash)")
}

func runDeleteCommand(cmd *cobra.Command, args []string) error {
	filter, err := buildFilter(args, deleteSizeMB, deleteOlderThan)
	if err != nil {
		return err
	}

	// Without a terminal there is nobody to answer the prompt; refuse
	// instead of hanging, unless the caller opted out of confirmation.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if !deleteForce && !deleteDryRun && !interactive {
		return fmt.Errorf("stdin is not a terminal: re-run with --force to delete without confirmation")
	}

	svc, err := newDriveService(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Searching for %s in your Google Drive...\n", describeFilter(filter))

	records, err := collectRecords(svc, filter)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Printf("No files matching %s found in your Google Drive.\n", describeFilter(filter))

		return nil
	}

	resolvePaths(svc, records)
	output.RenderTable(os.Stdout, records)

	executor := &eraser.Executor{
		Mutator:   svc,
		Confirmer: huhConfirmer{},
		Out:       os.Stdout,
	}

	if store := openHistoryStore(); store != nil {
		defer store.Close()

		executor.Recorder = store
	}

	if deleteDryRun {
		fmt.Printf("\nDRY RUN MODE - no files will be %sd\n", actionVerb(deletePermanent))
	} else if deletePermanent {
		fmt.Println("\nWarning: permanently deleted files cannot be recovered!")
	}

	report, err := executor.Apply(records, eraser.Options{
		Permanent: deletePermanent,
		DryRun:    deleteDryRun,
		Force:     deleteForce,
	})
	if err != nil {
		return err
	}

	printReport(report, deletePermanent)

	return nil
}

// openHistoryStore opens the deletion log, returning nil when disabled or
// unavailable. History is advisory and never blocks a delete.
func openHistoryStore() *history.Store {
	settings, err := config.LoadSettings()
	if err != nil || settings.DisableHistory {
		return nil
	}

	dbPath, err := config.GetHistoryDBPath()
	if err != nil {
		slog.Warn("deletion history unavailable", "error", err)

		return nil
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		slog.Warn("deletion history unavailable", "path", dbPath, "error", err)

		return nil
	}

	return store
}

func actionVerb(permanent bool) string {
	if permanent {
		return "delete"
	}

	return "trash"
}

func printReport(report *eraser.Report, permanent bool) {
	action, done := "move to trash", "moved to trash"
	if permanent {
		action, done = "permanently delete", "permanently deleted"
	}

	switch {
	case report.Cancelled:
		fmt.Println("Operation cancelled.")
	case report.Skipped > 0:
		fmt.Printf("Would %s %d file(s)\n", action, report.Skipped)
	default:
		fmt.Printf("\nSuccessfully %s %d file(s), freeing %s\n",
			done, report.Succeeded, humanize.IBytes(uint64(report.BytesFreed)))

		if report.Failed > 0 {
			fmt.Printf("Failed to %s %d file(s)\n", action, report.Failed)
		}
	}
}
