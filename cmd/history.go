package main

import (
	"fmt"
	"os"

	"gdrive-eraser/internal/config"
	"gdrive-eraser/internal/history"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show files deleted by previous runs",
	Long: `Show the local log of files this tool has trashed or permanently
deleted. The log lives in the configuration directory and records only
deletions performed by gdrive-eraser itself.`,
	RunE: runHistoryCommand,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries to show")
}

func runHistoryCommand(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	if settings.DisableHistory {
		fmt.Println("Deletion history is disabled in the configuration.")

		return nil
	}

	dbPath, err := config.GetHistoryDBPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No deletion history yet.")

		return nil
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open deletion history: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No deletion history yet.")

		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("NAME", "SIZE", "FOLDER", "ACTION", "DELETED")

	for _, e := range entries {
		t.Row(e.Name, humanize.IBytes(uint64(e.SizeBytes)), e.FolderPath, e.Action,
			e.DeletedAt.Local().Format("2006-01-02 15:04:05"))
	}

	fmt.Println(t.Render())

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Total deletions logged: %d (%s freed)\n",
		stats.TotalEntries, humanize.IBytes(uint64(stats.TotalBytes)))

	return nil
}
