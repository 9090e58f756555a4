package main

import (
	"fmt"
	"os"

	"gdrive-eraser/internal/output"

	"github.com/spf13/cobra"
)

var (
	listSizeMB    float64
	listOlderThan string
	listJSON      bool
)

var listCmd = &cobra.Command{
	Use:   "list [extension]",
	Short: "List your Drive files matching an extension and/or size filter",
	Long: `List files you own in Google Drive, filtered by extension and/or
minimum size. At least one filter is required.

Examples:
  gdrive-eraser list pdf                      # all PDF files
  gdrive-eraser list --size 100               # files >= 100 MB
  gdrive-eraser list mp4 --size 500           # MP4 files >= 500 MB
  gdrive-eraser list zip --older-than "1 year ago"
  gdrive-eraser list --size 100 --json        # machine-readable output`,
	Args: cobra.MaximumNArgs(1),
	RunE: runListCommand,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Float64VarP(&listSizeMB, "size", "s", 0, "Minimum file size in MB (e.g. 100 for files >= 100 MB)")
	listCmd.Flags().StringVar(&listOlderThan, "older-than", "", "Only files last modified before this date (ISO date, 30d, or natural language)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output results as JSON for scripting")
}

func runListCommand(cmd *cobra.Command, args []string) error {
	filter, err := buildFilter(args, listSizeMB, listOlderThan)
	if err != nil {
		return err
	}

	svc, err := newDriveService(cmd.Context())
	if err != nil {
		return err
	}

	if !listJSON {
		fmt.Printf("Searching for %s in your Google Drive...\n", describeFilter(filter))
	}

	records, err := collectRecords(svc, filter)
	if err != nil {
		return err
	}

	resolvePaths(svc, records)

	if listJSON {
		return output.RenderJSON(os.Stdout, records, filter)
	}

	if len(records) == 0 {
		fmt.Printf("No files matching %s found in your Google Drive.\n", describeFilter(filter))

		return nil
	}

	output.RenderTable(os.Stdout, records)

	return nil
}
