// Package output renders already-fetched file records for humans (table)
// or for scripts (JSON). Rendering is a pure projection: it never mutates
// records and never issues remote calls.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gdrive-eraser/internal/drive"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

// Summary aggregates a record set. Both output formats derive their
// totals from it, so they always agree.
type Summary struct {
	Count      int
	TotalBytes int64
}

// Summarize computes the count and total byte sum of a record set.
func Summarize(records []*drive.FileRecord) Summary {
	s := Summary{Count: len(records)}
	for _, rec := range records {
		s.TotalBytes += rec.Size
	}

	return s
}

// RenderTable writes a human-readable table followed by a summary line.
func RenderTable(w io.Writer, records []*drive.FileRecord) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("NAME", "SIZE", "FOLDER", "MODIFIED")

	for _, rec := range records {
		t.Row(rec.Name, humanize.IBytes(uint64(rec.Size)), rec.FolderPath, formatTime(rec.ModifiedTime))
	}

	fmt.Fprintln(w, t.Render())

	s := Summarize(records)
	fmt.Fprintf(w, "Total files: %d\nTotal size: %s\n", s.Count, humanize.IBytes(uint64(s.TotalBytes)))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	return t.Local().Format("2006-01-02 15:04:05")
}

// jsonFile mirrors FileRecord with raw, unformatted values.
type jsonFile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mime_type"`
	ModifiedTime time.Time `json:"modified_time"`
	FolderPath   string    `json:"folder_path"`
	Owners       []string  `json:"owners"`
}

type jsonOutput struct {
	Extension      string     `json:"extension,omitempty"`
	MinSizeBytes   int64      `json:"min_size_bytes,omitempty"`
	ModifiedBefore *time.Time `json:"modified_before,omitempty"`
	Count          int        `json:"count"`
	TotalSizeBytes int64      `json:"total_size_bytes"`
	Files          []jsonFile `json:"files"`
}

// RenderJSON writes the record set as a machine-readable document.
func RenderJSON(w io.Writer, records []*drive.FileRecord, filter drive.Filter) error {
	s := Summarize(records)

	out := jsonOutput{
		Extension:      filter.Extension,
		MinSizeBytes:   filter.MinSize,
		Count:          s.Count,
		TotalSizeBytes: s.TotalBytes,
		Files:          make([]jsonFile, 0, len(records)),
	}

	if !filter.ModifiedBefore.IsZero() {
		t := filter.ModifiedBefore
		out.ModifiedBefore = &t
	}

	for _, rec := range records {
		out.Files = append(out.Files, jsonFile{
			ID:           rec.ID,
			Name:         rec.Name,
			Size:         rec.Size,
			MimeType:     rec.MimeType,
			ModifiedTime: rec.ModifiedTime,
			FolderPath:   rec.FolderPath,
			Owners:       rec.Owners,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
