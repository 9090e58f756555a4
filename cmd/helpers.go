package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gdrive-eraser/internal/auth"
	"gdrive-eraser/internal/config"
	"gdrive-eraser/internal/drive"

	"github.com/dustin/go-humanize"
)

// buildFilter assembles a search filter from CLI inputs: an optional
// positional extension, a minimum size in megabytes, and an optional
// --older-than value. The extension-or-size requirement is enforced here,
// before any authentication or remote call happens.
func buildFilter(args []string, sizeMB float64, olderThan string) (drive.Filter, error) {
	extension := ""
	if len(args) > 0 {
		extension = args[0]
	}

	var modifiedBefore time.Time

	if olderThan != "" {
		t, err := parseDateTime(olderThan)
		if err != nil {
			return drive.Filter{}, fmt.Errorf("invalid --older-than value: %w", err)
		}

		modifiedBefore = t
	}

	filter := drive.NewFilter(extension, sizeMB, modifiedBefore)

	if err := filter.Validate(); err != nil {
		return drive.Filter{}, fmt.Errorf(`%w

Examples:
  gdrive-eraser list pdf                 # list all PDF files
  gdrive-eraser list --size 100          # list files >= 100 MB
  gdrive-eraser delete mp4 --size 500    # delete MP4 files >= 500 MB`, err)
	}

	return filter, nil
}

// describeFilter renders a filter for progress messages.
func describeFilter(filter drive.Filter) string {
	var parts []string

	if filter.Extension != "" {
		parts = append(parts, fmt.Sprintf("'%s' files", filter.Extension))
	}

	if filter.MinSize > 0 {
		parts = append(parts, fmt.Sprintf("files >= %s", humanize.IBytes(uint64(filter.MinSize))))
	}

	if !filter.ModifiedBefore.IsZero() {
		parts = append(parts, fmt.Sprintf("modified before %s", filter.ModifiedBefore.Format("2006-01-02")))
	}

	return strings.Join(parts, " and ")
}

// newDriveService authenticates and builds the Drive service.
func newDriveService(ctx context.Context) (*drive.Service, error) {
	client, err := auth.GetClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	svc, err := drive.NewService(ctx, client, settings.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return svc, nil
}

// collectRecords drains the search iterator. A mid-stream pagination
// failure aborts with an error rather than returning a silently truncated
// result set.
func collectRecords(svc *drive.Service, filter drive.Filter) ([]*drive.FileRecord, error) {
	it, err := svc.Search(filter)
	if err != nil {
		return nil, err
	}

	var records []*drive.FileRecord
	for it.Next() {
		records = append(records, it.Record())
	}

	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("search incomplete: %w", err)
	}

	return records, nil
}

// resolvePaths fills in FolderPath on each record. Best-effort; shared
// folders cost one lookup each for the whole batch.
func resolvePaths(svc *drive.Service, records []*drive.FileRecord) {
	resolver := drive.NewPathResolver(svc)
	for _, rec := range records {
		rec.FolderPath = resolver.Resolve(rec.Parents)
	}
}
