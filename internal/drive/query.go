package drive

import (
	"fmt"
	"strings"
	"time"
)

const folderMimeType = "application/vnd.google-apps.folder"

// buildQuery constructs a Drive API query string from the given filter.
// The ownership and not-trashed clauses are always present and cannot be
// disabled; folders are excluded so a size filter never matches them.
func buildQuery(f Filter) string {
	parts := []string{
		"'me' in owners",
		"trashed = false",
		fmt.Sprintf("mimeType != '%s'", folderMimeType),
	}

	if f.Extension != "" {
		// Substring match on the server; the iterator re-checks the exact
		// suffix client-side.
		parts = append(parts, fmt.Sprintf("name contains '%s'", f.Extension))
	}

	if f.MinSize > 0 {
		parts = append(parts, fmt.Sprintf("size >= %d", f.MinSize))
	}

	if !f.ModifiedBefore.IsZero() {
		parts = append(parts, fmt.Sprintf("modifiedTime < '%s'", f.ModifiedBefore.UTC().Format(time.RFC3339)))
	}

	return strings.Join(parts, " and ")
}

// matchesFilter applies the client-side checks the server query cannot
// express exactly: a case-insensitive extension suffix match, and a size
// re-check that also drops items carrying no size metadata when a size
// filter is active.
func matchesFilter(name string, size int64, f Filter) bool {
	if f.Extension != "" && !strings.HasSuffix(strings.ToLower(name), f.Extension) {
		return false
	}

	if f.MinSize > 0 && size < f.MinSize {
		return false
	}

	return true
}
