package drive

import (
	"strings"
	"time"
)

// FileRecord is an immutable metadata snapshot of one Drive file, taken
// at query time. It is never cached across invocations.
type FileRecord struct {
	ID           string
	Name         string
	MimeType     string
	Size         int64
	ModifiedTime time.Time
	Owners       []string
	Parents      []string

	// FolderPath is filled in by the PathResolver after the query; it is
	// not part of the API snapshot.
	FolderPath string
}

// Filter selects which files a search or deletion applies to. At least
// one of Extension or MinSize must be set before any remote call is made.
type Filter struct {
	// Extension is normalized to a lowercase leading-dot form (".pdf");
	// empty means no extension filter.
	Extension string
	// MinSize is the minimum file size in bytes; 0 means no size filter.
	MinSize int64
	// ModifiedBefore restricts results to files last modified before this
	// time; zero means no date filter. It narrows a search but does not
	// satisfy the extension-or-size requirement on its own.
	ModifiedBefore time.Time
}

// NewFilter builds a Filter from raw CLI inputs, normalizing the
// extension and converting the size threshold from megabytes to bytes.
func NewFilter(extension string, minSizeMB float64, modifiedBefore time.Time) Filter {
	return Filter{
		Extension:      NormalizeExtension(extension),
		MinSize:        int64(minSizeMB * 1024 * 1024),
		ModifiedBefore: modifiedBefore,
	}
}

// Validate rejects filters that would match the entire Drive.
func (f Filter) Validate() error {
	if f.Extension == "" && f.MinSize <= 0 {
		return ErrEmptyFilter
	}

	return nil
}

// NormalizeExtension lowercases an extension and ensures a single leading
// dot. Empty input stays empty.
func NormalizeExtension(extension string) string {
	extension = strings.ToLower(strings.TrimSpace(extension))
	extension = strings.TrimLeft(extension, ".")

	if extension == "" {
		return ""
	}

	return "." + extension
}
