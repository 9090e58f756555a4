package drive

import "log/slog"

// IncompletePathMarker prefixes folder paths that could not be fully
// resolved (an ancestor was deleted or is inaccessible).
const IncompletePathMarker = "..."

// folderLookup fetches folder metadata by ID. Service implements it;
// tests substitute a fake to count fetches.
type folderLookup interface {
	folder(id string) (*folderEntry, error)
}

type folderEntry struct {
	ID      string
	Name    string
	Parents []string
}

// PathResolver resolves a file's parent chain into a display path,
// memoizing every visited folder so shared ancestors are fetched exactly
// once per invocation. The cache lives only as long as the resolver; it
// is never persisted and never shared between runs.
type PathResolver struct {
	lookup folderLookup
	paths  map[string]string
}

// NewPathResolver creates a resolver backed by the given service.
func NewPathResolver(svc *Service) *PathResolver {
	return newPathResolver(svc)
}

func newPathResolver(lookup folderLookup) *PathResolver {
	return &PathResolver{lookup: lookup, paths: make(map[string]string)}
}

// Resolve returns the display path of the folder containing a file with
// the given parent IDs. Files with multiple parents use the first one.
// Resolution is best-effort: a failed lookup mid-walk yields the
// partial path prefixed with IncompletePathMarker rather than an error,
// so path display never blocks enumeration. Zero parents means the file
// sits at the Drive root (or its location is inaccessible) and renders
// as "/".
func (r *PathResolver) Resolve(parentIDs []string) string {
	if len(parentIDs) == 0 {
		return "/"
	}

	return r.resolve(parentIDs[0], make(map[string]bool))
}

func (r *PathResolver) resolve(id string, visiting map[string]bool) string {
	if path, ok := r.paths[id]; ok {
		return path
	}

	// A parent cycle would otherwise recurse forever; the API should
	// never produce one, but a display helper must not hang on bad data.
	if visiting[id] {
		return IncompletePathMarker
	}

	visiting[id] = true

	entry, err := r.lookup.folder(id)
	if err != nil {
		slog.Debug("folder lookup failed", "id", id, "error", err)

		// Cache the failure too: retrying a dead folder once per file
		// referencing it would defeat the cache.
		r.paths[id] = IncompletePathMarker

		return IncompletePathMarker
	}

	var path string

	switch {
	case len(entry.Parents) == 0:
		// The Drive root itself; its name is not part of displayed paths.
		path = "/"
	default:
		parentPath := r.resolve(entry.Parents[0], visiting)
		if parentPath == "/" {
			path = "/" + entry.Name
		} else {
			path = parentPath + "/" + entry.Name
		}
	}

	r.paths[id] = path

	return path
}
