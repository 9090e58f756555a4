package drive

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// ErrEmptyFilter means neither an extension nor a size threshold was
// given. Such a query would match the entire Drive, so it is rejected
// before any remote call.
var ErrEmptyFilter = errors.New("no filter specified: an extension or a minimum size is required")

// RemoteError wraps a transport or HTTP failure from the Drive API.
// StatusCode is 0 when the failure happened below the HTTP layer.
type RemoteError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// wrapRemote converts a Drive API error into a RemoteError, extracting
// the HTTP status when one is available.
func wrapRemote(op string, err error) error {
	remote := &RemoteError{Op: op, Err: err}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		remote.StatusCode = apiErr.Code
	}

	return remote
}

// IsBatchFatal reports whether err should stop an entire deletion batch:
// a lost session (HTTP 401) or a transport-level failure with no HTTP
// status. Everything else counts as a per-record failure.
func IsBatchFatal(err error) bool {
	var remote *RemoteError
	if !errors.As(err, &remote) {
		return false
	}

	return remote.StatusCode == http.StatusUnauthorized || remote.StatusCode == 0
}
