// Package eraser applies trash or delete mutations to a batch of matched
// files, with confirmation, dry-run, and per-record failure accounting.
package eraser

import (
	"fmt"
	"io"
	"log/slog"

	"gdrive-eraser/internal/drive"
)

// Mutator performs the remote mutation calls. drive.Service implements it.
type Mutator interface {
	Trash(fileID string) error
	Delete(fileID string) error
}

// Confirmer asks the user to approve a destructive operation. Injected
// so the executor can be tested without a terminal.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Recorder logs a successful deletion, e.g. to the history store.
type Recorder interface {
	Record(rec *drive.FileRecord, permanent bool) error
}

// Options control one Apply invocation.
type Options struct {
	// Permanent deletes files outright instead of moving them to trash.
	Permanent bool
	// DryRun suppresses every mutation call; records are tallied as
	// skipped ("would delete").
	DryRun bool
	// Force skips the interactive confirmation.
	Force bool
}

// RecordFailure is one file that could not be mutated.
type RecordFailure struct {
	ID   string
	Name string
	Err  error
}

// Report is the outcome of one Apply invocation.
type Report struct {
	Succeeded int
	Failed    int
	Skipped   int
	// BytesFreed sums the sizes of succeeded records only.
	BytesFreed int64
	// Cancelled is set when the user declined the confirmation.
	Cancelled bool
	Failures  []RecordFailure
}

// Executor runs the batch. Confirmer is required unless every call uses
// Force or DryRun; Recorder and Out are optional.
type Executor struct {
	Mutator   Mutator
	Confirmer Confirmer
	Recorder  Recorder
	Out       io.Writer
}

// Apply mutates each record per the options and returns the report.
//
// A single file's failure never aborts the batch; it is tallied and the
// remaining records are still attempted. The whole batch stops only on a
// lost session or a transport-level failure (drive.IsBatchFatal), in
// which case the partial report is returned alongside the error.
func (e *Executor) Apply(records []*drive.FileRecord, opts Options) (*Report, error) {
	report := &Report{}

	if len(records) == 0 {
		return report, nil
	}

	if opts.DryRun {
		for _, rec := range records {
			slog.Debug("dry run: would delete", "id", rec.ID, "name", rec.Name, "size", rec.Size)
			report.Skipped++
		}

		return report, nil
	}

	action := "move to trash"
	if opts.Permanent {
		action = "permanently delete"
	}

	if !opts.Force {
		if e.Confirmer == nil {
			return report, fmt.Errorf("no confirmer available; re-run with --force to skip confirmation")
		}

		ok, err := e.Confirmer.Confirm(fmt.Sprintf("This will %s %d file(s). Continue?", action, len(records)))
		if err != nil {
			return report, fmt.Errorf("confirmation failed: %w", err)
		}

		if !ok {
			report.Cancelled = true

			return report, nil
		}
	}

	for i, rec := range records {
		var err error
		if opts.Permanent {
			err = e.Mutator.Delete(rec.ID)
		} else {
			err = e.Mutator.Trash(rec.ID)
		}

		if err != nil {
			if drive.IsBatchFatal(err) {
				return report, fmt.Errorf("aborting batch after %d of %d files: %w", i, len(records), err)
			}

			report.Failed++
			report.Failures = append(report.Failures, RecordFailure{ID: rec.ID, Name: rec.Name, Err: err})
			fmt.Fprintf(e.out(), "Failed to %s %s: %v\n", action, rec.Name, err)

			continue
		}

		report.Succeeded++
		report.BytesFreed += rec.Size

		if e.Recorder != nil {
			if err := e.Recorder.Record(rec, opts.Permanent); err != nil {
				slog.Warn("failed to record deletion history", "id", rec.ID, "error", err)
			}
		}
	}

	return report, nil
}

func (e *Executor) out() io.Writer {
	if e.Out != nil {
		return e.Out
	}

	return io.Discard
}
