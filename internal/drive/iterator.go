package drive

import (
	"log/slog"

	"google.golang.org/api/drive/v3"
)

// pager fetches one page of search results. Service implements it; tests
// substitute a fake.
type pager interface {
	page(query, pageToken string, pageSize int64) (*drive.FileList, error)
}

// SearchIterator is a forward-only, non-restartable sequence of search
// results. Usage follows the bufio.Scanner pattern:
//
//	it, err := svc.Search(filter)
//	for it.Next() {
//	    rec := it.Record()
//	}
//	if err := it.Err(); err != nil {
//	    // the sequence is incomplete, not merely finished
//	}
//
// Memory stays proportional to one page. A pagination failure ends the
// iteration with Err() set; callers must not treat such results as
// complete.
type SearchIterator struct {
	pager    pager
	filter   Filter
	query    string
	pageSize int64

	buf       []*FileRecord
	pos       int
	cur       *FileRecord
	pageToken string
	exhausted bool
	err       error
}

func newSearchIterator(p pager, filter Filter, query string, pageSize int64) *SearchIterator {
	return &SearchIterator{pager: p, filter: filter, query: query, pageSize: pageSize}
}

// Next advances to the next matching record, fetching pages on demand.
// It returns false when the sequence is exhausted or a fetch failed;
// check Err to distinguish the two.
func (it *SearchIterator) Next() bool {
	for {
		if it.pos < len(it.buf) {
			it.cur = it.buf[it.pos]
			it.pos++

			return true
		}

		if it.exhausted || it.err != nil {
			return false
		}

		result, err := it.pager.page(it.query, it.pageToken, it.pageSize)
		if err != nil {
			it.err = err
			it.exhausted = true

			return false
		}

		it.buf = it.buf[:0]
		it.pos = 0

		for _, f := range result.Files {
			if matchesFilter(f.Name, f.Size, it.filter) {
				it.buf = append(it.buf, convertRecord(f))
			}
		}

		slog.Debug("drive search page", "returned", len(result.Files), "matched", len(it.buf), "more", result.NextPageToken != "")

		it.pageToken = result.NextPageToken
		if it.pageToken == "" {
			it.exhausted = true
		}
	}
}

// Record returns the record produced by the last successful Next call.
func (it *SearchIterator) Record() *FileRecord {
	return it.cur
}

// Err returns the error that terminated iteration, if any.
func (it *SearchIterator) Err() error {
	return it.err
}
