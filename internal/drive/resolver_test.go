package drive

import (
	"fmt"
	"testing"
)

// fakeLookup serves folder metadata from a map and counts every fetch.
type fakeLookup struct {
	folders map[string]*folderEntry
	calls   map[string]int
}

func newFakeLookup(folders map[string]*folderEntry) *fakeLookup {
	return &fakeLookup{folders: folders, calls: make(map[string]int)}
}

func (l *fakeLookup) folder(id string) (*folderEntry, error) {
	l.calls[id]++

	entry, ok := l.folders[id]
	if !ok {
		return nil, &RemoteError{Op: "get folder", StatusCode: 404, Err: fmt.Errorf("not found")}
	}

	return entry, nil
}

func (l *fakeLookup) totalCalls() int {
	total := 0
	for _, n := range l.calls {
		total += n
	}

	return total
}

// chainABC is A -> B -> C where A sits at the Drive root.
func chainABC() map[string]*folderEntry {
	return map[string]*folderEntry{
		"idA": {ID: "idA", Name: "A"},
		"idB": {ID: "idB", Name: "B", Parents: []string{"idA"}},
		"idC": {ID: "idC", Name: "C", Parents: []string{"idB"}},
	}
}

func TestResolve_FullChain(t *testing.T) {
	r := newPathResolver(newFakeLookup(chainABC()))

	if got := r.Resolve([]string{"idC"}); got != "/A/B/C" {
		t.Errorf("Resolve() = %q, want /A/B/C", got)
	}
}

func TestResolve_NoParentsIsRoot(t *testing.T) {
	lookup := newFakeLookup(nil)
	r := newPathResolver(lookup)

	if got := r.Resolve(nil); got != "/" {
		t.Errorf("Resolve(nil) = %q, want /", got)
	}

	if lookup.totalCalls() != 0 {
		t.Errorf("Resolve(nil) issued %d lookups, want 0", lookup.totalCalls())
	}
}

func TestResolve_SharedFoldersFetchedOnce(t *testing.T) {
	// Five files under folder C of the chain A -> B -> C must cost one
	// lookup per unique folder, three in total, not five times three.
	lookup := newFakeLookup(chainABC())
	r := newPathResolver(lookup)

	for i := 0; i < 5; i++ {
		if got := r.Resolve([]string{"idC"}); got != "/A/B/C" {
			t.Fatalf("Resolve() = %q, want /A/B/C", got)
		}
	}

	if lookup.totalCalls() != 3 {
		t.Errorf("total lookups = %d, want 3", lookup.totalCalls())
	}

	for _, id := range []string{"idA", "idB", "idC"} {
		if lookup.calls[id] != 1 {
			t.Errorf("folder %s fetched %d times, want 1", id, lookup.calls[id])
		}
	}
}

func TestResolve_FirstParentWins(t *testing.T) {
	folders := chainABC()
	folders["idX"] = &folderEntry{ID: "idX", Name: "X"}

	r := newPathResolver(newFakeLookup(folders))

	// Multiple parents: only the first is followed.
	if got := r.Resolve([]string{"idC", "idX"}); got != "/A/B/C" {
		t.Errorf("Resolve() = %q, want /A/B/C", got)
	}
}

func TestResolve_PartialPathOnFailedLookup(t *testing.T) {
	folders := chainABC()
	delete(folders, "idB")

	lookup := newFakeLookup(folders)
	r := newPathResolver(lookup)

	// B is gone: the walk still produces what it learned about C, marked
	// as incomplete, instead of failing the enumeration.
	if got := r.Resolve([]string{"idC"}); got != IncompletePathMarker+"/C" {
		t.Errorf("Resolve() = %q, want %q", got, IncompletePathMarker+"/C")
	}
}

func TestResolve_FailedLookupNotRetried(t *testing.T) {
	lookup := newFakeLookup(nil)
	r := newPathResolver(lookup)

	r.Resolve([]string{"gone"})
	r.Resolve([]string{"gone"})

	if lookup.calls["gone"] != 1 {
		t.Errorf("failed folder fetched %d times, want 1", lookup.calls["gone"])
	}
}

func TestResolve_CycleDoesNotHang(t *testing.T) {
	folders := map[string]*folderEntry{
		"id1": {ID: "id1", Name: "one", Parents: []string{"id2"}},
		"id2": {ID: "id2", Name: "two", Parents: []string{"id1"}},
	}

	r := newPathResolver(newFakeLookup(folders))

	got := r.Resolve([]string{"id1"})
	if got != IncompletePathMarker+"/two/one" {
		t.Errorf("Resolve() on a parent cycle = %q, want %q", got, IncompletePathMarker+"/two/one")
	}
}
