package catalog

import (
	"reflect"
	"testing"
)

func snapshotWithVotes(votes ...int) Snapshot {
	entries := make(Snapshot, 0, len(votes))
	for i, v := range votes {
		entries = append(entries, Entry{ID: id(i), Title: "Entry", Rating: 7.0, Votes: v})
	}
	return entries
}

func id(i int) string {
	return string(rune('a' + i))
}

func TestFilterMinVotes(t *testing.T) {
	snapshot := snapshotWithVotes(1000, 500, 100, 50, 10)

	filtered := snapshot.FilterMinVotes(100)
	if len(filtered) != 3 {
		t.Fatalf("filtered = %d entries, want 3", len(filtered))
	}
	for i, want := range []int{1000, 500, 100} {
		if filtered[i].Votes != want {
			t.Fatalf("entry %d votes = %d, want %d (order must be preserved)", i, filtered[i].Votes, want)
		}
	}
	// Source snapshot untouched.
	if len(snapshot) != 5 {
		t.Fatalf("source snapshot mutated")
	}
}

func TestFilterZeroIsIdentity(t *testing.T) {
	snapshot := snapshotWithVotes(10, 0, 5)
	filtered := snapshot.FilterMinVotes(0)
	if !reflect.DeepEqual(filtered, snapshot) {
		t.Fatalf("threshold 0 must return an equal snapshot")
	}
}

func TestFilterIdempotent(t *testing.T) {
	snapshot := snapshotWithVotes(1000, 500, 100, 50, 10)
	once := snapshot.FilterMinVotes(100)
	twice := once.FilterMinVotes(100)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering twice at the same threshold changed the snapshot")
	}
}

func TestFilterMonotone(t *testing.T) {
	snapshot := snapshotWithVotes(1000, 500, 100, 50, 10)
	chained := snapshot.FilterMinVotes(100).FilterMinVotes(500)
	direct := snapshot.FilterMinVotes(500)
	if !reflect.DeepEqual(chained, direct) {
		t.Fatalf("refiltering at a higher threshold must equal filtering once")
	}
}

func TestFilterAllBelowThreshold(t *testing.T) {
	snapshot := snapshotWithVotes(1, 2, 3)
	filtered := snapshot.FilterMinVotes(10)
	if len(filtered) != 0 {
		t.Fatalf("expected empty snapshot, got %d entries", len(filtered))
	}
}
