package catalog

import "marquee/internal/imdb"

// Entry is the join of one title record and one rating record sharing an id.
// Every entry carries both halves; partial entries are never constructed.
// Entries are value objects and are not mutated after construction.
type Entry struct {
	ID           string
	Title        string
	Year         *int
	Type         imdb.TitleType
	PrimaryGenre string
	Runtime      *int
	Rating       float64
	Votes        int
}

// Snapshot is an ordered sequence of entries, unique by id, sorted by the
// popularity key (votes desc, rating desc, id asc).
type Snapshot []Entry

// FilterMinVotes returns a new snapshot containing only entries with at least
// min votes, preserving relative order. A threshold of zero copies the
// snapshot unchanged.
func (s Snapshot) FilterMinVotes(min int) Snapshot {
	filtered := make(Snapshot, 0, len(s))
	for _, entry := range s {
		if entry.Votes >= min {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// ByID returns a map keyed by entry id. Later entries win on duplicate ids,
// though built snapshots never contain any.
func (s Snapshot) ByID() map[string]Entry {
	index := make(map[string]Entry, len(s))
	for _, entry := range s {
		index[entry.ID] = entry
	}
	return index
}
