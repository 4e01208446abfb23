package catalog

import (
	"sort"

	"marquee/internal/imdb"
)

// Predicate decides whether a title record may enter the catalog. It sees
// only title metadata; rating data never influences category rules.
type Predicate func(imdb.TitleRecord) bool

// KeepAll admits every title record.
func KeepAll(imdb.TitleRecord) bool { return true }

// KeepTypes admits records whose category is in the given set.
func KeepTypes(types ...imdb.TitleType) Predicate {
	allowed := make(map[imdb.TitleType]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}
	return func(record imdb.TitleRecord) bool {
		_, ok := allowed[record.Type]
		return ok
	}
}

// ExcludeAdult rejects adult-flagged records before consulting next.
func ExcludeAdult(next Predicate) Predicate {
	return func(record imdb.TitleRecord) bool {
		if record.IsAdult {
			return false
		}
		return next(record)
	}
}

// RequireYear rejects records without a release year before consulting next.
func RequireYear(next Predicate) Predicate {
	return func(record imdb.TitleRecord) bool {
		if record.StartYear == nil {
			return false
		}
		return next(record)
	}
}

// BuildStats reports what the join observed. JoinMiss counts (TitleOnly,
// RatingOnly) and Unrated are exclusions by design, not errors.
type BuildStats struct {
	Titles     int
	Ratings    int
	Excluded   int
	TitleOnly  int
	RatingOnly int
	Unrated    int
	Entries    int
}

// Build joins title records with rating records on id and returns a snapshot
// sorted by the popularity key. Ids present in only one input are dropped, as
// are titles rejected by keep and ratings whose value or vote count is
// unknown. Duplicate ids within one input resolve to the last occurrence.
// Empty inputs produce an empty snapshot.
func Build(titles []imdb.TitleRecord, ratings []imdb.RatingRecord, keep Predicate) (Snapshot, BuildStats) {
	if keep == nil {
		keep = KeepAll
	}

	stats := BuildStats{Titles: len(titles), Ratings: len(ratings)}

	titleByID := make(map[string]imdb.TitleRecord, len(titles))
	for _, record := range titles {
		titleByID[record.ID] = record
	}
	ratingByID := make(map[string]imdb.RatingRecord, len(ratings))
	for _, record := range ratings {
		ratingByID[record.ID] = record
	}

	entries := make(Snapshot, 0, len(titleByID))
	for id, title := range titleByID {
		rating, ok := ratingByID[id]
		if !ok {
			stats.TitleOnly++
			continue
		}
		if !keep(title) {
			stats.Excluded++
			continue
		}
		if rating.Rating == nil || rating.Votes == nil {
			stats.Unrated++
			continue
		}
		entries = append(entries, Entry{
			ID:           id,
			Title:        title.PrimaryTitle,
			Year:         title.StartYear,
			Type:         title.Type,
			PrimaryGenre: title.PrimaryGenre,
			Runtime:      title.RuntimeMinutes,
			Rating:       *rating.Rating,
			Votes:        *rating.Votes,
		})
	}
	stats.RatingOnly = len(ratingByID) - (len(entries) + stats.Excluded + stats.Unrated)

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Votes != entries[j].Votes {
			return entries[i].Votes > entries[j].Votes
		}
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		return entries[i].ID < entries[j].ID
	})

	stats.Entries = len(entries)
	return entries, stats
}
