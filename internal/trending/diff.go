package trending

import (
	"log/slog"
	"math"
	"sort"

	"marquee/internal/catalog"
	"marquee/internal/logging"
)

// Diff compares an old and a new snapshot and returns the categorized report.
// Empty snapshots degrade gracefully: diffing against an empty old snapshot
// classifies everything in new as a new title, subject to its own threshold.
func Diff(oldSnapshot, newSnapshot catalog.Snapshot, opts Options, logger *slog.Logger) Report {
	if logger == nil {
		logger = logging.NewNop()
	}
	opts = opts.normalized()

	oldIndex := oldSnapshot.ByID()
	newIndex := newSnapshot.ByID()
	oldRanks := voteRanks(oldSnapshot)
	newRanks := voteRanks(newSnapshot)

	var common, newOnly, dropped []Row
	for id, entry := range newIndex {
		if oldEntry, ok := oldIndex[id]; ok {
			row, ok := commonRow(oldEntry, entry, oldRanks[id], newRanks[id], logger)
			if !ok {
				continue
			}
			common = append(common, row)
		} else {
			newOnly = append(newOnly, sideRow(entry, newRanks[id], false))
		}
	}
	for id, entry := range oldIndex {
		if _, ok := newIndex[id]; !ok {
			dropped = append(dropped, sideRow(entry, oldRanks[id], true))
		}
	}

	report := Report{
		Summary: Summary{
			OldEntries:  len(oldSnapshot),
			NewEntries:  len(newSnapshot),
			Common:      len(common),
			NewOnly:     len(newOnly),
			DroppedOnly: len(dropped),
		},
	}

	report.VoteGainers = topRows(common, opts.Top, nil, func(a, b Row) bool {
		if a.VoteDelta != b.VoteDelta {
			return a.VoteDelta > b.VoteDelta
		}
		if *a.NewVotes != *b.NewVotes {
			return *a.NewVotes > *b.NewVotes
		}
		return a.ID < b.ID
	})

	report.PercentGainers = topRows(common, opts.Top, func(r Row) bool {
		return r.PercentChange != nil && *r.OldVotes >= opts.MinOldVotesForPercent
	}, func(a, b Row) bool {
		if *a.PercentChange != *b.PercentChange {
			return *a.PercentChange > *b.PercentChange
		}
		if a.VoteDelta != b.VoteDelta {
			return a.VoteDelta > b.VoteDelta
		}
		return a.ID < b.ID
	})

	report.RatingMovers = topRows(common, opts.Top, nil, func(a, b Row) bool {
		if math.Abs(a.RatingDelta) != math.Abs(b.RatingDelta) {
			return math.Abs(a.RatingDelta) > math.Abs(b.RatingDelta)
		}
		if *a.NewVotes != *b.NewVotes {
			return *a.NewVotes > *b.NewVotes
		}
		return a.ID < b.ID
	})

	report.RankJumps = topRows(common, opts.Top, func(r Row) bool {
		return r.RankChange != 0
	}, func(a, b Row) bool {
		if a.RankChange != b.RankChange {
			return a.RankChange > b.RankChange
		}
		if *a.NewVotes != *b.NewVotes {
			return *a.NewVotes > *b.NewVotes
		}
		return a.ID < b.ID
	})

	report.NewTitles = topRows(newOnly, opts.Top, func(r Row) bool {
		return *r.NewVotes >= opts.NewTitleMinVotes
	}, func(a, b Row) bool {
		if *a.NewVotes != *b.NewVotes {
			return *a.NewVotes > *b.NewVotes
		}
		if *a.NewRating != *b.NewRating {
			return *a.NewRating > *b.NewRating
		}
		return a.ID < b.ID
	})

	// Absence from a newer pull is itself the signal; no vote floor here.
	report.Dropped = topRows(dropped, opts.Top, nil, func(a, b Row) bool {
		if *a.OldVotes != *b.OldVotes {
			return *a.OldVotes > *b.OldVotes
		}
		if *a.OldRating != *b.OldRating {
			return *a.OldRating > *b.OldRating
		}
		return a.ID < b.ID
	})

	return report
}

func commonRow(oldEntry, newEntry catalog.Entry, oldRank, newRank int, logger *slog.Logger) (Row, bool) {
	if badFloat(oldEntry.Rating) || badFloat(newEntry.Rating) {
		logger.Warn("excluding title with malformed rating",
			slog.String("id", newEntry.ID),
			slog.Float64("old_rating", oldEntry.Rating),
			slog.Float64("new_rating", newEntry.Rating),
		)
		return Row{}, false
	}

	oldVotes, newVotes := oldEntry.Votes, newEntry.Votes
	oldRating, newRating := oldEntry.Rating, newEntry.Rating
	row := Row{
		ID:           newEntry.ID,
		Title:        newEntry.Title,
		Year:         newEntry.Year,
		Type:         newEntry.Type,
		PrimaryGenre: newEntry.PrimaryGenre,
		OldVotes:     &oldVotes,
		NewVotes:     &newVotes,
		OldRating:    &oldRating,
		NewRating:    &newRating,
		OldRank:      &oldRank,
		NewRank:      &newRank,
		VoteDelta:    newVotes - oldVotes,
		RatingDelta:  newRating - oldRating,
		RankChange:   oldRank - newRank,
	}
	if oldVotes > 0 {
		pct := float64(row.VoteDelta) / float64(oldVotes)
		row.PercentChange = &pct
	}
	return row, true
}

func sideRow(entry catalog.Entry, rank int, old bool) Row {
	votes, rating := entry.Votes, entry.Rating
	row := Row{
		ID:           entry.ID,
		Title:        entry.Title,
		Year:         entry.Year,
		Type:         entry.Type,
		PrimaryGenre: entry.PrimaryGenre,
	}
	if old {
		row.OldVotes = &votes
		row.OldRating = &rating
		row.OldRank = &rank
	} else {
		row.NewVotes = &votes
		row.NewRating = &rating
		row.NewRank = &rank
	}
	return row
}

// topRows ranks the eligible subset in full, then truncates. The input slice
// is never reordered.
func topRows(rows []Row, top int, eligible func(Row) bool, less func(a, b Row) bool) []Row {
	ranked := make([]Row, 0, len(rows))
	for _, row := range rows {
		if eligible == nil || eligible(row) {
			ranked = append(ranked, row)
		}
	}
	sort.Slice(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if len(ranked) > top {
		ranked = ranked[:top]
	}
	return ranked
}

// voteRanks assigns each id its 1-based vote rank, ties sharing the smallest
// rank of the group.
func voteRanks(snapshot catalog.Snapshot) map[string]int {
	ordered := make([]catalog.Entry, len(snapshot))
	copy(ordered, snapshot)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Votes != ordered[j].Votes {
			return ordered[i].Votes > ordered[j].Votes
		}
		return ordered[i].ID < ordered[j].ID
	})

	ranks := make(map[string]int, len(ordered))
	rank := 0
	prevVotes := -1
	for i, entry := range ordered {
		if entry.Votes != prevVotes {
			rank = i + 1
			prevVotes = entry.Votes
		}
		ranks[entry.ID] = rank
	}
	return ranks
}

func badFloat(value float64) bool {
	return math.IsNaN(value) || math.IsInf(value, 0)
}
