package trending

import "marquee/internal/imdb"

// Options is the complete configuration surface of the differ. Values are
// non-negative; Top values below one fall back to a single row.
type Options struct {
	// Top caps each report section after ranking.
	Top int
	// MinOldVotesForPercent is the old-vote floor for percent-change
	// eligibility, guarding against division-by-small-number noise.
	MinOldVotesForPercent int
	// NewTitleMinVotes suppresses barely-voted titles from the new-titles
	// section.
	NewTitleMinVotes int
}

func (o Options) normalized() Options {
	if o.Top < 1 {
		o.Top = 1
	}
	if o.MinOldVotesForPercent < 0 {
		o.MinOldVotesForPercent = 0
	}
	if o.NewTitleMinVotes < 0 {
		o.NewTitleMinVotes = 0
	}
	return o
}

// Row is one title's comparison across the two snapshots. Pointer fields are
// nil on the side the title is absent from; PercentChange is nil when old
// votes were zero.
type Row struct {
	ID           string
	Title        string
	Year         *int
	Type         imdb.TitleType
	PrimaryGenre string

	OldVotes  *int
	NewVotes  *int
	OldRating *float64
	NewRating *float64
	OldRank   *int
	NewRank   *int

	VoteDelta     int
	RatingDelta   float64
	PercentChange *float64
	RankChange    int
}

// InBoth reports whether the title appears in both snapshots.
func (r Row) InBoth() bool {
	return r.OldVotes != nil && r.NewVotes != nil
}

// Summary carries the header counts of a comparison.
type Summary struct {
	OldEntries  int
	NewEntries  int
	Common      int
	NewOnly     int
	DroppedOnly int
}

// Report is the categorized result of comparing two snapshots. Each section
// is ranked over the full eligible set and truncated to Options.Top rows. A
// title may appear in several sections. The report owns no reference back to
// the snapshots it was computed from.
type Report struct {
	Summary        Summary
	VoteGainers    []Row
	PercentGainers []Row
	RatingMovers   []Row
	RankJumps      []Row
	NewTitles      []Row
	Dropped        []Row
}
