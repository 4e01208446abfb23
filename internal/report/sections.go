package report

import (
	"fmt"
	"time"

	"marquee/internal/trending"
)

// Meta labels the two compared snapshots for presentation.
type Meta struct {
	OldLabel    string
	NewLabel    string
	OldPath     string
	NewPath     string
	GeneratedAt time.Time
}

// Table is one rendered report section: rows of already-formatted cells.
type Table struct {
	Title       string
	Description string
	Headers     []string
	Rows        [][]string
	// NumericColumns lists zero-based column indexes that should be
	// right-aligned in terminal output.
	NumericColumns []int
}

// Tables converts a trending report into renderable section tables, in the
// order the report presents them.
func Tables(rep trending.Report, meta Meta) []Table {
	span := fmt.Sprintf("%s to %s", meta.OldLabel, meta.NewLabel)
	votesOld := fmt.Sprintf("Votes (%s)", meta.OldLabel)
	votesNew := fmt.Sprintf("Votes (%s)", meta.NewLabel)
	rankOld := fmt.Sprintf("Rank (%s)", meta.OldLabel)
	rankNew := fmt.Sprintf("Rank (%s)", meta.NewLabel)

	voteColumns := []string{"Score", "Title", "Year", "Type", "Genre", votesOld, votesNew, "Votes +/-", "Votes %"}
	voteRow := func(row trending.Row) []string {
		return []string{
			FormatScore(row),
			row.Title,
			FormatYear(row.Year),
			string(row.Type),
			row.PrimaryGenre,
			FormatInt(row.OldVotes),
			FormatInt(row.NewVotes),
			FormatSignedInt(row.VoteDelta),
			FormatPercent(row.PercentChange),
		}
	}

	tables := []Table{
		{
			Title:          "Top vote gainers (" + span + ")",
			Description:    "Largest absolute increase in votes among titles present in both snapshots.",
			Headers:        voteColumns,
			Rows:           formatRows(rep.VoteGainers, voteRow),
			NumericColumns: []int{2, 5, 6, 7, 8},
		},
		{
			Title:          "Top percent vote gainers (" + span + ")",
			Description:    "Largest percent increase in votes; small baselines are excluded to reduce noise.",
			Headers:        voteColumns,
			Rows:           formatRows(rep.PercentGainers, voteRow),
			NumericColumns: []int{2, 5, 6, 7, 8},
		},
		{
			Title:       "Biggest rating movers (" + span + ")",
			Description: "Largest rating change in either direction among titles present in both snapshots.",
			Headers:     []string{"Score", "Title", "Year", "Type", "Genre", votesNew, "Votes +/-"},
			Rows: formatRows(rep.RatingMovers, func(row trending.Row) []string {
				return []string{
					FormatScore(row),
					row.Title,
					FormatYear(row.Year),
					string(row.Type),
					row.PrimaryGenre,
					FormatInt(row.NewVotes),
					FormatSignedInt(row.VoteDelta),
				}
			}),
			NumericColumns: []int{2, 5, 6},
		},
		{
			Title:       "Biggest rank jumps by votes (" + span + ")",
			Description: "Rank is by total votes, descending. A positive change means the title moved toward rank 1.",
			Headers:     []string{"Score", "Title", "Year", "Type", "Genre", rankOld, rankNew, "Rank +/-", votesNew},
			Rows: formatRows(rep.RankJumps, func(row trending.Row) []string {
				return []string{
					FormatScore(row),
					row.Title,
					FormatYear(row.Year),
					string(row.Type),
					row.PrimaryGenre,
					FormatInt(row.OldRank),
					FormatInt(row.NewRank),
					FormatSignedInt(row.RankChange),
					FormatInt(row.NewVotes),
				}
			}),
			NumericColumns: []int{2, 5, 6, 7, 8},
		},
		{
			Title:       "New titles (only in " + meta.NewLabel + ")",
			Description: "Present only in the new snapshot, sorted by votes.",
			Headers:     []string{"Score", "Title", "Year", "Type", "Genre", votesNew, rankNew},
			Rows: formatRows(rep.NewTitles, func(row trending.Row) []string {
				return []string{
					FormatScore(row),
					row.Title,
					FormatYear(row.Year),
					string(row.Type),
					row.PrimaryGenre,
					FormatInt(row.NewVotes),
					FormatInt(row.NewRank),
				}
			}),
			NumericColumns: []int{2, 5, 6},
		},
		{
			Title:       "Dropped titles (only in " + meta.OldLabel + ")",
			Description: "Present only in the old snapshot; absence from a newer pull is itself the signal.",
			Headers:     []string{"Score", "Title", "Year", "Type", "Genre", votesOld, rankOld},
			Rows: formatRows(rep.Dropped, func(row trending.Row) []string {
				return []string{
					FormatScore(row),
					row.Title,
					FormatYear(row.Year),
					string(row.Type),
					row.PrimaryGenre,
					FormatInt(row.OldVotes),
					FormatInt(row.OldRank),
				}
			}),
			NumericColumns: []int{2, 5, 6},
		},
	}
	return tables
}

func formatRows(rows []trending.Row, format func(trending.Row) []string) [][]string {
	formatted := make([][]string, 0, len(rows))
	for _, row := range rows {
		formatted = append(formatted, format(row))
	}
	return formatted
}
