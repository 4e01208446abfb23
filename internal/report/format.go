package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"marquee/internal/trending"
)

var printer = message.NewPrinter(language.English)

// FormatInt renders an optional integer with thousands separators, empty when
// absent.
func FormatInt(value *int) string {
	if value == nil {
		return ""
	}
	return printer.Sprintf("%d", *value)
}

// FormatSignedInt renders a delta with an explicit sign and separators.
func FormatSignedInt(value int) string {
	if value > 0 {
		return printer.Sprintf("+%d", value)
	}
	return printer.Sprintf("%d", value)
}

// FormatPercent renders an optional ratio as a signed percentage with one
// decimal, empty when undefined.
func FormatPercent(value *float64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%+.1f%%", 100*(*value))
}

// FormatRating renders an optional rating with one decimal, empty when absent.
func FormatRating(value *float64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *value)
}

// FormatScore renders the "latest rating (delta)" cell shared by every
// section, e.g. "8.4 (+0.2)". Rows missing one side show "(n/a)".
func FormatScore(row trending.Row) string {
	latest := row.NewRating
	if latest == nil {
		latest = row.OldRating
	}
	if latest == nil {
		return ""
	}
	if !row.InBoth() {
		return fmt.Sprintf("%.1f (n/a)", *latest)
	}
	return fmt.Sprintf("%.1f (%+.1f)", *latest, row.RatingDelta)
}

// FormatYear renders an optional release year, empty when unknown.
func FormatYear(value *int) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%d", *value)
}
