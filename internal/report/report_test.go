package report

import (
	"bytes"
	"strings"
	"testing"

	"marquee/internal/catalog"
	"marquee/internal/trending"
)

func intPtr(v int) *int { return &v }

func sampleReport() trending.Report {
	oldSnapshot := catalog.Snapshot{
		{ID: "t1", Title: "Carried Over", Year: intPtr(1999), Rating: 7.0, Votes: 1000},
		{ID: "t3", Title: "Gone <Now>", Rating: 6.0, Votes: 300},
	}
	newSnapshot := catalog.Snapshot{
		{ID: "t1", Title: "Carried Over", Year: intPtr(1999), Rating: 7.2, Votes: 1500000},
		{ID: "t2", Title: "Brand New", Rating: 8.0, Votes: 600},
	}
	return trending.Diff(oldSnapshot, newSnapshot, trending.Options{Top: 10, MinOldVotesForPercent: 500}, nil)
}

func TestTablesCoverEverySection(t *testing.T) {
	tables := Tables(sampleReport(), Meta{OldLabel: "2026-08-23", NewLabel: "2026-08-30"})
	if len(tables) != 6 {
		t.Fatalf("tables = %d, want 6", len(tables))
	}

	gainers := tables[0]
	if len(gainers.Rows) != 1 {
		t.Fatalf("vote gainer rows = %+v", gainers.Rows)
	}
	row := gainers.Rows[0]
	if row[1] != "Carried Over" {
		t.Fatalf("title cell = %q", row[1])
	}
	// Thousands separators and explicit signs in the numeric cells.
	if row[6] != "1,500,000" {
		t.Fatalf("new votes cell = %q", row[6])
	}
	if row[7] != "+1,499,000" {
		t.Fatalf("delta cell = %q", row[7])
	}
	if row[0] != "7.2 (+0.2)" {
		t.Fatalf("score cell = %q", row[0])
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	err := RenderHTML(&buf, sampleReport(), Meta{OldLabel: "2026-08-23", NewLabel: "2026-08-30", OldPath: "old.csv", NewPath: "new.csv"})
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	page := buf.String()

	for _, want := range []string{
		"Media catalog diff: 2026-08-23 to 2026-08-30",
		"Top vote gainers",
		"Top percent vote gainers",
		"Biggest rating movers",
		"Biggest rank jumps",
		"New titles",
		"Dropped titles",
		"Brand New",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q", want)
		}
	}

	// Titles pass through the HTML writer escaped.
	if strings.Contains(page, "Gone <Now>") {
		t.Fatalf("unescaped title in page")
	}
	if !strings.Contains(page, "Gone &lt;Now&gt;") {
		t.Fatalf("escaped title missing from page")
	}
}

func TestFormatters(t *testing.T) {
	if got := FormatInt(nil); got != "" {
		t.Fatalf("FormatInt(nil) = %q", got)
	}
	if got := FormatInt(intPtr(1234567)); got != "1,234,567" {
		t.Fatalf("FormatInt = %q", got)
	}
	if got := FormatSignedInt(-42); got != "-42" {
		t.Fatalf("FormatSignedInt = %q", got)
	}
	pct := 0.5
	if got := FormatPercent(&pct); got != "+50.0%" {
		t.Fatalf("FormatPercent = %q", got)
	}
	if got := FormatPercent(nil); got != "" {
		t.Fatalf("FormatPercent(nil) = %q", got)
	}
}
