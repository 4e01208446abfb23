package imdb

import (
	"errors"
	"testing"
)

const (
	basicsLine  = "tt0111161\tmovie\tThe Shawshank Redemption\tThe Shawshank Redemption\t0\t1994\t\\N\t142\tDrama"
	ratingsLine = "tt0111161\t9.3\t2900000"
)

func TestParseTitle(t *testing.T) {
	record, err := ParseTitle(basicsLine)
	if err != nil {
		t.Fatalf("parse title: %v", err)
	}
	if record.ID != "tt0111161" {
		t.Fatalf("id = %q", record.ID)
	}
	if record.Type != TypeMovie || record.RawType != "movie" {
		t.Fatalf("type = %v (%q)", record.Type, record.RawType)
	}
	if record.PrimaryTitle != "The Shawshank Redemption" {
		t.Fatalf("title = %q", record.PrimaryTitle)
	}
	if record.StartYear == nil || *record.StartYear != 1994 {
		t.Fatalf("year = %v", record.StartYear)
	}
	if record.RuntimeMinutes == nil || *record.RuntimeMinutes != 142 {
		t.Fatalf("runtime = %v", record.RuntimeMinutes)
	}
	if record.PrimaryGenre != "Drama" {
		t.Fatalf("genre = %q", record.PrimaryGenre)
	}
	if record.IsAdult {
		t.Fatalf("adult flag set")
	}
}

func TestParseTitleSentinelsBecomeAbsent(t *testing.T) {
	line := "tt0903747\ttvSeries\tBreaking Bad\tBreaking Bad\t0\t\\N\t\\N\t\\N\t\\N"
	record, err := ParseTitle(line)
	if err != nil {
		t.Fatalf("parse title: %v", err)
	}
	if record.Type != TypeSeries {
		t.Fatalf("type = %v", record.Type)
	}
	if record.StartYear != nil {
		t.Fatalf("unknown year should be nil, got %d", *record.StartYear)
	}
	if record.RuntimeMinutes != nil || record.PrimaryGenre != "" {
		t.Fatalf("unknown runtime/genre should be absent")
	}
}

func TestParseTitleErrors(t *testing.T) {
	cases := map[string]string{
		"wrong column count": "tt1\tmovie\tshort line",
		"empty id":           "\\N\tmovie\tTitle\tTitle\t0\t2000\t\\N\t90\tDrama",
		"missing title":      "tt1\tmovie\t\\N\t\\N\t0\t2000\t\\N\t90\tDrama",
		"bad year":           "tt1\tmovie\tTitle\tTitle\t0\ttwo-thousand\t\\N\t90\tDrama",
		"bad adult flag":     "tt1\tmovie\tTitle\tTitle\tmaybe\t2000\t\\N\t90\tDrama",
	}
	for name, line := range cases {
		_, err := ParseTitle(line)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%s: expected ParseError, got %T", name, err)
		}
	}
}

func TestParseTitleTypeMapping(t *testing.T) {
	cases := map[string]TitleType{
		"movie":        TypeMovie,
		"tvSeries":     TypeSeries,
		"tvMiniSeries": TypeOther,
		"short":        TypeOther,
		"videoGame":    TypeOther,
	}
	for raw, want := range cases {
		if got := ParseTitleType(raw); got != want {
			t.Fatalf("ParseTitleType(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestParseRating(t *testing.T) {
	record, err := ParseRating(ratingsLine)
	if err != nil {
		t.Fatalf("parse rating: %v", err)
	}
	if record.ID != "tt0111161" {
		t.Fatalf("id = %q", record.ID)
	}
	if record.Rating == nil || *record.Rating != 9.3 {
		t.Fatalf("rating = %v", record.Rating)
	}
	if record.Votes == nil || *record.Votes != 2900000 {
		t.Fatalf("votes = %v", record.Votes)
	}
}

func TestParseRatingUnknownIsNotZero(t *testing.T) {
	record, err := ParseRating("tt0000001\t\\N\t\\N")
	if err != nil {
		t.Fatalf("parse rating: %v", err)
	}
	if record.Rating != nil || record.Votes != nil {
		t.Fatalf("sentinel values must map to absent, got %v / %v", record.Rating, record.Votes)
	}

	zero, err := ParseRating("tt0000002\t5.0\t0")
	if err != nil {
		t.Fatalf("parse rating: %v", err)
	}
	if zero.Votes == nil || *zero.Votes != 0 {
		t.Fatalf("explicit zero votes must stay zero, got %v", zero.Votes)
	}
}

func TestParseRatingErrors(t *testing.T) {
	cases := map[string]string{
		"wrong column count": "tt1\t9.3",
		"empty id":           "\t9.3\t100",
		"non-numeric rating": "tt1\tnine\t100",
		"rating too high":    "tt1\t11.2\t100",
		"negative votes":     "tt1\t7.0\t-5",
		"float votes":        "tt1\t7.0\t12.5",
	}
	for name, line := range cases {
		if _, err := ParseRating(line); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
