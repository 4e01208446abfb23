package catalog

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"marquee/internal/imdb"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		{ID: "tt1", Title: "First, The", Year: intPtr(1994), Type: imdb.TypeMovie, PrimaryGenre: "Drama", Runtime: intPtr(142), Rating: 9.3, Votes: 2900000},
		{ID: "tt2", Title: "Second", Type: imdb.TypeSeries, Rating: 8.0, Votes: 600},
	}
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleSnapshot().WriteCSV(&buf); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	restored, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !reflect.DeepEqual(restored, sampleSnapshot()) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", restored, sampleSnapshot())
	}
}

func TestReadCSVDuplicateKeepsHigherVotes(t *testing.T) {
	input := strings.Join([]string{
		"Title,Year,IMDbID,Type,primary_genre,runtime,Rating,Votes",
		"Dup,2000,tt1,movie,Drama,90,7.0,100",
		"Dup,2000,tt1,movie,Drama,90,7.1,900",
		",,tt2,movie,,,not-a-rating,10",
	}, "\n")

	snapshot, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(snapshot) != 1 {
		t.Fatalf("entries = %d, want 1", len(snapshot))
	}
	if snapshot[0].Votes != 900 {
		t.Fatalf("votes = %d, want the higher-vote duplicate", snapshot[0].Votes)
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	snapshot, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(snapshot) != 0 {
		t.Fatalf("expected empty snapshot")
	}
}
