package catalog

import (
	"reflect"
	"testing"

	"marquee/internal/imdb"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func title(id, name string, t imdb.TitleType) imdb.TitleRecord {
	return imdb.TitleRecord{ID: id, Type: t, RawType: string(t), PrimaryTitle: name, StartYear: intPtr(2000)}
}

func rating(id string, value float64, votes int) imdb.RatingRecord {
	return imdb.RatingRecord{ID: id, Rating: floatPtr(value), Votes: intPtr(votes)}
}

func TestBuildJoinsOnID(t *testing.T) {
	titles := []imdb.TitleRecord{
		title("tt1", "Matched Movie", imdb.TypeMovie),
		title("tt2", "No Rating", imdb.TypeMovie),
	}
	ratings := []imdb.RatingRecord{
		rating("tt1", 7.5, 1200),
		rating("tt3", 8.0, 500),
	}

	snapshot, stats := Build(titles, ratings, KeepAll)
	if len(snapshot) != 1 {
		t.Fatalf("entries = %d, want 1", len(snapshot))
	}
	entry := snapshot[0]
	if entry.ID != "tt1" || entry.Title != "Matched Movie" || entry.Rating != 7.5 || entry.Votes != 1200 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if stats.TitleOnly != 1 || stats.RatingOnly != 1 {
		t.Fatalf("join-miss counts wrong: %+v", stats)
	}
}

func TestBuildDropsUnknownRatings(t *testing.T) {
	titles := []imdb.TitleRecord{title("tt1", "Unrated", imdb.TypeMovie)}
	ratings := []imdb.RatingRecord{{ID: "tt1"}} // rating record with sentinel values

	snapshot, stats := Build(titles, ratings, KeepAll)
	if len(snapshot) != 0 {
		t.Fatalf("expected no entries, got %d", len(snapshot))
	}
	if stats.Unrated != 1 {
		t.Fatalf("unrated = %d, want 1", stats.Unrated)
	}
}

func TestBuildPredicates(t *testing.T) {
	adult := title("tt3", "Adult Movie", imdb.TypeMovie)
	adult.IsAdult = true
	undated := title("tt4", "Undated", imdb.TypeMovie)
	undated.StartYear = nil

	titles := []imdb.TitleRecord{
		title("tt1", "Movie", imdb.TypeMovie),
		title("tt2", "Short", imdb.TypeOther),
		adult,
		undated,
	}
	ratings := []imdb.RatingRecord{
		rating("tt1", 7.0, 100),
		rating("tt2", 7.0, 100),
		rating("tt3", 7.0, 100),
		rating("tt4", 7.0, 100),
	}

	keep := RequireYear(ExcludeAdult(KeepTypes(imdb.TypeMovie, imdb.TypeSeries)))
	snapshot, stats := Build(titles, ratings, keep)
	if len(snapshot) != 1 || snapshot[0].ID != "tt1" {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
	if stats.Excluded != 3 {
		t.Fatalf("excluded = %d, want 3", stats.Excluded)
	}
}

func TestBuildOrderingIsDeterministic(t *testing.T) {
	titles := []imdb.TitleRecord{
		title("tt5", "Low Votes", imdb.TypeMovie),
		title("tt1", "Tie B", imdb.TypeMovie),
		title("tt2", "Tie A", imdb.TypeMovie),
		title("tt3", "High Votes", imdb.TypeMovie),
		title("tt4", "Better Rating", imdb.TypeMovie),
	}
	ratings := []imdb.RatingRecord{
		rating("tt5", 9.9, 10),
		rating("tt1", 7.0, 500),
		rating("tt2", 7.0, 500),
		rating("tt3", 6.0, 9000),
		rating("tt4", 8.0, 500),
	}

	want := []string{"tt3", "tt4", "tt1", "tt2", "tt5"}

	first, _ := Build(titles, ratings, KeepAll)
	for run := 0; run < 5; run++ {
		snapshot, _ := Build(titles, ratings, KeepAll)
		ids := make([]string, len(snapshot))
		for i, entry := range snapshot {
			ids[i] = entry.ID
		}
		if !reflect.DeepEqual(ids, want) {
			t.Fatalf("run %d: order = %v, want %v", run, ids, want)
		}
		if !reflect.DeepEqual(snapshot, first) {
			t.Fatalf("run %d: snapshot differs between runs", run)
		}
	}
}

func TestBuildDuplicateIDsLastWins(t *testing.T) {
	titles := []imdb.TitleRecord{
		title("tt1", "Old Name", imdb.TypeMovie),
		title("tt1", "New Name", imdb.TypeMovie),
	}
	ratings := []imdb.RatingRecord{rating("tt1", 7.0, 100)}

	snapshot, _ := Build(titles, ratings, KeepAll)
	if len(snapshot) != 1 || snapshot[0].Title != "New Name" {
		t.Fatalf("expected last occurrence to win, got %+v", snapshot)
	}
}

func TestBuildEmptyInputs(t *testing.T) {
	if snapshot, _ := Build(nil, nil, KeepAll); len(snapshot) != 0 {
		t.Fatalf("expected empty snapshot")
	}
	if snapshot, _ := Build([]imdb.TitleRecord{title("tt1", "Solo", imdb.TypeMovie)}, nil, KeepAll); len(snapshot) != 0 {
		t.Fatalf("expected empty snapshot for empty ratings")
	}
}
