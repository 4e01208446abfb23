package imdb

import (
	"fmt"
	"strconv"
	"strings"
)

// sentinel is the "value not known" token used throughout the IMDb dumps.
const sentinel = `\N`

// Column counts of the two dump schemas.
const (
	basicsColumns  = 9
	ratingsColumns = 3
)

// ParseError describes a single malformed dataset line. Callers skip the line
// and move on; a parse failure is never fatal to a run.
type ParseError struct {
	Dataset string
	Field   string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s record: %s: %s", e.Dataset, e.Field, e.Reason)
}

func titleError(field, reason string) error {
	return &ParseError{Dataset: "title", Field: field, Reason: reason}
}

func ratingError(field, reason string) error {
	return &ParseError{Dataset: "rating", Field: field, Reason: reason}
}

// ParseTitle parses one data line of title.basics.
//
// Columns: tconst, titleType, primaryTitle, originalTitle, isAdult, startYear,
// endYear, runtimeMinutes, genres.
func ParseTitle(line string) (TitleRecord, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != basicsColumns {
		return TitleRecord{}, titleError("line", fmt.Sprintf("expected %d columns, got %d", basicsColumns, len(fields)))
	}

	id := strings.TrimSpace(fields[0])
	if id == "" || id == sentinel {
		return TitleRecord{}, titleError("tconst", "empty id")
	}

	rawType := strings.TrimSpace(fields[1])
	if rawType == "" || rawType == sentinel {
		return TitleRecord{}, titleError("titleType", "missing")
	}

	primary := strings.TrimSpace(fields[2])
	if primary == "" || primary == sentinel {
		return TitleRecord{}, titleError("primaryTitle", "missing")
	}

	adult, err := parseAdultFlag(fields[4])
	if err != nil {
		return TitleRecord{}, err
	}

	year, err := optionalInt("title", "startYear", fields[5])
	if err != nil {
		return TitleRecord{}, err
	}

	runtime, err := optionalInt("title", "runtimeMinutes", fields[7])
	if err != nil {
		return TitleRecord{}, err
	}

	record := TitleRecord{
		ID:             id,
		Type:           ParseTitleType(rawType),
		RawType:        rawType,
		PrimaryTitle:   primary,
		IsAdult:        adult,
		StartYear:      year,
		RuntimeMinutes: runtime,
		PrimaryGenre:   primaryGenre(fields[8]),
	}
	if original := strings.TrimSpace(fields[3]); original != sentinel {
		record.OriginalTitle = original
	}
	return record, nil
}

// ParseRating parses one data line of title.ratings.
//
// Columns: tconst, averageRating, numVotes.
func ParseRating(line string) (RatingRecord, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != ratingsColumns {
		return RatingRecord{}, ratingError("line", fmt.Sprintf("expected %d columns, got %d", ratingsColumns, len(fields)))
	}

	id := strings.TrimSpace(fields[0])
	if id == "" || id == sentinel {
		return RatingRecord{}, ratingError("tconst", "empty id")
	}

	record := RatingRecord{ID: id}

	if raw := strings.TrimSpace(fields[1]); raw != sentinel && raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return RatingRecord{}, ratingError("averageRating", fmt.Sprintf("not numeric: %q", raw))
		}
		if value < 0 || value > 10 {
			return RatingRecord{}, ratingError("averageRating", fmt.Sprintf("out of range: %g", value))
		}
		record.Rating = &value
	}

	if raw := strings.TrimSpace(fields[2]); raw != sentinel && raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return RatingRecord{}, ratingError("numVotes", fmt.Sprintf("not an integer: %q", raw))
		}
		if value < 0 {
			return RatingRecord{}, ratingError("numVotes", fmt.Sprintf("negative: %d", value))
		}
		record.Votes = &value
	}

	return record, nil
}

func parseAdultFlag(raw string) (bool, error) {
	switch strings.TrimSpace(raw) {
	case "0", sentinel, "":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, titleError("isAdult", fmt.Sprintf("unexpected value %q", raw))
	}
}

func optionalInt(dataset, field, raw string) (*int, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == sentinel || cleaned == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil, &ParseError{Dataset: dataset, Field: field, Reason: fmt.Sprintf("not an integer: %q", cleaned)}
	}
	return &value, nil
}

func primaryGenre(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == sentinel || cleaned == "" {
		return ""
	}
	if idx := strings.IndexByte(cleaned, ','); idx >= 0 {
		cleaned = cleaned[:idx]
	}
	return strings.TrimSpace(cleaned)
}
