package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"marquee/internal/imdb"
)

// csvHeader is the snapshot file schema shared with the database writer.
var csvHeader = []string{"Title", "Year", "IMDbID", "Type", "primary_genre", "runtime", "Rating", "Votes"}

// WriteCSV writes the snapshot in its current order.
func (s Snapshot) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range s {
		row := []string{
			entry.Title,
			formatOptionalInt(entry.Year),
			entry.ID,
			string(entry.Type),
			entry.PrimaryGenre,
			formatOptionalInt(entry.Runtime),
			strconv.FormatFloat(entry.Rating, 'f', 1, 64),
			strconv.Itoa(entry.Votes),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ReadCSV loads a snapshot previously written by WriteCSV, preserving row
// order. Duplicate ids resolve to the higher-vote row; rows without a usable
// id, rating, or vote count are dropped.
func ReadCSV(r io.Reader) (Snapshot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err == io.EOF {
		return Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if header[0] != csvHeader[0] || header[2] != csvHeader[2] {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}

	var entries Snapshot
	position := make(map[string]int)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		entry, ok := entryFromRow(row)
		if !ok {
			continue
		}

		if prior, seen := position[entry.ID]; seen {
			if entry.Votes > entries[prior].Votes {
				entries[prior] = entry
			}
			continue
		}
		position[entry.ID] = len(entries)
		entries = append(entries, entry)
	}
	return entries, nil
}

func entryFromRow(row []string) (Entry, bool) {
	id := row[2]
	if id == "" {
		return Entry{}, false
	}
	rating, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return Entry{}, false
	}
	votes, err := strconv.Atoi(row[7])
	if err != nil || votes < 0 {
		return Entry{}, false
	}

	entry := Entry{
		ID:           id,
		Title:        row[0],
		Type:         imdb.TitleType(row[3]),
		PrimaryGenre: row[4],
		Rating:       rating,
		Votes:        votes,
	}
	if year, err := strconv.Atoi(row[1]); err == nil {
		entry.Year = &year
	}
	if runtime, err := strconv.Atoi(row[5]); err == nil {
		entry.Runtime = &runtime
	}
	return entry, true
}

func formatOptionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}
