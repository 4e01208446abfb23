package store

import (
	"strings"

	"marquee/internal/imdb"
)

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func typeFromString(raw string) imdb.TitleType {
	switch raw {
	case string(imdb.TypeMovie):
		return imdb.TypeMovie
	case string(imdb.TypeSeries):
		return imdb.TypeSeries
	default:
		return imdb.TypeOther
	}
}
