package imdb

// TitleType is the closed set of title categories the catalog distinguishes.
type TitleType string

const (
	TypeMovie  TitleType = "movie"
	TypeSeries TitleType = "series"
	TypeOther  TitleType = "other"
)

// ParseTitleType maps a raw titleType token from title.basics onto the closed
// enum. Everything that is neither a movie nor a TV series collapses to
// TypeOther; the raw token is kept on the record for display.
func ParseTitleType(raw string) TitleType {
	switch raw {
	case "movie":
		return TypeMovie
	case "tvSeries":
		return TypeSeries
	default:
		return TypeOther
	}
}

// TitleRecord is one parsed line of title.basics. Immutable once parsed.
type TitleRecord struct {
	ID             string
	Type           TitleType
	RawType        string
	PrimaryTitle   string
	OriginalTitle  string
	IsAdult        bool
	StartYear      *int
	RuntimeMinutes *int
	PrimaryGenre   string
}

// RatingRecord is one parsed line of title.ratings. Rating and Votes are nil
// when the source marked them unknown. Immutable once parsed.
type RatingRecord struct {
	ID     string
	Rating *float64
	Votes  *int
}
