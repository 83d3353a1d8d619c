package catalog

// Movie is one catalog entry, immutable once decoded.
type Movie struct {
	ID          int64
	Title       string
	Genres      []string // unique labels, decoder order preserved
	Year        int
	Description string // empty when the feed carries none
	Runtime     string // display label, e.g. "1 h 52 min"; empty when absent
	Rating      string // display label, e.g. "PG"; empty when absent
	ThumbURL    string
}

// HasGenre reports whether the movie carries the given genre label.
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// titleRecord mirrors one title entry in the catalog envelope
type titleRecord struct {
	TitleID          int64          `json:"titleId"`
	Name             string         `json:"name"`
	TVGenres         []string       `json:"tvGenresArr"`
	ReleaseYear      int            `json:"releaseYear"`
	Description      *string        `json:"description"`
	AlternateRuntime *string        `json:"alternateRuntime"`
	TVRating         *string        `json:"tvRating"`
	ImageProfiles    []imageProfile `json:"imageProfiles"`
}

// imageProfile mirrors one entry of a title's imageProfiles array
type imageProfile struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`
	Usage  string `json:"usage"`
}
