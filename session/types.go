package session

import (
	"github.com/reelgrid/reelgrid/catalog"
)

// Status represents the lifecycle state of the catalog load
type Status int

const (
	// StatusLoading indicates the initial fetch is still outstanding
	StatusLoading Status = iota
	// StatusFailed indicates the fetch failed; the error is kept
	StatusFailed
	// StatusLoaded indicates the catalog is available
	StatusLoaded
)

// String returns the string representation of a Status
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusFailed:
		return "failed"
	case StatusLoaded:
		return "loaded"
	}
	return "unknown"
}

// Criteria is the user-chosen filter state. Nil year bounds impose no
// constraint; an empty genre selection matches every movie.
type Criteria struct {
	MinYear *int
	MaxYear *int
	genres  map[string]bool
}

// Matches reports whether a movie passes the criteria. A movie is shown
// iff it passes the minimum-year, maximum-year, and genre checks:
//
//   - no minimum set, or Year >= minimum (inclusive)
//   - no maximum set, or Year <= maximum (inclusive)
//   - no genres selected, or the movie's genre set intersects the selection
func (c Criteria) Matches(m catalog.Movie) bool {
	if c.MinYear != nil && m.Year < *c.MinYear {
		return false
	}
	if c.MaxYear != nil && m.Year > *c.MaxYear {
		return false
	}
	if len(c.genres) == 0 {
		return true
	}
	for _, g := range m.Genres {
		if c.genres[g] {
			return true
		}
	}
	return false
}

// HasGenre reports whether the genre is currently selected
func (c Criteria) HasGenre(genre string) bool {
	return c.genres[genre]
}

// Genres returns the selected genres in sorted order
func (c Criteria) Genres() []string {
	return sortedKeys(c.genres)
}

// DerivedView is the recomputed output of (catalog, criteria). It is
// replaced wholesale on every state change, never patched.
type DerivedView struct {
	// GenresAvailable is the union of every catalog movie's genre set,
	// sorted for stable presentation.
	GenresAvailable []string
	// Shown is the subsequence of the catalog matching the criteria,
	// in catalog order.
	Shown []catalog.Movie
}
