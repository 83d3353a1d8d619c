// Package session owns the filter state for one catalog browsing session.
//
// A Session combines one immutable catalog snapshot with mutable filter
// criteria and derives the list of movies to show. Every mutation — the
// load result arriving, a year bound changing, a genre being selected or
// deselected — synchronously recomputes the derived view as a pure
// function of (catalog, criteria). Nothing is ever patched incrementally.
//
// A Session is not safe for concurrent use. The original interaction
// model is a single logical thread of control; callers that introduce
// parallelism (the web server does) must serialize access themselves.
package session

import (
	"sort"

	"github.com/reelgrid/reelgrid/catalog"
)

// Session holds the catalog, the current criteria, and the derived view.
type Session struct {
	status   Status
	loadErr  error
	movies   []catalog.Movie
	criteria Criteria
	view     DerivedView
}

// New creates a session awaiting its catalog load
func New() *Session {
	return &Session{
		status:   StatusLoading,
		criteria: Criteria{genres: make(map[string]bool)},
	}
}

// OnDataLoaded stores the fetched catalog and recomputes the full derived
// view: the genre universe from the catalog, the shown list from the
// current criteria.
func (s *Session) OnDataLoaded(movies []catalog.Movie) {
	s.status = StatusLoaded
	s.loadErr = nil
	s.movies = movies
	s.view.GenresAvailable = genreUniverse(movies)
	s.recomputeShown()
}

// OnDataFailed marks the load failed. The session never holds a partial
// catalog: before the first load there is nothing to keep, and the fetch
// is not re-run within a session.
func (s *Session) OnDataFailed(err error) {
	s.status = StatusFailed
	s.loadErr = err
}

// SetMinYear replaces the minimum release year bound; nil removes it.
// Only the shown list changes — the genre universe is catalog-derived.
func (s *Session) SetMinYear(year *int) {
	s.criteria.MinYear = year
	s.recomputeShown()
}

// SetMaxYear replaces the maximum release year bound; nil removes it.
func (s *Session) SetMaxYear(year *int) {
	s.criteria.MaxYear = year
	s.recomputeShown()
}

// AddGenre selects a genre. Adding an already-selected genre is a no-op
// beyond the (identical) recompute.
func (s *Session) AddGenre(genre string) {
	s.criteria.genres[genre] = true
	s.recomputeShown()
}

// RemoveGenre deselects a genre; removing an unselected genre is a no-op.
func (s *Session) RemoveGenre(genre string) {
	delete(s.criteria.genres, genre)
	s.recomputeShown()
}

// Status returns the load lifecycle state
func (s *Session) Status() Status {
	return s.status
}

// Err returns the load error, nil unless Status is StatusFailed
func (s *Session) Err() error {
	return s.loadErr
}

// Criteria returns a copy of the current criteria. The copy shares no
// state with the session; mutating it does not affect the shown list.
func (s *Session) Criteria() Criteria {
	c := Criteria{
		MinYear: s.criteria.MinYear,
		MaxYear: s.criteria.MaxYear,
		genres:  make(map[string]bool, len(s.criteria.genres)),
	}
	for g := range s.criteria.genres {
		c.genres[g] = true
	}
	return c
}

// View returns the current derived view. The slices are owned by the
// session; callers must not mutate them.
func (s *Session) View() DerivedView {
	return s.view
}

// recomputeShown rebuilds the shown list from scratch, preserving
// catalog order.
func (s *Session) recomputeShown() {
	shown := make([]catalog.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if s.criteria.Matches(m) {
			shown = append(shown, m)
		}
	}
	s.view.Shown = shown
}

// genreUniverse collects the union of all genre sets, sorted
func genreUniverse(movies []catalog.Movie) []string {
	set := make(map[string]bool)
	for _, m := range movies {
		for _, g := range m.Genres {
			set[g] = true
		}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
