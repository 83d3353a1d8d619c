package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelgrid/reelgrid/catalog"
)

func intPtr(i int) *int { return &i }

func testCatalog() []catalog.Movie {
	return []catalog.Movie{
		{ID: 1, Title: "Gone With the Wind", Year: 1939, Genres: []string{"Drama"}},
		{ID: 2, Title: "The Seven Year Itch", Year: 1955, Genres: []string{"Comedy"}},
		{ID: 3, Title: "Alien", Year: 1979, Genres: []string{"Horror", "Sci-Fi"}},
		{ID: 4, Title: "Untagged Short", Year: 1990, Genres: nil},
		{ID: 5, Title: "Knives Out", Year: 2019, Genres: []string{"Comedy", "Drama"}},
	}
}

func loadedSession() *Session {
	s := New()
	s.OnDataLoaded(testCatalog())
	return s
}

func shownIDs(s *Session) []int64 {
	ids := make([]int64, 0, len(s.View().Shown))
	for _, m := range s.View().Shown {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestLifecycle(t *testing.T) {
	s := New()
	assert.Equal(t, StatusLoading, s.Status())
	assert.NoError(t, s.Err())
	assert.Empty(t, s.View().Shown)
	assert.Empty(t, s.View().GenresAvailable)

	s.OnDataLoaded(testCatalog())
	assert.Equal(t, StatusLoaded, s.Status())
	assert.NoError(t, s.Err())
}

func TestLoadFailure(t *testing.T) {
	s := New()
	loadErr := errors.New("boom")
	s.OnDataFailed(loadErr)

	assert.Equal(t, StatusFailed, s.Status())
	assert.ErrorIs(t, s.Err(), loadErr)
	assert.Empty(t, s.View().Shown)
}

func TestNoCriteriaShowsFullCatalog(t *testing.T) {
	s := loadedSession()

	require.Len(t, s.View().Shown, len(testCatalog()))
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, shownIDs(s))
}

func TestGenreUniverse(t *testing.T) {
	s := loadedSession()
	assert.Equal(t, []string{"Comedy", "Drama", "Horror", "Sci-Fi"}, s.View().GenresAvailable)
}

func TestYearBounds(t *testing.T) {
	tests := []struct {
		name string
		min  *int
		max  *int
		want []int64
	}{
		{
			name: "minimum only",
			min:  intPtr(1940),
			want: []int64{2, 3, 4, 5},
		},
		{
			name: "maximum only",
			max:  intPtr(1979),
			want: []int64{1, 2, 3},
		},
		{
			name: "both bounds",
			min:  intPtr(1955),
			max:  intPtr(1990),
			want: []int64{2, 3, 4},
		},
		{
			name: "bounds are inclusive",
			min:  intPtr(1939),
			max:  intPtr(2019),
			want: []int64{1, 2, 3, 4, 5},
		},
		{
			name: "empty window",
			min:  intPtr(1991),
			max:  intPtr(2000),
			want: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loadedSession()
			s.SetMinYear(tt.min)
			s.SetMaxYear(tt.max)
			assert.Equal(t, tt.want, shownIDs(s))
		})
	}
}

func TestClearingBoundRestoresFullCatalog(t *testing.T) {
	s := loadedSession()

	s.SetMinYear(intPtr(2000))
	require.Equal(t, []int64{5}, shownIDs(s))

	s.SetMinYear(nil)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, shownIDs(s))
}

func TestGenreSelection(t *testing.T) {
	s := loadedSession()

	s.AddGenre("Comedy")
	assert.Equal(t, []int64{2, 5}, shownIDs(s))

	// Intersection semantics: any selected genre qualifies a movie
	s.AddGenre("Horror")
	assert.Equal(t, []int64{2, 3, 5}, shownIDs(s))

	s.RemoveGenre("Comedy")
	assert.Equal(t, []int64{3}, shownIDs(s))
}

func TestGenreIntersection(t *testing.T) {
	c := Criteria{genres: map[string]bool{"Comedy": true, "Horror": true}}

	assert.False(t, c.Matches(catalog.Movie{Genres: []string{"Drama"}}))
	assert.True(t, c.Matches(catalog.Movie{Genres: []string{"Drama", "Comedy"}}))
}

func TestEmptySelectionMatchesEverything(t *testing.T) {
	// An empty selection means "no genre filter", not "no movies match".
	// A movie with no genres of its own still passes.
	c := Criteria{genres: map[string]bool{}}
	assert.True(t, c.Matches(catalog.Movie{Genres: nil}))

	c = Criteria{genres: map[string]bool{"Comedy": true}}
	assert.False(t, c.Matches(catalog.Movie{Genres: nil}),
		"a movie with no genres can never match a non-empty selection")
}

func TestAddGenreIdempotent(t *testing.T) {
	s := loadedSession()

	s.AddGenre("Drama")
	once := shownIDs(s)
	onceSelected := s.Criteria().Genres()

	s.AddGenre("Drama")
	assert.Equal(t, once, shownIDs(s))
	assert.Equal(t, onceSelected, s.Criteria().Genres())
}

func TestAddThenRemoveGenreRestoresState(t *testing.T) {
	s := loadedSession()
	s.AddGenre("Comedy")

	before := shownIDs(s)
	beforeSelected := s.Criteria().Genres()

	s.AddGenre("Sci-Fi")
	s.RemoveGenre("Sci-Fi")

	assert.Equal(t, before, shownIDs(s))
	assert.Equal(t, beforeSelected, s.Criteria().Genres())
}

func TestRemoveAbsentGenreIsNoOp(t *testing.T) {
	s := loadedSession()
	s.RemoveGenre("Western")
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, shownIDs(s))
}

func TestShownIsOrderPreservingSubsequence(t *testing.T) {
	s := loadedSession()
	s.SetMinYear(intPtr(1950))
	s.AddGenre("Comedy")
	s.AddGenre("Drama")

	shown := s.View().Shown
	full := testCatalog()

	// Every shown movie appears in the catalog, in the same relative order
	idx := 0
	for _, m := range shown {
		found := false
		for ; idx < len(full); idx++ {
			if full[idx].ID == m.ID {
				found = true
				idx++
				break
			}
		}
		require.True(t, found, "shown movie %d out of catalog order", m.ID)
	}
}

func TestCombinedCriteria(t *testing.T) {
	s := loadedSession()
	s.SetMinYear(intPtr(1950))
	s.SetMaxYear(intPtr(1990))
	s.AddGenre("Comedy")

	// Year window admits 2,3,4; genre check narrows to 2
	assert.Equal(t, []int64{2}, shownIDs(s))
}

func TestCriteriaCopyIsDetached(t *testing.T) {
	s := loadedSession()
	s.AddGenre("Drama")

	c := s.Criteria()
	assert.True(t, c.HasGenre("Drama"))

	// Mutating the copy must not leak back into the session
	c.genres["Horror"] = true
	assert.False(t, s.Criteria().HasGenre("Horror"))
	assert.Equal(t, []int64{1, 5}, shownIDs(s))
}

func TestFilterBeforeLoad(t *testing.T) {
	s := New()
	s.AddGenre("Drama")
	s.SetMinYear(intPtr(1950))

	assert.Empty(t, s.View().Shown)

	// Criteria chosen before the load applies once data arrives
	s.OnDataLoaded(testCatalog())
	assert.Equal(t, []int64{5}, shownIDs(s))
}
