package filter

import (
	"strings"
	"testing"

	"github.com/reelgrid/reelgrid/catalog"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasGenre("Drama")`,
			wantErr:    false,
		},
		{
			name:        "empty expression",
			expression:  "",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:        "whitespace-only expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasGenre("unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `hasGenre("Drama") and Year > 2000 and contains(Title, "night")`,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				} else if tt.errContains != "" && !contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if f == nil {
					t.Errorf("expected filter but got nil")
				}
			}
		})
	}
}

func TestMatches(t *testing.T) {
	movie := catalog.Movie{
		ID:          42,
		Title:       "Night Train",
		Genres:      []string{"Thriller", "Drama"},
		Year:        2012,
		Description: "A ride home goes wrong.",
		Runtime:     "1 h 41 min",
		Rating:      "14+",
	}

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{
			name:       "has genre",
			expression: `hasGenre("Drama")`,
			expected:   true,
		},
		{
			name:       "has genre case-insensitive",
			expression: `hasGenre("thriller")`,
			expected:   true,
		},
		{
			name:       "does not have genre",
			expression: `hasGenre("Comedy")`,
			expected:   false,
		},
		{
			name:       "year comparison",
			expression: `Year > 2010`,
			expected:   true,
		},
		{
			name:       "year comparison false",
			expression: `Year < 2000`,
			expected:   false,
		},
		{
			name:       "title contains",
			expression: `contains(Title, "train")`,
			expected:   true,
		},
		{
			name:       "rating equality",
			expression: `Rating == "14+"`,
			expected:   true,
		},
		{
			name:       "boolean combination",
			expression: `hasGenre("Drama") and Year > 2010`,
			expected:   true,
		},
		{
			name:       "or combination",
			expression: `hasGenre("Comedy") or startsWith(Title, "night")`,
			expected:   true,
		},
		{
			name:       "negation",
			expression: `not hasGenre("Comedy")`,
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if err != nil {
				t.Fatalf("failed to compile: %v", err)
			}

			if got := f.Matches(movie); got != tt.expected {
				t.Errorf("Matches() = %v, want %v for %q", got, tt.expected, tt.expression)
			}
		})
	}
}

func TestApply(t *testing.T) {
	movies := []catalog.Movie{
		{ID: 1, Title: "Old Drama", Year: 1960, Genres: []string{"Drama"}},
		{ID: 2, Title: "New Comedy", Year: 2015, Genres: []string{"Comedy"}},
		{ID: 3, Title: "New Drama", Year: 2020, Genres: []string{"Drama"}},
	}

	f, err := Compile(`hasGenre("Drama") and Year >= 2000`)
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}

	got := f.Apply(movies)
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("Apply() = %v, want only movie 3", got)
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
