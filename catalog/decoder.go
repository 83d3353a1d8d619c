package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

const (
	// titlesPath locates the title array inside the catalog envelope
	titlesPath = "data.titles"

	// thumbUsage tags the image profile meant for the explore grid
	thumbUsage = "homepageExploreThumb"

	// PlaceholderThumbURL is used when a title has no explore thumbnail
	PlaceholderThumbURL = "https://static.reelgrid.dev/placeholder-thumb.png"
)

// Decode maps one raw catalog envelope into movies.
// The whole payload is rejected if any title record fails to decode;
// a partially decoded catalog is never returned.
func Decode(body []byte) ([]Movie, error) {
	if !gjson.ValidBytes(body) {
		return nil, &DecodeError{Reason: "response is not valid JSON"}
	}

	titles := gjson.GetBytes(body, titlesPath)
	if !titles.Exists() {
		return nil, &DecodeError{Reason: fmt.Sprintf("missing %q in response", titlesPath)}
	}
	if !titles.IsArray() {
		return nil, &DecodeError{Reason: fmt.Sprintf("%q is not an array", titlesPath)}
	}

	entries := titles.Array()
	movies := make([]Movie, 0, len(entries))
	for i, entry := range entries {
		var rec titleRecord
		if err := json.Unmarshal([]byte(entry.Raw), &rec); err != nil {
			return nil, &DecodeError{
				Reason: fmt.Sprintf("title record %d is malformed", i),
				Err:    err,
			}
		}
		movies = append(movies, rec.toMovie())
	}

	return movies, nil
}

// toMovie maps a decoded title record onto the Movie type
func (r titleRecord) toMovie() Movie {
	m := Movie{
		ID:       r.TitleID,
		Title:    r.Name,
		Genres:   dedupe(r.TVGenres),
		Year:     r.ReleaseYear,
		ThumbURL: selectThumb(r.ImageProfiles),
	}

	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.AlternateRuntime != nil {
		m.Runtime = *r.AlternateRuntime
	}
	if r.TVRating != nil {
		m.Rating = *r.TVRating
	}

	return m
}

// selectThumb picks the first image profile tagged for the explore grid and
// appends its dimensions as query parameters. Titles without one fall back
// to the fixed placeholder.
func selectThumb(profiles []imageProfile) string {
	for _, p := range profiles {
		if p.Usage == thumbUsage {
			return fmt.Sprintf("%s?w=%d&h=%d", p.URL, p.Width, p.Height)
		}
	}
	return PlaceholderThumbURL
}

// dedupe drops repeated genre labels, keeping first-seen order
func dedupe(genres []string) []string {
	if len(genres) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(genres))
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}
