// Package catalog loads music catalog exports into Tracks.
package catalog

import (
	"database/sql"
	"strings"
	"time"
)

// Track is one row of the catalog. It is not modified after loading.
type Track struct {
	Genres      []string
	Popularity  float64
	ReleaseDate time.Time
	Explicit    sql.NullBool
}

// Year returns the release year, and false if the release date was missing
// or could not be parsed.
func (t Track) Year() (int, bool) {
	if t.ReleaseDate.IsZero() {
		return 0, false
	}
	return t.ReleaseDate.Year(), true
}

// SplitGenres splits a comma-separated genre field into trimmed tokens. An
// empty field is a single empty token.
func SplitGenres(field string) []string {
	tokens := strings.Split(field, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	return tokens
}

// JoinGenres is the inverse of SplitGenres for already trimmed tokens.
func JoinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

// Catalog is the result of loading one or more sources.
type Catalog struct {
	Tracks []Track

	// Skipped holds the row-level problems found while loading. It is nil when
	// every row was clean; otherwise it is a *multierror.Error.
	Skipped error
}

// InRange returns the tracks released in [start, end). Tracks without a
// release date are dropped.
func InRange(tracks []Track, start, end time.Time) []Track {
	var out []Track
	for _, t := range tracks {
		if t.ReleaseDate.IsZero() {
			continue
		}
		if t.ReleaseDate.Before(start) || !t.ReleaseDate.Before(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}
