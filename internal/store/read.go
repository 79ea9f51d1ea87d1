package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ademuri/catalog-stats/internal/catalog"
)

type Import struct {
	ID       int64
	Source   string
	Imported time.Time
	Rows     int
}

// GetTracks returns every stored track in insertion order.
func (s *Store) GetTracks() ([]catalog.Track, error) {
	rows, err := s.db.Query("SELECT genres, popularity, release_date, explicit FROM Track ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying tracks: %w", err)
	}
	defer rows.Close()

	var tracks []catalog.Track
	for rows.Next() {
		var genres string
		var date sql.NullString
		var t catalog.Track
		if err := rows.Scan(&genres, &t.Popularity, &date, &t.Explicit); err != nil {
			return nil, fmt.Errorf("scanning track: %w", err)
		}
		t.Genres = catalog.SplitGenres(genres)
		if date.Valid {
			t.ReleaseDate, err = time.Parse(dateLayout, date.String)
			if err != nil {
				return nil, fmt.Errorf("parsing stored date %q: %w", date.String, err)
			}
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// GetLastImport returns the most recent import, or nil if there is none.
func (s *Store) GetLastImport() (*Import, error) {
	row := s.db.QueryRow("SELECT id, source, imported, row_count FROM Import ORDER BY id DESC LIMIT 1")
	var imp Import
	err := row.Scan(&imp.ID, &imp.Source, &imp.Imported, &imp.Rows)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting last import: %w", err)
	}
	return &imp, nil
}

func (s *Store) CountTracks() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM Track").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting tracks: %w", err)
	}
	return n, nil
}
