package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ademuri/catalog-stats/internal/catalog"
)

const dateLayout = "2006-01-02"

// AddTracks inserts a batch of tracks from one source transactionally, and
// records the import.
func (s *Store) AddTracks(source string, tracks []catalog.Track) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("INSERT INTO Import (source, imported, row_count) VALUES (?, ?, ?)", source, time.Now().UTC(), len(tracks))
	if err != nil {
		return 0, fmt.Errorf("inserting import %q: %w", source, err)
	}
	importID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading import id: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO Track (import_id, genres, popularity, release_date, explicit) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing track insert: %w", err)
	}
	defer stmt.Close()

	for i, track := range tracks {
		var date sql.NullString
		if !track.ReleaseDate.IsZero() {
			date = sql.NullString{String: track.ReleaseDate.Format(dateLayout), Valid: true}
		}
		if _, err := stmt.Exec(importID, catalog.JoinGenres(track.Genres), track.Popularity, date, track.Explicit); err != nil {
			return 0, fmt.Errorf("inserting track %d from %q: %w", i, source, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return importID, nil
}

// ClearTracks removes every track and import.
func (s *Store) ClearTracks() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM Track"); err != nil {
		return fmt.Errorf("deleting tracks: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM Import"); err != nil {
		return fmt.Errorf("deleting imports: %w", err)
	}
	return tx.Commit()
}
