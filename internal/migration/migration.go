// Package migration holds the SQLite schema for the catalog database.
package migration

// Create builds every table on a fresh database. It is safe to run against an
// existing one.
const Create = `
CREATE TABLE IF NOT EXISTS Import (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  source TEXT NOT NULL,
  imported DATETIME NOT NULL,
  row_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS Track (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  import_id INTEGER,
  genres TEXT NOT NULL,
  popularity REAL NOT NULL,
  release_date TEXT,
  explicit INTEGER,
  FOREIGN KEY (import_id) REFERENCES Import(id)
);
`
