package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"rustdocset/internal/domain"
	"rustdocset/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

// Index implements ports.SearchIndex on a SQLite database in the Dash
// docSet.dsidx format.
type Index struct{}

// Ensure Index implements SearchIndex
var _ ports.SearchIndex = (*Index)(nil)

// NewIndex creates a new SQLite search index writer.
func NewIndex() *Index {
	return &Index{}
}

// Write creates docSet.dsidx under the bundle and inserts every entry
// inside a single transaction. The caller guarantees the bundle was
// freshly reset, so the index file never pre-exists.
func (idx *Index) Write(docsetRoot string, entries []domain.Entry) error {
	dbPath := filepath.Join(docsetRoot, domain.ContentsDir, domain.ResourcesDir, domain.IndexFileName)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index %s: %w", dbPath, err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE searchIndex (id INTEGER PRIMARY KEY, name TEXT, type TEXT, path TEXT);
		CREATE UNIQUE INDEX anchor ON searchIndex (name, type, path);
	`)
	if err != nil {
		return fmt.Errorf("failed to create index schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin index transaction: %w", err)
	}

	if err := insertEntries(tx, entries); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit index transaction: %w", err)
	}

	return nil
}

// insertEntries inserts all entries through one prepared statement. A
// duplicate (name, type, path) triple trips the anchor index and fails
// the whole batch; duplicates indicate a source-tree anomaly and are
// never resolved by overwriting.
func insertEntries(tx *sql.Tx, entries []domain.Entry) error {
	stmt, err := tx.Prepare(`INSERT INTO searchIndex (name, type, path) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare index insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		if _, err := stmt.Exec(entry.Name, entry.Kind.String(), entry.Path); err != nil {
			return fmt.Errorf("failed to insert %s %q: %w", entry.Kind, entry.Name, err)
		}
	}

	return nil
}
