// Package checkcache persists check results across runs so
// `lumenc check --cache` can skip re-checking a file whose content
// hasn't changed since the last run. It is grounded on the teacher's
// own "lib/sql" virtual package (internal/modules/virtual_packages_other.go)
// being the language's database surface; here that same dependency —
// modernc.org/sqlite, a pure-Go driver with no cgo toolchain
// requirement — backs a real cache one layer up, storing the
// checker's own output rather than a user script's rows.
package checkcache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lumen-lang/lumenc/internal/diagnostics"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	started_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS entries (
	path    TEXT NOT NULL,
	hash    TEXT NOT NULL,
	run_id  TEXT NOT NULL,
	diags   TEXT NOT NULL,
	PRIMARY KEY (path, hash)
);
`

// Cache is a handle on one lumenc check --cache database.
type Cache struct {
	db *sql.DB
}

// Open creates or attaches to the sqlite database at path, applying
// the schema if this is a fresh file.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("checkcache: opening %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("checkcache: applying schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// NewRun records the start of a checking run and returns its ID, used
// to tag every entry Store writes during this run.
func (c *Cache) NewRun() (string, error) {
	id := uuid.New().String()
	_, err := c.db.Exec(`INSERT INTO runs (id, started_at) VALUES (?, ?)`, id, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("checkcache: recording run: %w", err)
	}
	return id, nil
}

// Lookup returns the diagnostics recorded for (path, hash) in a
// previous run, if any.
func (c *Cache) Lookup(path, hash string) ([]diagnostics.Diagnostic, bool, error) {
	var raw string
	err := c.db.QueryRow(`SELECT diags FROM entries WHERE path = ? AND hash = ?`, path, hash).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("checkcache: looking up %s: %w", path, err)
	}
	diags, err := decodeDiagnostics(raw)
	if err != nil {
		return nil, false, err
	}
	return diags, true, nil
}

// Store records path's check result for the current content hash
// under runID, evicting any stale entry for a previous hash of the
// same path.
func (c *Cache) Store(runID, path, hash string, diags []diagnostics.Diagnostic) error {
	raw, err := encodeDiagnostics(diags)
	if err != nil {
		return err
	}
	if _, err := c.db.Exec(`DELETE FROM entries WHERE path = ? AND hash != ?`, path, hash); err != nil {
		return fmt.Errorf("checkcache: evicting stale entry for %s: %w", path, err)
	}
	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO entries (path, hash, run_id, diags) VALUES (?, ?, ?, ?)`,
		path, hash, runID, raw,
	)
	if err != nil {
		return fmt.Errorf("checkcache: storing %s: %w", path, err)
	}
	return nil
}
