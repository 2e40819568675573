package sqlite

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/mwantia/walker/data"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteBackend stores a directory tree in a single SQLite table.
//
// Every row holds its parent path, so listing a directory is one indexed query.
// The dbPath can be ":memory:" for an in-memory database or a file path.
type SQLiteBackend struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteBackend opens the database and creates the schema if required.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// An in-memory database exists per connection
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, err
	}

	backend := &SQLiteBackend{
		db: db,
	}

	if err := backend.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return backend, nil
}

// initSchema creates the database schema and the root directory row.
func (sb *SQLiteBackend) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS walk_entries (
		path TEXT PRIMARY KEY,
		parent TEXT NOT NULL,
		mode INTEGER NOT NULL,
		size INTEGER NOT NULL DEFAULT 0,
		modify_time INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_walk_entries_parent ON walk_entries(parent, path);
	`

	if _, err := sb.db.Exec(schema); err != nil {
		return err
	}

	_, err := sb.db.Exec(`INSERT OR IGNORE INTO walk_entries (path, parent, mode, size, modify_time) VALUES (?, ?, ?, 0, ?)`,
		"/", "", int64(data.ModeDir|0755), time.Now().UnixNano())
	return err
}

// Returns the identifier name defined for this backend
func (*SQLiteBackend) Name() string {
	return "sqlite"
}

// Open verifies the database connection.
func (sb *SQLiteBackend) Open(ctx context.Context) error {
	return sb.db.PingContext(ctx)
}

// Close releases the database handle.
func (sb *SQLiteBackend) Close(ctx context.Context) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	return sb.db.Close()
}
