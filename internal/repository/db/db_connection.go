package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const (
	sqliteDriverName = "sqlite"

	// MemoryPath keeps the reading log for the lifetime of the process only.
	MemoryPath = ":memory:"
)

// InitDB opens a SQLite database and ensures the readings table exists.
func InitDB(path string) (*sql.DB, error) {
	if path == "" {
		path = MemoryPath
	}
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Every :memory: connection is its own database, and ids are assigned
	// with a COUNT(*) subquery, so keep exactly one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if path != MemoryPath {
		if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set PRAGMA journal_mode=WAL: %w", err)
		}
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const schemaReadings = `
CREATE TABLE IF NOT EXISTS readings (
    id INTEGER PRIMARY KEY,
    temperature REAL NOT NULL,
    current REAL NOT NULL,
    voltage REAL NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaReadings); err != nil {
		return fmt.Errorf("apply readings schema: %w", err)
	}
	return nil
}
