// Package sqldb owns the relational persistence variant. The backing engine
// is SQLite (a single local file, the default) or PostgreSQL, selected by the
// DATABASE_URL scheme; both serve the same single-table schema through
// database/sql.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	pingTimeout = 5 * time.Second
	busyTimeout = 5000 // milliseconds
)

// sqliteSchema is applied on every open; the table is created if absent so a
// fresh database file works on first use. PostgreSQL schemas are managed by
// migrations instead (see cmd/todod).
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0
);`

// IsPostgres reports whether the database URL addresses a PostgreSQL server
// rather than a SQLite file.
func IsPostgres(databaseURL string) bool {
	return strings.HasPrefix(databaseURL, "postgres://") ||
		strings.HasPrefix(databaseURL, "postgresql://")
}

// PoolConfig tunes the database/sql connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Open opens the database addressed by databaseURL, configures the pool,
// verifies connectivity, and for SQLite bootstraps the schema.
func Open(databaseURL string, pool PoolConfig) (*sql.DB, error) {
	driver, dsn := "sqlite", sqliteDSN(databaseURL)
	if IsPostgres(databaseURL) {
		driver, dsn = "postgres", databaseURL
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == "sqlite" {
		if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return db, nil
}

func sqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)", path, busyTimeout)
}
