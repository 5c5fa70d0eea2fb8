package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS extract_jobs (
	id                 TEXT PRIMARY KEY,
	source             TEXT NOT NULL,
	status             TEXT NOT NULL,
	overall_confidence REAL NOT NULL DEFAULT 0,
	field_count        INTEGER NOT NULL DEFAULT 0,
	issue_count        INTEGER NOT NULL DEFAULT 0,
	error_message      TEXT NOT NULL DEFAULT '',
	started_at         TIMESTAMP NOT NULL,
	finished_at        TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_extract_jobs_started_at ON extract_jobs (started_at);
`

// Open opens (or creates) the sqlite job-history store and applies the schema.
// Pass ":memory:" for an in-memory store.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dsn := path
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open job store: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply job store schema: %w", err)
	}
	logger.Info("job store ready", "path", path)
	return db, nil
}

// HealthCheck pings the store to catch path or lock issues early.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}
