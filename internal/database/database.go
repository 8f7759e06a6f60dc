package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func NewConnection(ctx context.Context, connectStr string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	logger.Debug("database connection established")
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS conversions (
	id          UUID PRIMARY KEY,
	input_path  TEXT NOT NULL,
	output_path TEXT NOT NULL,
	title       TEXT NOT NULL DEFAULT '',
	slide_count INTEGER NOT NULL DEFAULT 0,
	summary     TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	started_at  TIMESTAMPTZ NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS conversion_slides (
	conversion_id UUID NOT NULL REFERENCES conversions(id) ON DELETE CASCADE,
	slide_number  INTEGER NOT NULL,
	title         TEXT NOT NULL DEFAULT '',
	content       TEXT[] NOT NULL DEFAULT '{}',
	PRIMARY KEY (conversion_id, slide_number)
);

CREATE INDEX IF NOT EXISTS conversions_started_at_idx ON conversions (started_at DESC);
`

// EnsureSchema creates the conversion log tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
