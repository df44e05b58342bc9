package postgres

import (
	"context"
	"log/slog"
)

const createTodosTable = `
CREATE TABLE IF NOT EXISTS todos (
	id          SERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	completed   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the todos table if it does not exist yet. A failure
// is logged and swallowed: the process must come up even when the store is
// down, because the health and fault-injection endpoints have to keep
// working while tooling repairs the database.
func EnsureSchema(ctx context.Context, conn *Connector, logger *slog.Logger) {
	db, err := conn.Acquire(ctx)
	if err != nil {
		logger.Warn("schema init skipped, store unreachable", "error", err)
		return
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createTodosTable); err != nil {
		logger.Warn("schema init failed", "error", err)
		return
	}

	logger.Info("schema ready")
}
