package postgres

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
)

// Connector hands out single-use database handles. The service keeps no
// pool: every repository operation acquires its own connection and closes it
// before returning, so a store outage is visible on the very next request
// and remediation demos see one connection per operation.
type Connector struct {
	dsn string
}

func NewConnector(dsn string) *Connector {
	return &Connector{dsn: dsn}
}

// Acquire opens a fresh connection and verifies it with a ping. The caller
// owns the handle and must Close it on every exit path.
func (c *Connector) Acquire(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", c.dsn)
	if err != nil {
		return nil, fmt.Errorf("store unavailable: %w", err)
	}

	// One physical connection per handle; the handle dies with the operation.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store unavailable: %w", err)
	}

	return db, nil
}

// Ping issues a trivial round-trip query. Implements health.Pinger.
func (c *Connector) Ping(ctx context.Context) error {
	db, err := c.Acquire(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var one int
	if err := db.GetContext(ctx, &one, "SELECT 1"); err != nil {
		return fmt.Errorf("store probe failed: %w", err)
	}
	return nil
}
