package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the audit-log schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSearchesQuery := `
	CREATE TABLE IF NOT EXISTS searches (
		search_id TEXT PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		departure_date DATE NOT NULL,
		passport_country TEXT NOT NULL,
		has_us_visa BOOLEAN NOT NULL,
		offers_checked INTEGER NOT NULL,
		unsafe_routes INTEGER NOT NULL,
		skipped_offers INTEGER NOT NULL,
		checked_at TIMESTAMPTZ NOT NULL
	);
	`

	createRouteChecksQuery := `
	CREATE TABLE IF NOT EXISTS route_checks (
		search_id TEXT NOT NULL REFERENCES searches(search_id) ON DELETE CASCADE,
		option_number INTEGER NOT NULL,
		itinerary_number INTEGER NOT NULL,
		offer_id TEXT NOT NULL,
		route TEXT NOT NULL,
		safe BOOLEAN NOT NULL,
		reasons JSONB NOT NULL,
		PRIMARY KEY (search_id, option_number, itinerary_number)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_searches_checked_at
	ON searches(checked_at DESC);
	`

	statements := []string{
		createSearchesQuery,
		createRouteChecksQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
