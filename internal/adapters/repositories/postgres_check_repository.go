package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"visa-route-checker/internal/domain"
	"visa-route-checker/internal/platform/obs"
	"visa-route-checker/internal/ports"
)

// Postgres-backed implementation of the CheckRecorder port.
type PostgresCheckRepository struct{ DB *sql.DB }

func NewPostgresCheckRepository(db *sql.DB) *PostgresCheckRepository {
	return &PostgresCheckRepository{DB: db}
}

var _ ports.CheckRecorder = (*PostgresCheckRepository)(nil)

// Store one search and every route it evaluated in a single transaction.
func (p *PostgresCheckRepository) RecordCheck(ctx context.Context, res domain.CheckResult) (err error) {
	defer obs.Time(ctx, "checks.RecordCheck")(&err)

	if p.DB == nil {
		return errors.New("check repository: DB is nil")
	}
	if res.SearchID == "" {
		return errors.New("record check: search id must not be empty")
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record check: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := res.Query
	_, err = tx.ExecContext(ctx, `
	INSERT INTO searches (
		search_id, origin, destination, departure_date, passport_country,
		has_us_visa, offers_checked, unsafe_routes, skipped_offers, checked_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`,
		res.SearchID,
		q.Origin.String(),
		q.Destination.String(),
		q.DepartureDate,
		q.Passport.String(),
		q.HasUSVisa,
		len(res.Offers),
		res.UnsafeRoutes(),
		res.Skipped,
		res.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("record check: insert search %s: %w", res.SearchID, err)
	}

	for _, o := range res.Offers {
		for i, rc := range o.Routes {
			reasons := rc.Verdict.Reasons
			if reasons == nil {
				reasons = []string{}
			}
			encoded, err := json.Marshal(reasons)
			if err != nil {
				return fmt.Errorf("record check: encode reasons: %w", err)
			}

			_, err = tx.ExecContext(ctx, `
			INSERT INTO route_checks (
				search_id, option_number, itinerary_number, offer_id, route, safe, reasons
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
			`,
				res.SearchID, o.Option, i+1, o.OfferID, rc.Route.String(), rc.Verdict.Safe(), string(encoded),
			)
			if err != nil {
				return fmt.Errorf("record check: insert route option=%d itinerary=%d: %w", o.Option, i+1, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record check: commit tx: %w", err)
	}

	return nil
}

// Return the latest searches, newest first.
func (p *PostgresCheckRepository) ListRecent(ctx context.Context, limit int) ([]domain.CheckSummary, error) {
	if p.DB == nil {
		return nil, errors.New("check repository: DB is nil")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := p.DB.QueryContext(ctx, `
	SELECT
		search_id, origin, destination, departure_date, passport_country,
		has_us_visa, offers_checked, unsafe_routes, skipped_offers, checked_at
	FROM searches
	ORDER BY checked_at DESC
	LIMIT $1;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list checks: query searches table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CheckSummary, 0, limit)
	for rows.Next() {
		var (
			s                         domain.CheckSummary
			origin, dest, passportRaw string
		)
		err := rows.Scan(
			&s.SearchID, &origin, &dest, &s.DepartureDate, &passportRaw,
			&s.HasUSVisa, &s.OffersChecked, &s.UnsafeRoutes, &s.Skipped, &s.CheckedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list checks: scan row: %w", err)
		}
		s.Origin = domain.AirportCode(origin)
		s.Destination = domain.AirportCode(dest)
		s.Passport = domain.PassportCountry(passportRaw)
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list checks: row iteration: %w", err)
	}

	return out, nil
}
