// Package app holds the composition shared by the commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"visa-route-checker/internal/adapters/offers"
	"visa-route-checker/internal/adapters/repositories"
	"visa-route-checker/internal/config"
	"visa-route-checker/internal/platform/db"
	"visa-route-checker/internal/ports"
)

const (
	SourceAmadeus = "amadeus"
	SourceDemo    = "demo"
)

var ErrMissingCredentials = errors.New("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required (or use demo mode)")

// NewOfferProvider returns the Amadeus provider, or the canned demo offers
// when demo is set. The returned string names the source.
func NewOfferProvider(cfg *config.Config, demo bool) (ports.FlightOfferProvider, string, error) {
	if demo {
		return offers.DemoOffers(), SourceDemo, nil
	}
	if !cfg.Amadeus.Configured() {
		return nil, "", ErrMissingCredentials
	}

	p, err := offers.NewAmadeusOfferProvider(
		cfg.Amadeus.ClientID,
		cfg.Amadeus.ClientSecret,
		offers.WithBaseURL(cfg.Amadeus.BaseURL),
	)
	if err != nil {
		return nil, "", fmt.Errorf("new offer provider: %w", err)
	}
	return p, SourceAmadeus, nil
}

// OpenRecorder connects the audit log when DATABASE_URL is set. With no
// database configured it returns a nil recorder and a no-op close.
func OpenRecorder(ctx context.Context, cfg *config.Config) (ports.CheckRecorder, func() error, error) {
	if cfg.DatabaseURL == "" {
		return nil, func() error { return nil }, nil
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open recorder: %w", err)
	}

	if err := repositories.InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open recorder: %w", err)
	}

	return repositories.NewPostgresCheckRepository(conn), conn.Close, nil
}
