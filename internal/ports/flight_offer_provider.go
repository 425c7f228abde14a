package ports

import (
	"context"
	"time"
	"visa-route-checker/internal/domain"
)

// Parameters of a one-way, single-adult offer search.
type OfferQuery struct {
	Origin        domain.AirportCode
	Destination   domain.AirportCode
	DepartureDate time.Time
	MaxResults    int
}

// Contract for retrieving flight offers from an external search API.
type FlightOfferProvider interface {
	// Return up to q.MaxResults offers. Implementations report credential
	// failures as *domain.AuthError and search failures as *domain.SearchError.
	FetchOffers(ctx context.Context, q OfferQuery) ([]domain.FlightOffer, error)
}
