package offers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"visa-route-checker/internal/domain"
	"visa-route-checker/internal/platform/obs"
	"visa-route-checker/internal/ports"
)

const DefaultAmadeusBaseURL = "https://test.api.amadeus.com"

// AmadeusOfferProvider implements FlightOfferProvider using the Amadeus
// self-service API.
//
// Every FetchOffers call obtains a fresh bearer token with the client
// credentials grant and then issues a single flight-offers search. Nothing is
// cached and no request is retried.
//
// The provider is safe for concurrent use.
type AmadeusOfferProvider struct {
	session      *http.Client
	clientID     string
	clientSecret string
	baseURL      string
}

type Option func(*AmadeusOfferProvider)

// WithBaseURL points the provider at another Amadeus environment (or a test server).
func WithBaseURL(u string) Option {
	return func(a *AmadeusOfferProvider) {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			a.baseURL = u
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(a *AmadeusOfferProvider) {
		if c != nil {
			a.session = c
		}
	}
}

func NewAmadeusOfferProvider(clientID, clientSecret string, opts ...Option) (*AmadeusOfferProvider, error) {
	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(clientSecret) == "" {
		return nil, errors.New("amadeus client id and secret must be non-empty")
	}

	provider := &AmadeusOfferProvider{
		session:      &http.Client{Timeout: 20 * time.Second},
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      DefaultAmadeusBaseURL,
	}
	for _, opt := range opts {
		opt(provider)
	}

	return provider, nil
}

var _ ports.FlightOfferProvider = (*AmadeusOfferProvider)(nil)

// FetchOffers authenticates and returns up to q.MaxResults offers.
func (a *AmadeusOfferProvider) FetchOffers(
	ctx context.Context,
	q ports.OfferQuery,
) (_ []domain.FlightOffer, err error) {
	defer obs.Time(ctx, "amadeus.FetchOffers")(&err)

	if q.Origin.IsZero() || q.Destination.IsZero() {
		return nil, &domain.SearchError{Err: errors.New("origin and destination must be non-empty")}
	}

	token, err := a.fetchToken(ctx)
	if err != nil {
		return nil, &domain.AuthError{Err: err}
	}

	return a.searchOffers(ctx, token, q)
}
