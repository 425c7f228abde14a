package offers

import (
	"context"
	"sync"
	"visa-route-checker/internal/domain"
	"visa-route-checker/internal/ports"
)

// MockOfferProvider returns canned offers for tests.
type MockOfferProvider struct {
	mu     sync.Mutex
	Offers []domain.FlightOffer
	Err    error
	Calls  []ports.OfferQuery
}

func NewMockOfferProvider(offers ...domain.FlightOffer) *MockOfferProvider {
	return &MockOfferProvider{Offers: offers}
}

// MockOffer builds an offer with one itinerary per route, each route given as
// the airport codes visited.
func MockOffer(id string, routes ...[]string) domain.FlightOffer {
	offer := domain.FlightOffer{ID: id}
	for _, codes := range routes {
		var it domain.Itinerary
		for i := 0; i+1 < len(codes); i++ {
			it.Segments = append(it.Segments, domain.NewSegment(codes[i], codes[i+1]))
		}
		offer.Itineraries = append(offer.Itineraries, it)
	}
	return offer
}

func (p *MockOfferProvider) FetchOffers(ctx context.Context, q ports.OfferQuery) ([]domain.FlightOffer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Calls = append(p.Calls, q)
	if p.Err != nil {
		return nil, p.Err
	}

	out := p.Offers
	if q.MaxResults > 0 && len(out) > q.MaxResults {
		out = out[:q.MaxResults]
	}
	return out, nil
}
