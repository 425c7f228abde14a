package offers

import (
	"context"
	"fmt"
	"visa-route-checker/internal/domain"
	"visa-route-checker/internal/ports"
)

// Connections offered by the demo provider: a safe hub, a Turkish transit and
// a Schengen hub.
var demoHubs = []string{"DXB", "IST", "CDG"}

// DemoOfferProvider answers any query with one option per demo hub between the
// requested airports. It is used when no Amadeus credentials are configured.
type DemoOfferProvider struct{}

func DemoOffers() *DemoOfferProvider { return &DemoOfferProvider{} }

func (DemoOfferProvider) FetchOffers(ctx context.Context, q ports.OfferQuery) ([]domain.FlightOffer, error) {
	from, to := q.Origin.String(), q.Destination.String()

	out := make([]domain.FlightOffer, 0, len(demoHubs))
	for i, hub := range demoHubs {
		stops := []string{from, hub, to}
		if hub == from || hub == to {
			stops = []string{from, to}
		}
		out = append(out, MockOffer(fmt.Sprintf("demo-%d", i+1), stops))
	}

	if q.MaxResults > 0 && len(out) > q.MaxResults {
		out = out[:q.MaxResults]
	}
	return out, nil
}
