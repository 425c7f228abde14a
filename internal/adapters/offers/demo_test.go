package offers

import (
	"context"
	"testing"
	"visa-route-checker/internal/domain"
	"visa-route-checker/internal/ports"
)

func TestDemoOffersFollowQuery(t *testing.T) {
	got, err := DemoOffers().FetchOffers(context.Background(), ports.OfferQuery{Origin: "LHR", Destination: "SFO", MaxResults: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 offers, got %d", len(got))
	}

	wantHubs := []domain.AirportCode{"DXB", "IST", "CDG"}
	for i, o := range got {
		segs := o.Itineraries[0].Segments
		if len(segs) != 2 || segs[0].Departure != "LHR" || segs[0].Arrival != wantHubs[i] || segs[1].Arrival != "SFO" {
			t.Errorf("offer %d segments = %+v", i+1, segs)
		}
	}
}

func TestDemoOffersSkipHubAtEndpoint(t *testing.T) {
	got, err := DemoOffers().FetchOffers(context.Background(), ports.OfferQuery{Origin: "IST", Destination: "JFK", MaxResults: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(got))
	}
	if segs := got[1].Itineraries[0].Segments; len(segs) != 1 || segs[0].Departure != "IST" || segs[0].Arrival != "JFK" {
		t.Errorf("offer 2 should fly direct, got %+v", segs)
	}
}
