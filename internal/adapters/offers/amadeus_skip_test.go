package offers

import (
	"context"
	"net/http"
	"testing"
	"visa-route-checker/internal/domain"
	"visa-route-checker/internal/services"
)

// The second offer has a segment with no arrival code.
const offersMissingArrivalFixture = `{
  "data": [
    {"id": "1", "itineraries": [{"segments": [
      {"departure": {"iataCode": "BOM"}, "arrival": {"iataCode": "IST"}},
      {"departure": {"iataCode": "IST"}, "arrival": {"iataCode": "JFK"}}
    ]}]},
    {"id": "2", "itineraries": [{"segments": [
      {"departure": {"iataCode": "BOM"}, "arrival": {}}
    ]}]},
    {"id": "3", "itineraries": [{"segments": [
      {"departure": {"iataCode": "BOM"}, "arrival": {"iataCode": "JFK"}}
    ]}]}
  ]
}`

func TestAmadeusMissingArrivalSkipsOffer(t *testing.T) {
	f := &fakeAmadeus{
		tokenStatus:  http.StatusOK,
		tokenBody:    `{"access_token":"tok"}`,
		offersStatus: http.StatusOK,
		offersBody:   offersMissingArrivalFixture,
	}
	p := newTestProvider(t, f)

	res, err := services.CheckRoutes(context.Background(), services.CheckRequest{
		Origin:      "BOM",
		Destination: "JFK",
		Passport:    domain.PassportIndia,
	}, p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1", res.Skipped)
	}
	if len(res.Offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(res.Offers))
	}
	if res.Offers[0].OfferID != "1" || res.Offers[1].OfferID != "3" {
		t.Fatalf("offers = %s, %s; want 1 and 3", res.Offers[0].OfferID, res.Offers[1].OfferID)
	}
	if res.Offers[0].Safe() || !res.Offers[1].Safe() {
		t.Errorf("want IST offer flagged and direct offer safe")
	}
}
