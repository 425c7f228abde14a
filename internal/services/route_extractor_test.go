package services

import (
	"errors"
	"testing"
	"visa-route-checker/internal/domain"
)

func TestExtractRouteLengthIsSegmentsPlusOne(t *testing.T) {
	codes := []string{"BOM", "DXB", "IST", "FRA", "JFK"}

	for n := 1; n < len(codes); n++ {
		var it domain.Itinerary
		for i := 0; i < n; i++ {
			it.Segments = append(it.Segments, domain.NewSegment(codes[i], codes[i+1]))
		}

		route, err := ExtractRoute(it)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if len(route) != n+1 {
			t.Fatalf("n=%d: route length = %d, want %d", n, len(route), n+1)
		}
		for i, c := range route {
			if string(c) != codes[i] {
				t.Fatalf("n=%d: stop %d = %q, want %q", n, i, c, codes[i])
			}
		}
	}
}

func TestExtractRouteUsesLastArrival(t *testing.T) {
	// Legs that do not connect still yield every departure plus the final arrival.
	it := domain.Itinerary{Segments: []domain.Segment{
		domain.NewSegment("bom", "ist"),
		domain.NewSegment("saw", "jfk"),
	}}

	route, err := ExtractRoute(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := route.String(), "BOM → SAW → JFK"; got != want {
		t.Fatalf("route = %q, want %q", got, want)
	}
}

func TestExtractRouteMalformed(t *testing.T) {
	tests := []struct {
		name string
		it   domain.Itinerary
	}{
		{name: "no segments", it: domain.Itinerary{}},
		{name: "missing departure", it: domain.Itinerary{Segments: []domain.Segment{domain.NewSegment(" ", "JFK")}}},
		{name: "missing arrival", it: domain.Itinerary{Segments: []domain.Segment{
			domain.NewSegment("BOM", "IST"),
			domain.NewSegment("IST", ""),
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractRoute(tt.it)
			if !errors.Is(err, domain.ErrMalformedItinerary) {
				t.Fatalf("expected ErrMalformedItinerary, got %v", err)
			}
		})
	}
}
