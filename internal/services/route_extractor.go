package services

import (
	"fmt"
	"visa-route-checker/internal/domain"
)

// ExtractRoute lists the airports an itinerary visits: the departure of every
// segment followed by the arrival of the last one. A route built from n
// segments always has n+1 stops.
func ExtractRoute(it domain.Itinerary) (domain.Route, error) {
	if len(it.Segments) == 0 {
		return nil, fmt.Errorf("extract route: no segments: %w", domain.ErrMalformedItinerary)
	}

	route := make(domain.Route, 0, len(it.Segments)+1)
	for i, s := range it.Segments {
		if s.Departure.IsZero() || s.Arrival.IsZero() {
			return nil, fmt.Errorf(
				"extract route: segment %d missing departure or arrival code: %w",
				i+1, domain.ErrMalformedItinerary,
			)
		}
		route = append(route, s.Departure)
	}

	return append(route, it.Segments[len(it.Segments)-1].Arrival), nil
}
