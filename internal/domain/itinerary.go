package domain

import "strings"

// One directed flight leg.
// Segments are built from API data and never modified afterwards.
type Segment struct {
	Departure AirportCode
	Arrival   AirportCode
}

func NewSegment(departure, arrival string) Segment {
	return Segment{
		Departure: NormalizeAirport(departure),
		Arrival:   NormalizeAirport(arrival),
	}
}

// Represents one directed journey (outbound or return) as an ordered list of legs.
type Itinerary struct {
	Segments []Segment
}

// A single offer returned by the flight search.
// Each itinerary is checked independently.
type FlightOffer struct {
	ID          string
	Itineraries []Itinerary
}

// Ordered airport codes visited by an itinerary, origin first.
type Route []AirportCode

// Origin returns the first stop, or the zero code for an empty route.
func (r Route) Origin() AirportCode {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// String joins the stops with an arrow, e.g. "BOM → IST → JFK".
func (r Route) String() string {
	codes := make([]string, 0, len(r))
	for _, c := range r {
		codes = append(codes, string(c))
	}
	return strings.Join(codes, " → ")
}
