package domain

import "time"

// Inputs of one visa-safety search, already normalized.
type CheckQuery struct {
	Origin        AirportCode
	Destination   AirportCode
	DepartureDate time.Time
	Passport      PassportCountry
	HasUSVisa     bool
	MaxResults    int
}

// A route paired with its verdict.
type RouteCheck struct {
	Route   Route
	Verdict RouteVerdict
}

// Verdicts for every itinerary of one offer. Option is the 1-based position
// of the offer in the search response.
type OfferCheck struct {
	Option  int
	OfferID string
	Routes  []RouteCheck
}

// Safe reports whether every itinerary of the offer is visa-safe.
func (o OfferCheck) Safe() bool {
	for _, r := range o.Routes {
		if !r.Verdict.Safe() {
			return false
		}
	}
	return true
}

// Result of one search. Skipped counts offers dropped because an itinerary
// could not be turned into a route.
type CheckResult struct {
	SearchID  string
	Query     CheckQuery
	CheckedAt time.Time
	Offers    []OfferCheck
	Skipped   int
}

// UnsafeRoutes counts routes with at least one flagged stop.
func (c CheckResult) UnsafeRoutes() int {
	n := 0
	for _, o := range c.Offers {
		for _, r := range o.Routes {
			if !r.Verdict.Safe() {
				n++
			}
		}
	}
	return n
}

// Summary row of a past search, as kept by the audit log.
type CheckSummary struct {
	SearchID      string
	Origin        AirportCode
	Destination   AirportCode
	DepartureDate time.Time
	Passport      PassportCountry
	HasUSVisa     bool
	OffersChecked int
	UnsafeRoutes  int
	Skipped       int
	CheckedAt     time.Time
}
