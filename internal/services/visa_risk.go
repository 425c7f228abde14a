package services

import (
	"fmt"
	"visa-route-checker/internal/domain"
)

// EvaluateRoute checks every stop after the origin against the rule table.
//
// The origin is skipped because a traveler never transits their departure
// airport. The final destination is checked like any layover. Reasons keep
// the order in which the stops are visited.
func EvaluateRoute(route domain.Route, passport domain.PassportCountry, hasUSVisa bool) (domain.RouteVerdict, error) {
	if len(route) == 0 {
		return domain.RouteVerdict{}, fmt.Errorf("evaluate route: empty route: %w", domain.ErrMalformedItinerary)
	}

	var reasons []string
	for _, stop := range route[1:] {
		if reason, ok := RiskReasonFor(stop, passport, hasUSVisa); ok {
			reasons = append(reasons, reason)
		}
	}

	if len(reasons) == 0 {
		return domain.SafeVerdict(), nil
	}
	return domain.UnsafeVerdict(reasons...), nil
}
