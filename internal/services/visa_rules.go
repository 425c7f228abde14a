package services

import "visa-route-checker/internal/domain"

// visaRule flags arrival at a hub for passports that need a transit or
// Schengen visa there.
type visaRule struct {
	reason      string
	requiredFor map[domain.PassportCountry]struct{}
}

func passports(ps ...domain.PassportCountry) map[domain.PassportCountry]struct{} {
	m := make(map[domain.PassportCountry]struct{}, len(ps))
	for _, p := range ps {
		m[p] = struct{}{}
	}
	return m
}

// Illustrative rules only. The table is fixed at build time and never mutated.
var watchedHubs = map[domain.AirportCode]visaRule{
	"IST": {reason: "Turkish transit visa required at IST", requiredFor: passports(domain.PassportIndia)},
	"AMS": {reason: "Schengen visa required at AMS", requiredFor: passports(domain.PassportIndia)},
	"CDG": {reason: "Schengen visa required at CDG", requiredFor: passports(domain.PassportIndia)},
	"FRA": {reason: "Schengen visa required at FRA", requiredFor: passports(domain.PassportIndia)},
	"LHR": {reason: "UK Direct Airside Transit Visa required at LHR", requiredFor: passports(domain.PassportIndia)},
}

// RiskReasonFor returns the reason a traveler would need a visa at airport.
//
// A valid US visa waives every watched hub. This is a simplification of real
// transit rules, which grant such waivers hub by hub.
func RiskReasonFor(airport domain.AirportCode, passport domain.PassportCountry, hasUSVisa bool) (string, bool) {
	if hasUSVisa {
		return "", false
	}

	rule, ok := watchedHubs[airport]
	if !ok {
		return "", false
	}

	if _, applies := rule.requiredFor[passport]; !applies {
		return "", false
	}

	return rule.reason, true
}
