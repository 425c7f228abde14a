package services

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"visa-route-checker/internal/domain"
)

func TestEvaluateRouteScenarios(t *testing.T) {
	tests := []struct {
		name      string
		route     domain.Route
		passport  domain.PassportCountry
		hasUSVisa bool
		want      []string
	}{
		{
			name:     "istanbul layover",
			route:    domain.Route{"BOM", "IST", "JFK"},
			passport: domain.PassportIndia,
			want:     []string{"Turkish transit visa required at IST"},
		},
		{
			name:     "dubai is not watched",
			route:    domain.Route{"BOM", "DXB", "JFK"},
			passport: domain.PassportIndia,
		},
		{
			name:     "reasons follow visiting order",
			route:    domain.Route{"BOM", "CDG", "AMS", "JFK"},
			passport: domain.PassportIndia,
			want:     []string{"Schengen visa required at CDG", "Schengen visa required at AMS"},
		},
		{
			name:     "final destination is checked",
			route:    domain.Route{"JFK", "FRA"},
			passport: domain.PassportIndia,
			want:     []string{"Schengen visa required at FRA"},
		},
		{
			name:     "origin is never checked",
			route:    domain.Route{"IST", "JFK"},
			passport: domain.PassportIndia,
		},
		{
			name:     "passport outside the rule",
			route:    domain.Route{"MEX", "CDG", "JFK"},
			passport: domain.PassportMexico,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateRoute(tt.route, tt.passport, tt.hasUSVisa)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tt.want) == 0 {
				if !got.Safe() {
					t.Fatalf("expected safe verdict, got %v", got.Reasons)
				}
				return
			}
			if !reflect.DeepEqual(got.Reasons, tt.want) {
				t.Fatalf("reasons = %v, want %v", got.Reasons, tt.want)
			}
		})
	}
}

func TestEvaluateRouteUnwatchedIsAlwaysSafe(t *testing.T) {
	route := domain.Route{"BOM", "DXB", "DOH", "SIN", "JFK"}
	for _, p := range domain.Passports() {
		for _, visa := range []bool{false, true} {
			v, err := EvaluateRoute(route, p, visa)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !v.Safe() {
				t.Fatalf("passport=%s visa=%v: expected safe, got %v", p, visa, v.Reasons)
			}
		}
	}
}

func TestEvaluateRouteCDGForIndianPassport(t *testing.T) {
	routes := []domain.Route{
		{"BOM", "CDG"},
		{"DEL", "CDG", "JFK"},
		{"BLR", "DXB", "CDG", "YYZ"},
	}
	for _, r := range routes {
		v, err := EvaluateRoute(r, domain.PassportIndia, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Safe() {
			t.Fatalf("route %s: expected unsafe", r)
		}
		found := false
		for _, reason := range v.Reasons {
			if strings.Contains(reason, "Schengen") && strings.Contains(reason, "CDG") {
				found = true
			}
		}
		if !found {
			t.Fatalf("route %s: no Schengen reason for CDG in %v", r, v.Reasons)
		}
	}
}

// Holding a US visa waives every watched hub.
func TestEvaluateRouteUSVisaWaivesEverything(t *testing.T) {
	route := domain.Route{"BOM", "IST", "AMS", "CDG", "FRA", "LHR", "JFK"}
	for _, p := range domain.Passports() {
		v, err := EvaluateRoute(route, p, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.Safe() {
			t.Fatalf("passport=%s: expected safe with US visa, got %v", p, v.Reasons)
		}
	}
}

func TestEvaluateRouteIsIdempotent(t *testing.T) {
	route := domain.Route{"BOM", "IST", "CDG", "JFK"}
	first, err := EvaluateRoute(route, domain.PassportIndia, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := EvaluateRoute(route, domain.PassportIndia, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("verdicts differ: %v vs %v", first, second)
	}
}

func TestEvaluateRouteEmpty(t *testing.T) {
	_, err := EvaluateRoute(nil, domain.PassportIndia, false)
	if !errors.Is(err, domain.ErrMalformedItinerary) {
		t.Fatalf("expected ErrMalformedItinerary, got %v", err)
	}
}

func TestRiskReasonFor(t *testing.T) {
	for hub := range watchedHubs {
		if _, ok := RiskReasonFor(hub, domain.PassportIndia, false); !ok {
			t.Errorf("%s: expected a reason for an Indian passport", hub)
		}
		if _, ok := RiskReasonFor(hub, domain.PassportIndia, true); ok {
			t.Errorf("%s: US visa should waive the rule", hub)
		}
		if _, ok := RiskReasonFor(hub, domain.PassportGermany, false); ok {
			t.Errorf("%s: German passport should not be flagged", hub)
		}
	}

	if _, ok := RiskReasonFor("DXB", domain.PassportIndia, false); ok {
		t.Error("DXB is not a watched hub")
	}
}
