package domain

import "strings"

// Three-letter airport identifier, always upper case and trimmed.
// Codes are not checked against an IATA registry.
type AirportCode string

// NormalizeAirport trims surrounding whitespace and upper-cases the code.
func NormalizeAirport(s string) AirportCode {
	return AirportCode(strings.ToUpper(strings.TrimSpace(s)))
}

func (a AirportCode) String() string { return string(a) }

// IsZero reports whether the code is empty.
func (a AirportCode) IsZero() bool { return a == "" }

// Valid reports whether the code is exactly three letters A-Z.
func (a AirportCode) Valid() bool {
	if len(a) != 3 {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] < 'A' || a[i] > 'Z' {
			return false
		}
	}
	return true
}
