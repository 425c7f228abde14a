package domain

import (
	"fmt"
	"strings"
)

// Traveler nationality, identified by its ISO 3166 alpha-3 code.
type PassportCountry string

const (
	PassportIndia         PassportCountry = "IND"
	PassportUnitedStates  PassportCountry = "USA"
	PassportMexico        PassportCountry = "MEX"
	PassportBrazil        PassportCountry = "BRA"
	PassportUnitedKingdom PassportCountry = "GBR"
	PassportGermany       PassportCountry = "DEU"
)

var passportNames = map[PassportCountry]string{
	PassportIndia:         "India",
	PassportUnitedStates:  "United States",
	PassportMexico:        "Mexico",
	PassportBrazil:        "Brazil",
	PassportUnitedKingdom: "United Kingdom",
	PassportGermany:       "Germany",
}

// Passports lists the supported countries in menu order.
func Passports() []PassportCountry {
	return []PassportCountry{
		PassportIndia,
		PassportUnitedStates,
		PassportMexico,
		PassportBrazil,
		PassportUnitedKingdom,
		PassportGermany,
	}
}

// ParsePassportCountry accepts an alpha-3 code or an English country name, in any case.
func ParsePassportCountry(s string) (PassportCountry, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("parse passport country: value is empty")
	}

	code := PassportCountry(strings.ToUpper(v))
	if _, ok := passportNames[code]; ok {
		return code, nil
	}

	for c, name := range passportNames {
		if strings.EqualFold(name, v) {
			return c, nil
		}
	}

	return "", fmt.Errorf("parse passport country: unsupported country %q", s)
}

func (p PassportCountry) Name() string {
	if name, ok := passportNames[p]; ok {
		return name
	}
	return string(p)
}

func (p PassportCountry) String() string { return string(p) }

// IsUnitedStates reports whether the traveler is a US citizen; the US visa
// question does not apply to them.
func (p PassportCountry) IsUnitedStates() bool { return p == PassportUnitedStates }
