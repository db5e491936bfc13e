package kernel

import (
	"fmt"

	"parcellocker/internal/pkg/errs"
)

// Country is the closed set of countries the platform operates in. It is
// shared between accounts and bloqs: a rent is served by a bloq in the
// requesting user's country. Values outside the enumerated set must be
// rejected before reaching the core.
type Country int

const (
	// CountryUnknown catches uninitialized Country values.
	CountryUnknown Country = iota
	Portugal
	Spain
	France
	Netherlands
	Poland
)

func getCountryStrings() map[Country]string {
	return map[Country]string{
		Portugal:    "PORTUGAL",
		Spain:       "SPAIN",
		France:      "FRANCE",
		Netherlands: "NETHERLANDS",
		Poland:      "POLAND",
	}
}

// CountryFromString parses the wire representation of a country.
func CountryFromString(s string) (Country, error) {
	for country, str := range getCountryStrings() {
		if str == s {
			return country, nil
		}
	}
	return CountryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"country", fmt.Errorf("%q is not a supported country", s))
}

// String returns the wire representation, or "UNKNOWN" for invalid values.
func (c Country) String() string {
	if str, ok := getCountryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects CountryUnknown and any value outside the closed set.
func (c Country) Validate() error {
	if _, ok := getCountryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"country", fmt.Errorf("%d is not a valid country", c))
	}
	return nil
}
