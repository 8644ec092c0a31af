package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/egyptid/core/i18n"
	"github.com/dmitrymomot/egyptid/core/sanitizer"
)

const (
	// Region is the ISO 3166-1 code used for parsing.
	Region = "EG"

	countryCode   = "20"
	nationalLen   = 11 // 01XXXXXXXXX
	prefixLen     = 3
	intlPrefix    = "00" + countryCode
	trunkPrefix   = "0"
	subscriberLen = nationalLen - len(trunkPrefix)
)

// Number is a validated Egyptian mobile number.
type Number struct {
	National      string
	E164          string
	International string
	Prefix        string
	Carrier       i18n.Text
}

// String returns the E.164 form.
func (n Number) String() string {
	return n.E164
}

// Parse validates raw as an Egyptian mobile number.
func Parse(raw string) (*Number, error) {
	national := toNational(sanitizer.NormalizeNumeric(raw))
	if len(national) != nationalLen || !sanitizer.IsASCIIDigits(national) {
		return nil, ErrInvalidNumber
	}

	num, err := phonenumbers.Parse(national, Region)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}
	if !phonenumbers.IsValidNumberForRegion(num, Region) {
		return nil, ErrInvalidNumber
	}
	if phonenumbers.GetNumberType(num) != phonenumbers.MOBILE {
		return nil, ErrNotMobile
	}

	prefix := national[:prefixLen]
	carrier, ok := Carrier(prefix)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCarrier, prefix)
	}

	return &Number{
		National:      national,
		E164:          phonenumbers.Format(num, phonenumbers.E164),
		International: phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		Prefix:        prefix,
		Carrier:       carrier,
	}, nil
}

// IsMobile reports whether raw is a valid Egyptian mobile number.
func IsMobile(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// toNational rewrites international and bare forms to the local 0-prefixed form.
func toNational(s string) string {
	switch {
	case strings.HasPrefix(s, intlPrefix):
		return trunkPrefix + strings.TrimPrefix(s[len(intlPrefix):], trunkPrefix)
	case strings.HasPrefix(s, countryCode) && len(s) == len(countryCode)+subscriberLen:
		return trunkPrefix + s[len(countryCode):]
	case strings.HasPrefix(s, countryCode+trunkPrefix) && len(s) == len(countryCode)+nationalLen:
		// trunk 0 typed after the country code: +20 010...
		return s[len(countryCode):]
	case strings.HasPrefix(s, "1") && len(s) == subscriberLen:
		return trunkPrefix + s
	}
	return s
}
