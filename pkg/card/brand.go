package card

import (
	"strconv"
	"strings"
)

// Brand is a card scheme detected from the issuer identification number.
type Brand string

const (
	Meeza      Brand = "Meeza"
	Visa       Brand = "Visa"
	Mastercard Brand = "Mastercard"
	Amex       Brand = "American Express"
	Unknown    Brand = "Unknown"
)

// meezaPrefixes are the IINs of Egypt's domestic card scheme.
var meezaPrefixes = []string{"507803", "507808", "507809", "507810"}

// DetectBrand identifies the scheme of a digit-only card number.
// Meeza is checked first because its IINs are more specific than the others.
func DetectBrand(pan string) Brand {
	for _, p := range meezaPrefixes {
		if strings.HasPrefix(pan, p) {
			return Meeza
		}
	}

	switch {
	case strings.HasPrefix(pan, "4"):
		return Visa
	case strings.HasPrefix(pan, "34"), strings.HasPrefix(pan, "37"):
		return Amex
	case inRange(pan, 2, 51, 55), inRange(pan, 4, 2221, 2720):
		return Mastercard
	}
	return Unknown
}

// inRange reports whether the first n digits of pan form a number within [lo, hi].
func inRange(pan string, n, lo, hi int) bool {
	if len(pan) < n {
		return false
	}
	v, err := strconv.Atoi(pan[:n])
	if err != nil {
		return false
	}
	return v >= lo && v <= hi
}
