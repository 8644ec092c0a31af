package sanitizer

import (
	"strings"
	"unicode"
)

// separators lists punctuation commonly used to group digits in identifiers.
const separators = "-._/()+"

// StripSeparators removes whitespace and grouping punctuation.
func StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune(separators, r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeNumeric prepares a user-typed identifier for digit-only parsing:
// Arabic-Indic digits become ASCII, control characters and separators are removed.
// Letters and other symbols are kept so that callers can still reject them.
func NormalizeNumeric(s string) string {
	return StripSeparators(RemoveControlChars(NormalizeDigits(s)))
}

// IsASCIIDigits reports whether s is non-empty and made only of ASCII digits.
func IsASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
