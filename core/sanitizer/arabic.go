package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	arabicIndicZero   = '\u0660'
	arabicIndicNine   = '\u0669'
	extendedIndicZero = '\u06F0' // Persian and Urdu forms
	extendedIndicNine = '\u06F9'
	tatweel           = '\u0640'
)

// letterReplacer maps Arabic letter variants to the form used for matching.
var letterReplacer = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ٱ", "ا",
	"ى", "ي",
	"ة", "ه",
	"ؤ", "و",
	"ئ", "ي",
)

// NormalizeDigits converts Arabic-Indic and Extended Arabic-Indic digits to ASCII.
// Every other rune is left untouched.
func NormalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= arabicIndicZero && r <= arabicIndicNine:
			return '0' + (r - arabicIndicZero)
		case r >= extendedIndicZero && r <= extendedIndicNine:
			return '0' + (r - extendedIndicZero)
		}
		return r
	}, s)
}

// RemoveDiacritics strips combining marks such as Arabic tashkeel and Latin accents.
// The transformer is built per call because transform chains keep internal state.
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// UnifyArabicLetters folds hamza and alef variants, alef maqsura and taa marbuta
// to a single form and drops tatweel, so that spellings of the same word compare equal.
func UnifyArabicLetters(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == tatweel {
			return -1
		}
		return r
	}, s)
	return letterReplacer.Replace(s)
}

// NormalizeArabic applies digit normalization, diacritic removal and letter unification,
// then collapses whitespace.
func NormalizeArabic(s string) string {
	return RemoveExtraWhitespace(UnifyArabicLetters(RemoveDiacritics(NormalizeDigits(s))))
}
