// Package sanitizer normalizes user input before it is parsed or validated.
// It focuses on the inconsistencies found in Egyptian user input: Arabic-Indic
// digits, Arabic diacritics and letter variants, and digits grouped with
// spaces, dashes or parentheses.
//
// # Features
//
//   - Arabic-Indic and Extended Arabic-Indic digit conversion to ASCII
//   - Diacritic (tashkeel) removal via Unicode normalization
//   - Alef, hamza, alef maqsura and taa marbuta unification
//   - Separator stripping for card numbers, national IDs and phone numbers
//   - Whitespace and control character cleanup
//   - Struct sanitization via `sanitize` tags with a pluggable registry
//
// # Identifier Input
//
//	import "github.com/dmitrymomot/egyptid/core/sanitizer"
//
//	sanitizer.NormalizeNumeric("٢٩٠ ٠١٠١ ٠١٠٠ ٠١٥") // "29001010100015"
//	sanitizer.NormalizeNumeric("4111-1111 1111-1111") // "4111111111111111"
//
// NormalizeNumeric keeps letters and symbols it does not recognize as separators
// so that downstream parsers can still reject malformed input:
//
//	s := sanitizer.NormalizeNumeric("12a4") // "12a4"
//	sanitizer.IsASCIIDigits(s)             // false
//
// # Arabic Text
//
//	sanitizer.NormalizeDigits("٠١٠")       // "010"
//	sanitizer.RemoveDiacritics("مُحَمَّد")   // "محمد"
//	sanitizer.UnifyArabicLetters("أحمد")   // "احمد"
//	sanitizer.NormalizeArabic(" الجيزة ٢١ ") // "الجيزه 21"
//
// # Struct Tags
//
// Sanitizers are applied left to right. Nested structs, pointers and string
// slices are handled; unexported fields are skipped.
//
//	type Applicant struct {
//		Name       string `sanitize:"name,max:100"`
//		NationalID string `sanitize:"national_id"`
//		Mobile     string `sanitize:"mobile"`
//		Card       string `sanitize:"card"`
//	}
//
//	if err := sanitizer.SanitizeStruct(&applicant); err != nil {
//		return err
//	}
//
// Custom sanitizers can be registered at startup:
//
//	sanitizer.RegisterSanitizer("no_plus", func(s string) string {
//		return strings.TrimPrefix(s, "+")
//	})
//
// All functions are safe for concurrent use. The registry is guarded by a
// read-write mutex.
package sanitizer
