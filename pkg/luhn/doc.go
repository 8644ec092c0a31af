// Package luhn implements the Modulus-10 (Luhn) checksum used by payment card
// numbers and many other numeric identifiers.
//
// The package validates complete numbers, computes check digits for partial
// numbers, generates checksum-valid test numbers and produces a per-digit trace
// of the calculation for display or debugging.
//
// # Input Handling
//
// Validate, CheckDigit and Trace accept loosely formatted input: spaces and
// dashes are removed and the result is trimmed before processing. Checksum is
// strict and expects an already sanitized digit string. Inputs containing
// Arabic-Indic digits must be normalized by the caller first (see
// core/sanitizer.NormalizeNumeric).
//
//	luhn.Validate("4111 1111 1111 1111") // true
//	luhn.Validate("4111111111111112")    // false
//
//	d, err := luhn.CheckDigit("411111111111111")
//	// d == 1
//
//	sum, err := luhn.Checksum("4111111111111111")
//	// sum == 0
//
// # Test Numbers
//
// GenerateTestNumber fills the positions after an issuer prefix with random
// digits and appends the matching check digit:
//
//	pan, err := luhn.GenerateTestNumber("507803", luhn.DefaultLength)
//	// len(pan) == 16, luhn.Validate(pan) == true
//
// Generated numbers are for tests only and must never be treated as real
// card numbers.
//
// # Tracing
//
// Trace reports every digit's contribution in left-to-right order:
//
//	res := luhn.Trace("79927398713")
//	for _, s := range res.Steps {
//		fmt.Println(s.Position, s.Digit, s.Doubled, s.Value, s.RunningSum)
//	}
//	// res.TotalSum == 70, res.IsValid == true, res.CheckDigit == 3
//
// # Errors
//
// Contract violations return an *ArgumentError naming the offending parameter.
// It unwraps to ErrInvalidArgument or ErrOutOfRange:
//
//	if _, err := luhn.Checksum("12a4"); errors.Is(err, luhn.ErrInvalidArgument) {
//		// fix the call site
//	}
//
// All functions are safe for concurrent use.
package luhn
