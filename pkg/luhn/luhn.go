package luhn

import "strings"

// separatorReplacer removes the separators tolerated in loosely formatted input.
var separatorReplacer = strings.NewReplacer(" ", "", "-", "")

// sanitize strips spaces and dashes and trims what is left.
func sanitize(s string) string {
	return strings.TrimSpace(separatorReplacer.Replace(s))
}

// isDigits reports whether s is non-empty and contains only ASCII digits.
func isDigits(s string) bool {
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

// process returns the contribution of a digit to the sum.
// A doubled digit above 9 is reduced by 9, which equals the sum of its two decimal digits.
func process(digit int, double bool) int {
	if !double {
		return digit
	}
	digit *= 2
	if digit > 9 {
		digit -= 9
	}
	return digit
}

// sum walks the digits right to left and returns the pre-modulo total.
// The rightmost digit is never doubled.
func sum(digits string) int {
	total := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		total += process(int(digits[i]-'0'), double)
		double = !double
	}
	return total
}

// Validate reports whether s, including its trailing check digit, passes the
// Luhn check. Spaces and dashes are ignored. Empty or non-digit input is invalid.
func Validate(s string) bool {
	digits := sanitize(s)
	if !isDigits(digits) {
		return false
	}
	return sum(digits)%10 == 0
}

// Checksum returns the Luhn checksum (0-9) of a digit-only string.
// Zero means the string is a valid number including its check digit.
// The input is not sanitized.
func Checksum(digits string) (int, error) {
	if !isDigits(digits) {
		return 0, invalidArgument("digits", "must be a non-empty string of ASCII digits")
	}
	return sum(digits) % 10, nil
}

// CheckDigit returns the digit that, appended to partial, makes it pass Validate.
// Spaces and dashes in partial are ignored.
func CheckDigit(partial string) (int, error) {
	digits := sanitize(partial)
	if !isDigits(digits) {
		return 0, invalidArgument("partial", "must contain at least one digit and digits only")
	}

	c, err := Checksum(digits + "0")
	if err != nil {
		return 0, err
	}
	if c == 0 {
		return 0, nil
	}
	return 10 - c, nil
}
