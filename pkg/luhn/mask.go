package luhn

import "strings"

// Mask hides all but the first six and last four digits of a card number,
// the maximum PCI DSS allows to be displayed. Numbers of ten digits or fewer
// are fully masked.
func Mask(pan string) string {
	n := len(pan)
	if n <= 10 {
		return strings.Repeat("*", n)
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(pan[:6])
	b.WriteString(strings.Repeat("*", n-10))
	b.WriteString(pan[n-4:])
	return b.String()
}
