package luhn

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// DefaultLength is the length of a standard payment card number.
const DefaultLength = 16

var ten = big.NewInt(10)

// GenerateTestNumber returns a Luhn-valid number of totalLength digits that
// starts with prefix. The positions between the prefix and the check digit are
// filled with uniformly random digits.
//
// totalLength must leave room for at least one random digit and the check digit.
// The result is intended for tests and must not be used as a real identifier.
func GenerateTestNumber(prefix string, totalLength int) (string, error) {
	if !isDigits(prefix) {
		return "", invalidArgument("prefix", "must be a non-empty string of ASCII digits")
	}
	if totalLength <= len(prefix)+1 {
		return "", outOfRange("totalLength",
			fmt.Sprintf("must exceed prefix length plus one (%d), got %d", len(prefix)+1, totalLength))
	}

	var b strings.Builder
	b.Grow(totalLength)
	b.WriteString(prefix)

	for range totalLength - len(prefix) - 1 {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("luhn: failed to generate random digit: %w", err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	check, err := CheckDigit(b.String())
	if err != nil {
		return "", err
	}
	b.WriteString(strconv.Itoa(check))

	return b.String(), nil
}
