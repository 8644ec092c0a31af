package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/egyptid/core/i18n"
	"github.com/dmitrymomot/egyptid/pkg/card"
	"github.com/dmitrymomot/egyptid/pkg/luhn"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("valid visa with arabic digits", func(t *testing.T) {
		t.Parallel()
		res := card.Check("٤١١١ ١١١١ ١١١١ ١١١١")
		assert.True(t, res.Valid)
		assert.Equal(t, "4111111111111111", res.Number)
		assert.Equal(t, "411111******1111", res.Masked)
		assert.Equal(t, card.Visa, res.Brand)
		assert.True(t, res.Error.IsZero())
	})

	t.Run("valid amex", func(t *testing.T) {
		t.Parallel()
		res := card.Check("3782-822463-10005")
		assert.True(t, res.Valid)
		assert.Equal(t, card.Amex, res.Brand)
	})

	t.Run("generated meeza", func(t *testing.T) {
		t.Parallel()
		pan, err := luhn.GenerateTestNumber("507803", luhn.DefaultLength)
		require.NoError(t, err)

		res := card.Check(pan)
		assert.True(t, res.Valid)
		assert.Equal(t, card.Meeza, res.Brand)
	})

	t.Run("bad checksum", func(t *testing.T) {
		t.Parallel()
		res := card.Check("4111 1111 1111 1112")
		assert.False(t, res.Valid)
		assert.Equal(t, card.MsgChecksum, res.Error)
		assert.Equal(t, "رقم البطاقة غير صحيح", res.Error.In(i18n.Arabic))
		assert.Equal(t, "411111******1112", res.Masked)
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		res := card.Check("79927398713")
		assert.False(t, res.Valid)
		assert.Equal(t, "card number must have 13 to 19 digits", res.Error.English)
		assert.Contains(t, res.Error.Arabic, "13")
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		res := card.Check("  - ")
		assert.False(t, res.Valid)
		assert.Equal(t, card.MsgEmpty, res.Error)
		assert.Empty(t, res.Number)
		assert.Equal(t, card.Unknown, res.Brand)
	})

	t.Run("letters", func(t *testing.T) {
		t.Parallel()
		res := card.Check("4111 1111 1111 111x")
		assert.False(t, res.Valid)
		assert.Equal(t, card.MsgInvalidFormat, res.Error)
		assert.Empty(t, res.Masked)
	})
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, card.IsValid("5555555555554444"))
	assert.False(t, card.IsValid("5555555555554445"))
}

func TestDetectBrand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pan  string
		want card.Brand
	}{
		{"4111111111111111", card.Visa},
		{"5105105105105100", card.Mastercard},
		{"5555555555554444", card.Mastercard},
		{"2221000000000009", card.Mastercard},
		{"2720990000000000", card.Mastercard},
		{"2721000000000000", card.Unknown},
		{"378282246310005", card.Amex},
		{"341111111111111", card.Amex},
		{"5078030000000000", card.Meeza},
		{"5078100000000000", card.Meeza},
		{"5078040000000000", card.Unknown},
		{"6011111111111117", card.Unknown},
		{"", card.Unknown},
		{"5", card.Unknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, card.DetectBrand(tt.pan), tt.pan)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4111 1111 1111 1111", card.Format("4111111111111111"))
	assert.Equal(t, "3782 822463 10005", card.Format("378282246310005"))
	assert.Equal(t, "4111 1111 1111 1111 111", card.Format("4111111111111111111"))
	assert.Equal(t, "", card.Format(""))
}
