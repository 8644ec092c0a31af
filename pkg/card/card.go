package card

import (
	"strings"

	"github.com/dmitrymomot/egyptid/core/i18n"
	"github.com/dmitrymomot/egyptid/core/sanitizer"
	"github.com/dmitrymomot/egyptid/pkg/luhn"
)

// Card number length bounds (ISO/IEC 7812).
const (
	MinLength = 13
	MaxLength = 19
)

// Messages returned in Result.Error.
var (
	MsgEmpty         = i18n.T("رقم البطاقة مطلوب", "card number is required")
	MsgInvalidFormat = i18n.T("رقم البطاقة يجب أن يحتوي على أرقام فقط", "card number must contain digits only")
	MsgInvalidLength = i18n.T("رقم البطاقة يجب أن يتكون من %{min} إلى %{max} رقمًا", "card number must have %{min} to %{max} digits")
	MsgChecksum      = i18n.T("رقم البطاقة غير صحيح", "card number is not valid")
)

// Result is the outcome of checking a card number.
type Result struct {
	Valid  bool
	Number string // normalized digits, empty when the input has no usable digits
	Masked string
	Brand  Brand
	Error  i18n.Text // zero when Valid
}

// Check validates raw as a payment card number.
func Check(raw string) Result {
	number := sanitizer.NormalizeNumeric(raw)
	if number == "" {
		return Result{Brand: Unknown, Error: MsgEmpty}
	}
	if !sanitizer.IsASCIIDigits(number) {
		return Result{Brand: Unknown, Error: MsgInvalidFormat}
	}

	res := Result{
		Number: number,
		Masked: luhn.Mask(number),
		Brand:  DetectBrand(number),
	}

	switch {
	case len(number) < MinLength || len(number) > MaxLength:
		res.Error = MsgInvalidLength.Format(i18n.M{"min": MinLength, "max": MaxLength})
	case !luhn.Validate(number):
		res.Error = MsgChecksum
	default:
		res.Valid = true
	}
	return res
}

// IsValid reports whether raw is a valid card number.
func IsValid(raw string) bool {
	return Check(raw).Valid
}

// Format groups the digits of pan for display: 4-6-5 for American Express
// 15-digit numbers, blocks of four otherwise.
func Format(pan string) string {
	if len(pan) == 15 && DetectBrand(pan) == Amex {
		return pan[:4] + " " + pan[4:10] + " " + pan[10:]
	}

	var b strings.Builder
	b.Grow(len(pan) + len(pan)/4)
	for i := 0; i < len(pan); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(pan[i])
	}
	return b.String()
}
