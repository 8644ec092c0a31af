package validator

import (
	"reflect"
	"time"

	"github.com/dmitrymomot/egyptid/core/sanitizer"
	"github.com/dmitrymomot/egyptid/pkg/card"
	"github.com/dmitrymomot/egyptid/pkg/luhn"
	"github.com/dmitrymomot/egyptid/pkg/nationalid"
	"github.com/dmitrymomot/egyptid/pkg/phone"
)

// ValidLuhn checks that value passes the Luhn checksum. Arabic-Indic digits are accepted.
func ValidLuhn(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return luhn.Validate(sanitizer.NormalizeNumeric(value))
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must pass the Luhn checksum",
			TranslationKey:    "validation.luhn",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// ValidCard checks that value is a valid payment card number.
func ValidCard(field, value string) Rule {
	res := card.Check(value)
	return Rule{
		Check: func() bool {
			return res.Valid
		},
		Error: ValidationError{
			Field:             field,
			Message:           res.Error.English,
			TranslationKey:    "validation.card",
			TranslationValues: map[string]any{"field": field, "ar": res.Error.Arabic},
		},
	}
}

// ValidMobile checks that value is an Egyptian mobile number.
func ValidMobile(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phone.IsMobile(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid Egyptian mobile number",
			TranslationKey:    "validation.eg_mobile",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// ValidNationalID checks that value is a well-formed Egyptian national ID as of now.
func ValidNationalID(field, value string, now time.Time) Rule {
	var reason string
	if _, err := nationalid.Parse(value, now); err != nil {
		reason = err.Error()
	}
	return Rule{
		Check: func() bool {
			return reason == ""
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid Egyptian national ID",
			TranslationKey:    "validation.eg_national_id",
			TranslationValues: map[string]any{"field": field, "reason": reason},
		},
	}
}

func luhnValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return Rule{Check: func() bool { return true }}
	}
	return ValidLuhn(field, value.String())
}

func cardValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return Rule{Check: func() bool { return true }}
	}
	return ValidCard(field, value.String())
}

func mobileValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return Rule{Check: func() bool { return true }}
	}
	return ValidMobile(field, value.String())
}

func nationalIDValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return Rule{Check: func() bool { return true }}
	}
	return ValidNationalID(field, value.String(), time.Now())
}
