// Package validator checks structs and values against named rules and
// collects every failure instead of stopping at the first one.
//
// Rules are attached with the validate struct tag. Rules are separated by
// semicolons and parameters follow a colon:
//
//	type Customer struct {
//		NationalID string `validate:"required;eg_national_id"`
//		Mobile     string `validate:"required;eg_mobile"`
//		Card       string `validate:"card"`
//		PIN        string `validate:"len:4;numeric"`
//	}
//
//	if err := validator.ValidateStruct(&c); err != nil {
//		for _, e := range validator.ExtractValidationErrors(err) {
//			fmt.Println(e.Field, e.Message)
//		}
//	}
//
// # Built-in rules
//
//   - required, min:N, max:N, len:N, numeric
//   - omitempty: skip the remaining rules when the value is empty
//   - luhn: value passes the Luhn checksum after digit normalization
//   - card: 13 to 19 digits, Luhn valid
//   - eg_mobile: Egyptian mobile number in any accepted form
//   - eg_national_id: 14-digit Egyptian national ID with a valid birth date and governorate
//
// Nested structs and pointers to structs without a tag are validated
// recursively; their fields are reported as Parent.Child. A "-" tag skips the
// field.
//
// # Programmatic rules
//
// The same checks are available as Rule constructors for use with Apply:
//
//	err := validator.Apply(
//		validator.ValidLuhn("pan", pan),
//		validator.ValidMobile("mobile", mobile),
//		validator.MaxLenString("name", name, 64),
//	)
//
// Custom tag rules are added with RegisterValidator.
//
// Each ValidationError carries a TranslationKey and TranslationValues so the
// message can be rendered in Arabic by the caller.
package validator
