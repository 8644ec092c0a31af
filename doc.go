// Package egyptid validates and inspects Egyptian identifiers: payment card
// numbers, 14-digit national IDs and mobile phone numbers. Decoded birth dates
// are enriched with age group, century, generation and zodiac sign. Every
// human-readable label is available in Arabic and English.
//
// # Package Index
//
// Identifier packages:
//
//   - github.com/dmitrymomot/egyptid/pkg/luhn: Modulus-10 validation, check digits, test number generation, per-digit trace and PAN masking
//   - github.com/dmitrymomot/egyptid/pkg/card: card number checks with brand detection (Meeza, Visa, Mastercard, American Express)
//   - github.com/dmitrymomot/egyptid/pkg/nationalid: national ID parsing (birth date, governorate, gender)
//   - github.com/dmitrymomot/egyptid/pkg/phone: mobile number parsing with carrier detection
//   - github.com/dmitrymomot/egyptid/pkg/classify: century, generation, zodiac sign and age group classification
//
// Core packages:
//
//   - github.com/dmitrymomot/egyptid/core/i18n: bilingual labels and language resolution
//   - github.com/dmitrymomot/egyptid/core/sanitizer: Arabic digit and letter normalization, struct sanitization by tags
//   - github.com/dmitrymomot/egyptid/core/validator: struct validation by tags with identifier rules
//   - github.com/dmitrymomot/egyptid/core/logger: slog construction and attribute helpers
//   - github.com/dmitrymomot/egyptid/core/config: cached environment configuration loading
//
// Command:
//
//   - github.com/dmitrymomot/egyptid/cmd/egyptid: command line front end for all of the above
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/egyptid/pkg/luhn
//	go doc -all github.com/dmitrymomot/egyptid/pkg/nationalid
package egyptid
