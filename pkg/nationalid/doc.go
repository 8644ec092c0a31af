// Package nationalid parses Egyptian national identity numbers.
//
// A national ID has 14 digits laid out as C YYMMDD GG SSS G X:
//
//	C      century of birth (2 for 1900-1999, 3 for 2000-2099)
//	YYMMDD date of birth
//	GG     governorate of birth registration (88 for births abroad)
//	SSS    registration sequence
//	G      gender digit, odd for males
//	X      check digit
//
// Parse normalizes the input (Arabic-Indic digits, spaces and dashes are
// accepted), validates every field and enriches the birth date with the
// classifications from pkg/classify:
//
//	id, err := nationalid.Parse("٢٩٠٠١٠١٠١٠٠٠١٥", time.Now())
//	if err != nil {
//		return err
//	}
//	id.BirthDate                     // 1990-01-01
//	id.Governorate.In(i18n.Arabic)   // "القاهرة"
//	id.Gender                        // nationalid.Male
//	id.Profile.Generation.Name       // "Millennials"
//
// Validation failures wrap one of the package's sentinel errors and can be
// checked with errors.Is.
package nationalid
