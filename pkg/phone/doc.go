// Package phone validates Egyptian mobile numbers and identifies their carrier.
//
// Input may use Arabic-Indic digits, spaces, dashes and parentheses, and may be
// written in local (01XXXXXXXXX), international (+20, 0020) or bare country
// code (20) form. A trunk 0 typed after the country code (+20 010...) is
// dropped. Numbers are validated with libphonenumber metadata and must
// be mobile numbers.
//
//	n, err := phone.Parse("+20 10 1234 5678")
//	if err != nil {
//		return err
//	}
//	n.National             // "01012345678"
//	n.E164                 // "+201012345678"
//	n.Carrier.English      // "Vodafone"
//	n.Carrier.In(i18n.Arabic) // "فودافون"
package phone
