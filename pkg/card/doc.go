// Package card validates payment card numbers and prepares them for display.
//
// Check normalizes the input, enforces the 13-19 digit length of ISO/IEC 7812
// card numbers, runs the Luhn check and detects the brand from the issuer
// identification number. The Result carries a bilingual error message suitable
// for showing to the user and a PCI DSS compliant masked number:
//
//	res := card.Check("٤١١١ ١١١١ ١١١١ ١١١١")
//	res.Valid                 // true
//	res.Brand                 // card.Visa
//	res.Masked                // "411111******1111"
//
//	res = card.Check("4111 1111 1111 1112")
//	res.Valid                 // false
//	res.Error.In(i18n.Arabic) // "رقم البطاقة غير صحيح"
//
// Format groups digits the way they are embossed on the card:
//
//	card.Format("4111111111111111") // "4111 1111 1111 1111"
//	card.Format("378282246310005")  // "3782 822463 10005"
package card
