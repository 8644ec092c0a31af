package phone

import "github.com/dmitrymomot/egyptid/core/i18n"

// carriers maps the three-digit national prefix to the operator.
var carriers = map[string]i18n.Text{
	"010": i18n.T("فودافون", "Vodafone"),
	"011": i18n.T("اتصالات", "Etisalat"),
	"012": i18n.T("أورنج", "Orange"),
	"015": i18n.T("وي", "WE"),
}

// Carrier returns the operator for a national prefix such as "010".
func Carrier(prefix string) (i18n.Text, bool) {
	name, ok := carriers[prefix]
	return name, ok
}
