package classify

import "github.com/dmitrymomot/egyptid/core/i18n"

// UnknownCentury is returned for years outside the century table.
var UnknownCentury = i18n.T("غير معروف", "Unknown")

var centuries = map[int]i18n.Text{
	1700: i18n.T("القرن الثامن عشر", "18th Century"),
	1800: i18n.T("القرن التاسع عشر", "19th Century"),
	1900: i18n.T("القرن العشرين", "20th Century"),
	2000: i18n.T("القرن الحادي والعشرين", "21st Century"),
	2100: i18n.T("القرن الثاني والعشرين", "22nd Century"),
}

// CenturyStart returns the first year of the hundred-year block containing year,
// rounding toward negative infinity.
func CenturyStart(year int) int {
	start := year / 100 * 100
	if year < 0 && start != year {
		start -= 100
	}
	return start
}

// Century returns the name of the century block containing year,
// or UnknownCentury if the block is not in the table.
func Century(year int) i18n.Text {
	if name, ok := centuries[CenturyStart(year)]; ok {
		return name
	}
	return UnknownCentury
}
