package classify

import (
	"time"

	"github.com/dmitrymomot/egyptid/core/i18n"
)

// ageGroup covers ages below an exclusive upper bound.
type ageGroup struct {
	below int
	name  i18n.Text
}

var (
	invalidAge = i18n.T("غير صالح", "Invalid")
	seniorAge  = i18n.T("كبير السن", "Senior")

	// ageGroups is ordered by ascending bound. Negative ages are handled before the scan.
	ageGroups = []ageGroup{
		{1, i18n.T("رضيع", "Infant")},
		{3, i18n.T("طفل صغير", "Toddler")},
		{13, i18n.T("طفل", "Child")},
		{18, i18n.T("مراهق", "Teenager")},
		{30, i18n.T("شاب", "Young Adult")},
		{60, i18n.T("بالغ", "Adult")},
	}
)

// AgeGroup returns the life stage for an age in completed years.
// Negative ages are reported as "Invalid"; 60 and above is "Senior".
func AgeGroup(age int) i18n.Text {
	if age < 0 {
		return invalidAge
	}
	for _, g := range ageGroups {
		if age < g.below {
			return g.name
		}
	}
	return seniorAge
}

// AgeGroupEnglish returns the English life stage label for age.
func AgeGroupEnglish(age int) string {
	return AgeGroup(age).English
}

// AgeGroupArabic returns the Arabic life stage label for age.
func AgeGroupArabic(age int) string {
	return AgeGroup(age).Arabic
}

// Age returns the number of completed years between birth and now.
// It is negative when birth is after now.
func Age(birth, now time.Time) int {
	if now.Before(birth) {
		return -(Age(now, birth) + 1)
	}
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}
