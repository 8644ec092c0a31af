package classify

import (
	"time"

	"github.com/dmitrymomot/egyptid/core/i18n"
)

// Zodiac is a sun sign with its date range.
// A range whose StartMonth is after its EndMonth wraps around the new year.
type Zodiac struct {
	Name       i18n.Text
	Symbol     string
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// Contains reports whether the given month and day fall within the sign.
func (z Zodiac) Contains(month time.Month, day int) bool {
	if month == z.StartMonth && day >= z.StartDay {
		return true
	}
	if month == z.EndMonth && day <= z.EndDay {
		return true
	}
	if z.StartMonth <= z.EndMonth {
		return month > z.StartMonth && month < z.EndMonth
	}
	return month > z.StartMonth || month < z.EndMonth
}

// wraps reports whether the sign spans the year boundary.
func (z Zodiac) wraps() bool {
	return z.StartMonth > z.EndMonth
}

var zodiacSigns = []Zodiac{
	{i18n.T("الحمل", "Aries"), "♈", time.March, 21, time.April, 19},
	{i18n.T("الثور", "Taurus"), "♉", time.April, 20, time.May, 20},
	{i18n.T("الجوزاء", "Gemini"), "♊", time.May, 21, time.June, 20},
	{i18n.T("السرطان", "Cancer"), "♋", time.June, 21, time.July, 22},
	{i18n.T("الأسد", "Leo"), "♌", time.July, 23, time.August, 22},
	{i18n.T("العذراء", "Virgo"), "♍", time.August, 23, time.September, 22},
	{i18n.T("الميزان", "Libra"), "♎", time.September, 23, time.October, 22},
	{i18n.T("العقرب", "Scorpio"), "♏", time.October, 23, time.November, 21},
	{i18n.T("القوس", "Sagittarius"), "♐", time.November, 22, time.December, 21},
	{i18n.T("الجدي", "Capricorn"), "♑", time.December, 22, time.January, 19},
	{i18n.T("الدلو", "Aquarius"), "♒", time.January, 20, time.February, 18},
	{i18n.T("الحوت", "Pisces"), "♓", time.February, 19, time.March, 20},
}

// zodiacFallback is the sign spanning the year boundary.
var zodiacFallback = func() Zodiac {
	for _, z := range zodiacSigns {
		if z.wraps() {
			return z
		}
	}
	panic("classify: zodiac table has no year-wrapping sign")
}()

// ZodiacSigns returns a copy of the zodiac table starting with Aries.
func ZodiacSigns() []Zodiac {
	out := make([]Zodiac, len(zodiacSigns))
	copy(out, zodiacSigns)
	return out
}

// ZodiacSign returns the sun sign for the month and day of t.
func ZodiacSign(t time.Time) Zodiac {
	return ZodiacSignFor(t.Month(), t.Day())
}

// ZodiacSignFor returns the first sign containing month and day,
// or Capricorn if none does.
func ZodiacSignFor(month time.Month, day int) Zodiac {
	for _, z := range zodiacSigns {
		if z.Contains(month, day) {
			return z
		}
	}
	return zodiacFallback
}
