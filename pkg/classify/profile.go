package classify

import (
	"time"

	"github.com/dmitrymomot/egyptid/core/i18n"
)

// Profile aggregates every classification of a birth date.
type Profile struct {
	Age        int
	AgeGroup   i18n.Text
	Century    i18n.Text
	Generation GenerationInfo
	Zodiac     Zodiac
}

// Describe classifies birth relative to now.
func Describe(birth, now time.Time) Profile {
	age := Age(birth, now)
	return Profile{
		Age:        age,
		AgeGroup:   AgeGroup(age),
		Century:    Century(birth.Year()),
		Generation: Generation(birth.Year()),
		Zodiac:     ZodiacSign(birth),
	}
}
