package nationalid

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrymomot/egyptid/core/i18n"
	"github.com/dmitrymomot/egyptid/core/sanitizer"
	"github.com/dmitrymomot/egyptid/pkg/classify"
)

// Length is the number of digits in a national ID.
const Length = 14

// Gender recorded in the national ID.
type Gender int

const (
	Male Gender = iota + 1
	Female
)

var genderNames = map[Gender]i18n.Text{
	Male:   i18n.T("ذكر", "Male"),
	Female: i18n.T("أنثى", "Female"),
}

// Text returns the bilingual name of the gender.
func (g Gender) Text() i18n.Text {
	return genderNames[g]
}

// String implements fmt.Stringer.
func (g Gender) String() string {
	return g.Text().English
}

// centuryBase maps the leading digit to the first year of the century.
var centuryBase = map[byte]int{
	'2': 1900,
	'3': 2000,
}

// ID is a parsed national identity number.
type ID struct {
	Number          string
	BirthDate       time.Time
	GovernorateCode string
	Governorate     i18n.Text
	Sequence        string
	Gender          Gender
	CheckDigit      int
	Profile         classify.Profile
}

// Parse validates raw and extracts the fields encoded in it.
// now is used to reject future birth dates and to compute the age profile.
func Parse(raw string, now time.Time) (*ID, error) {
	number := sanitizer.NormalizeNumeric(raw)
	if !sanitizer.IsASCIIDigits(number) {
		return nil, ErrInvalidFormat
	}
	if len(number) != Length {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, len(number))
	}

	base, ok := centuryBase[number[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %c", ErrInvalidCentury, number[0])
	}

	birth, err := birthDate(base, number[1:7])
	if err != nil {
		return nil, err
	}
	if birth.After(now) {
		return nil, fmt.Errorf("%w: %s", ErrFutureBirthDate, birth.Format(time.DateOnly))
	}

	code := number[7:9]
	gov, ok := Governorate(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGovernorate, code)
	}

	gender := Female
	if (number[12]-'0')%2 == 1 {
		gender = Male
	}

	return &ID{
		Number:          number,
		BirthDate:       birth,
		GovernorateCode: code,
		Governorate:     gov,
		Sequence:        number[9:12],
		Gender:          gender,
		CheckDigit:      int(number[13] - '0'),
		Profile:         classify.Describe(birth, now),
	}, nil
}

// IsValid reports whether raw is a well-formed national ID as of now.
func IsValid(raw string) bool {
	_, err := Parse(raw, time.Now())
	return err == nil
}

// birthDate decodes YYMMDD within the given century.
// time.Date normalizes overflowing values, so the result is compared with its input.
func birthDate(century int, yymmdd string) (time.Time, error) {
	yy, _ := strconv.Atoi(yymmdd[0:2])
	mm, _ := strconv.Atoi(yymmdd[2:4])
	dd, _ := strconv.Atoi(yymmdd[4:6])

	year := century + yy
	d := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != mm || d.Day() != dd {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidBirthDate, yymmdd)
	}
	return d, nil
}
