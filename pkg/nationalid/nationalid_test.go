package nationalid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/egyptid/core/i18n"
	"github.com/dmitrymomot/egyptid/pkg/nationalid"
)

var now = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("male born in cairo in 1990", func(t *testing.T) {
		t.Parallel()
		id, err := nationalid.Parse("29001010100015", now)
		require.NoError(t, err)

		assert.Equal(t, "29001010100015", id.Number)
		assert.Equal(t, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), id.BirthDate)
		assert.Equal(t, "01", id.GovernorateCode)
		assert.Equal(t, "Cairo", id.Governorate.English)
		assert.Equal(t, "القاهرة", id.Governorate.In(i18n.Arabic))
		assert.Equal(t, "000", id.Sequence)
		assert.Equal(t, nationalid.Male, id.Gender)
		assert.Equal(t, 5, id.CheckDigit)

		assert.Equal(t, 36, id.Profile.Age)
		assert.Equal(t, "Adult", id.Profile.AgeGroup.English)
		assert.Equal(t, "20th Century", id.Profile.Century.English)
		assert.Equal(t, "Millennials", id.Profile.Generation.Name.English)
		assert.Equal(t, "Capricorn", id.Profile.Zodiac.Name.English)
	})

	t.Run("female born in giza", func(t *testing.T) {
		t.Parallel()
		id, err := nationalid.Parse("29512252101228", now)
		require.NoError(t, err)

		assert.Equal(t, time.Date(1995, time.December, 25, 0, 0, 0, 0, time.UTC), id.BirthDate)
		assert.Equal(t, "Giza", id.Governorate.English)
		assert.Equal(t, nationalid.Female, id.Gender)
		assert.Equal(t, "أنثى", id.Gender.Text().Arabic)
		assert.Equal(t, "Capricorn", id.Profile.Zodiac.Name.English)
	})

	t.Run("born abroad in 2002", func(t *testing.T) {
		t.Parallel()
		id, err := nationalid.Parse("30201018800031", now)
		require.NoError(t, err)

		assert.Equal(t, 2002, id.BirthDate.Year())
		assert.Equal(t, nationalid.AbroadCode, id.GovernorateCode)
		assert.Equal(t, "21st Century", id.Profile.Century.English)
		assert.Equal(t, "Generation Z", id.Profile.Generation.Name.English)
		assert.Equal(t, "Young Adult", id.Profile.AgeGroup.English)
	})

	t.Run("arabic digits and separators", func(t *testing.T) {
		t.Parallel()
		id, err := nationalid.Parse(" ٢٩٠-٠١٠١-٠١٠٠-٠١٥ ", now)
		require.NoError(t, err)
		assert.Equal(t, "29001010100015", id.Number)
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", nationalid.ErrInvalidFormat},
		{"letters", "2900101010001A", nationalid.ErrInvalidFormat},
		{"too short", "2900101010001", nationalid.ErrInvalidLength},
		{"too long", "290010101000155", nationalid.ErrInvalidLength},
		{"unknown century", "19001010100015", nationalid.ErrInvalidCentury},
		{"month 13", "29013010100015", nationalid.ErrInvalidBirthDate},
		{"day 0", "29001000100015", nationalid.ErrInvalidBirthDate},
		{"february 30", "29002300100015", nationalid.ErrInvalidBirthDate},
		{"february 29 in non-leap year", "30102290100015", nationalid.ErrInvalidBirthDate},
		{"future birth date", "33001010100015", nationalid.ErrFutureBirthDate},
		{"unknown governorate", "29001019900015", nationalid.ErrUnknownGovernorate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, err := nationalid.Parse(tt.input, now)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, id)
		})
	}
}

func TestParseLeapDay(t *testing.T) {
	t.Parallel()

	id, err := nationalid.Parse("30002290100015", now)
	require.NoError(t, err)
	assert.Equal(t, time.February, id.BirthDate.Month())
	assert.Equal(t, 29, id.BirthDate.Day())
	assert.Equal(t, "Pisces", id.Profile.Zodiac.Name.English)
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, nationalid.IsValid("29001010100015"))
	assert.False(t, nationalid.IsValid("29013010100015"))
	assert.False(t, nationalid.IsValid(""))
}

func TestGovernorate(t *testing.T) {
	t.Parallel()

	name, ok := nationalid.Governorate("21")
	require.True(t, ok)
	assert.Equal(t, "Giza", name.English)

	_, ok = nationalid.Governorate("99")
	assert.False(t, ok)

	codes := nationalid.GovernorateCodes()
	assert.Len(t, codes, 28)
	assert.Equal(t, "01", codes[0])
	assert.Equal(t, nationalid.AbroadCode, codes[len(codes)-1])
	for _, code := range codes {
		name, ok := nationalid.Governorate(code)
		require.True(t, ok)
		assert.NotEmpty(t, name.Arabic, code)
		assert.NotEmpty(t, name.English, code)
	}
}
