package classify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/egyptid/core/i18n"
	"github.com/dmitrymomot/egyptid/pkg/classify"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCentury(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year    int
		english string
		arabic  string
	}{
		{1990, "20th Century", "القرن العشرين"},
		{1900, "20th Century", "القرن العشرين"},
		{1999, "20th Century", "القرن العشرين"},
		{2000, "21st Century", "القرن الحادي والعشرين"},
		{2024, "21st Century", "القرن الحادي والعشرين"},
		{1850, "19th Century", "القرن التاسع عشر"},
		{3000, "Unknown", "غير معروف"},
		{-50, "Unknown", "غير معروف"},
		{0, "Unknown", "غير معروف"},
	}

	for _, tt := range tests {
		got := classify.Century(tt.year)
		assert.Equal(t, tt.english, got.English, "year %d", tt.year)
		assert.Equal(t, tt.arabic, got.Arabic, "year %d", tt.year)
	}
}

func TestCenturyStart(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1900, classify.CenturyStart(1999))
	assert.Equal(t, 2000, classify.CenturyStart(2000))
	assert.Equal(t, 0, classify.CenturyStart(99))
	assert.Equal(t, -100, classify.CenturyStart(-1))
	assert.Equal(t, -100, classify.CenturyStart(-100))
	assert.Equal(t, -200, classify.CenturyStart(-101))
}

func TestGeneration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want string
	}{
		{1890, "Lost Generation"},
		{1927, "Greatest Generation"},
		{1945, "Silent Generation"},
		{1946, "Baby Boomers"},
		{1980, "Generation X"},
		{1981, "Millennials"},
		{1996, "Millennials"},
		{1997, "Generation Z"},
		{2000, "Generation Z"},
		{2012, "Generation Z"},
		{2013, "Generation Alpha"},
		{2025, "Generation Beta"},
		{2100, "Generation Beta"},
		{1500, "Generation Beta"},
		{-20, "Generation Beta"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classify.Generation(tt.year).Name.English, "year %d", tt.year)
	}
}

func TestGenerationTableIsContiguous(t *testing.T) {
	t.Parallel()

	gens := classify.Generations()
	require.NotEmpty(t, gens)
	for i, g := range gens {
		assert.LessOrEqual(t, g.StartYear, g.EndYear, g.Name.English)
		if i > 0 {
			assert.Equal(t, gens[i-1].EndYear+1, g.StartYear, "gap before %s", g.Name.English)
		}
	}
}

func TestGenerationsReturnsCopy(t *testing.T) {
	t.Parallel()

	gens := classify.Generations()
	gens[0].StartYear = 0
	assert.NotEqual(t, 0, classify.Generations()[0].StartYear)
}

func TestGenerationRange(t *testing.T) {
	t.Parallel()

	start, end := classify.GenerationRange("Millennials")
	assert.Equal(t, 1981, start)
	assert.Equal(t, 1996, end)

	start, end = classify.GenerationRange("  generation z ")
	assert.Equal(t, 1997, start)
	assert.Equal(t, 2012, end)

	start, end = classify.GenerationRange("جيل الألفية")
	assert.Equal(t, 1981, start)
	assert.Equal(t, 1996, end)

	start, end = classify.GenerationRange("Hippies")
	assert.Equal(t, 1900, start)
	assert.Equal(t, time.Now().Year(), end)
}

func TestZodiacSign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		when time.Time
		want string
	}{
		{"december wraparound", date(1990, time.December, 25), "Capricorn"},
		{"january wraparound", date(1990, time.January, 10), "Capricorn"},
		{"capricorn start", date(1990, time.December, 22), "Capricorn"},
		{"capricorn end", date(1990, time.January, 19), "Capricorn"},
		{"aquarius start", date(1990, time.January, 20), "Aquarius"},
		{"sagittarius end", date(1990, time.December, 21), "Sagittarius"},
		{"pisces end", date(1990, time.March, 20), "Pisces"},
		{"aries start", date(1990, time.March, 21), "Aries"},
		{"leap day", date(2000, time.February, 29), "Pisces"},
		{"mid range", date(1990, time.August, 1), "Leo"},
		{"scorpio end", date(1990, time.November, 21), "Scorpio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify.ZodiacSign(tt.when).Name.English)
		})
	}

	t.Run("arabic name and symbol", func(t *testing.T) {
		t.Parallel()
		z := classify.ZodiacSign(date(1990, time.December, 25))
		assert.Equal(t, "الجدي", z.Name.Arabic)
		assert.Equal(t, "♑", z.Symbol)
	})

	t.Run("fallback for impossible dates", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Capricorn", classify.ZodiacSignFor(time.Month(13), 40).Name.English)
	})
}

func TestZodiacCoversEveryDayExactlyOnce(t *testing.T) {
	t.Parallel()

	signs := classify.ZodiacSigns()
	require.Len(t, signs, 12)

	// 2000 is a leap year, so February 29 is covered too.
	for d := date(2000, time.January, 1); d.Year() == 2000; d = d.AddDate(0, 0, 1) {
		matches := 0
		for _, z := range signs {
			if z.Contains(d.Month(), d.Day()) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "date %s", d.Format("01-02"))
	}
}

func TestAgeGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		age     int
		english string
	}{
		{-1, "Invalid"},
		{-100, "Invalid"},
		{0, "Infant"},
		{1, "Toddler"},
		{2, "Toddler"},
		{3, "Child"},
		{12, "Child"},
		{13, "Teenager"},
		{17, "Teenager"},
		{18, "Young Adult"},
		{29, "Young Adult"},
		{30, "Adult"},
		{59, "Adult"},
		{60, "Senior"},
		{65, "Senior"},
		{150, "Senior"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.english, classify.AgeGroupEnglish(tt.age), "age %d", tt.age)
		assert.Equal(t, classify.AgeGroup(tt.age).Arabic, classify.AgeGroupArabic(tt.age))
		assert.NotEmpty(t, classify.AgeGroupArabic(tt.age))
	}
}

func TestAge(t *testing.T) {
	t.Parallel()

	now := date(2026, time.October, 15)

	assert.Equal(t, 36, classify.Age(date(1990, time.January, 1), now))
	assert.Equal(t, 36, classify.Age(date(1990, time.October, 15), now))
	assert.Equal(t, 35, classify.Age(date(1990, time.October, 16), now))
	assert.Equal(t, 0, classify.Age(now, now))
	assert.Equal(t, -1, classify.Age(date(2026, time.October, 16), now))
	assert.Equal(t, -4, classify.Age(date(2030, time.May, 1), now))
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	p := classify.Describe(date(1990, time.January, 1), date(2026, time.October, 15))

	assert.Equal(t, 36, p.Age)
	assert.Equal(t, "Adult", p.AgeGroup.English)
	assert.Equal(t, "20th Century", p.Century.English)
	assert.Equal(t, "Millennials", p.Generation.Name.In(i18n.English))
	assert.Equal(t, "Capricorn", p.Zodiac.Name.English)
}

func TestClassifiersAreSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	for i := range 50 {
		go func() {
			defer func() { done <- struct{}{} }()
			year := 1900 + i*3
			_ = classify.Century(year)
			_ = classify.Generation(year)
			_ = classify.ZodiacSign(date(year, time.Month(i%12+1), 1))
			_ = classify.AgeGroup(i)
		}()
	}
	for range 50 {
		<-done
	}
}
