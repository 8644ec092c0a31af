package classify

import (
	"strings"
	"time"

	"github.com/dmitrymomot/egyptid/core/i18n"
)

// GenerationInfo is a named birth cohort with an inclusive year range.
type GenerationInfo struct {
	Name      i18n.Text
	StartYear int
	EndYear   int
}

// Contains reports whether year falls within the cohort.
func (g GenerationInfo) Contains(year int) bool {
	return year >= g.StartYear && year <= g.EndYear
}

// generations is ordered oldest first and contiguous.
var generations = []GenerationInfo{
	{i18n.T("الجيل الضائع", "Lost Generation"), 1883, 1900},
	{i18n.T("الجيل الأعظم", "Greatest Generation"), 1901, 1927},
	{i18n.T("الجيل الصامت", "Silent Generation"), 1928, 1945},
	{i18n.T("جيل طفرة المواليد", "Baby Boomers"), 1946, 1964},
	{i18n.T("الجيل إكس", "Generation X"), 1965, 1980},
	{i18n.T("جيل الألفية", "Millennials"), 1981, 1996},
	{i18n.T("الجيل زد", "Generation Z"), 1997, 2012},
	{i18n.T("جيل ألفا", "Generation Alpha"), 2013, 2024},
	{i18n.T("جيل بيتا", "Generation Beta"), 2025, 2039},
}

// fallbackGenerationStart is the start year returned by GenerationRange for unknown labels.
const fallbackGenerationStart = 1900

// Generations returns a copy of the generation table, oldest first.
func Generations() []GenerationInfo {
	out := make([]GenerationInfo, len(generations))
	copy(out, generations)
	return out
}

// Generation returns the cohort containing birthYear.
// Years outside every range resolve to the newest cohort.
func Generation(birthYear int) GenerationInfo {
	for _, g := range generations {
		if g.Contains(birthYear) {
			return g
		}
	}
	return generations[len(generations)-1]
}

// GenerationRange returns the year range of the cohort whose Arabic or English
// name matches label, ignoring case and surrounding whitespace.
// Unknown labels yield 1900 through the current year.
func GenerationRange(label string) (start, end int) {
	label = strings.TrimSpace(label)
	for _, g := range generations {
		if strings.EqualFold(label, g.Name.English) || strings.EqualFold(label, g.Name.Arabic) {
			return g.StartYear, g.EndYear
		}
	}
	return fallbackGenerationStart, time.Now().Year()
}
