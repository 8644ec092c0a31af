package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// supported lists the languages in server preference order. English is first so
// that it wins when nothing matches.
var (
	supported = []language.Tag{language.English, language.Arabic}
	matcher   = language.NewMatcher(supported)
)

// ParseLang resolves a language code such as "ar", "ar-EG" or "en_US" to a
// supported language. A weighted list such as "fr,ar-EG;q=0.8,en;q=0.5" is
// resolved like an Accept-Language header. Empty or unsupported codes yield
// DefaultLang.
func ParseLang(code string) Lang {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return DefaultLang
	}
	if strings.ContainsAny(code, ",;") {
		return ParseAcceptLanguage(code)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLang
	}
	return match(tag)
}

// ParseAcceptLanguage parses an Accept-Language header and returns the best
// supported language, honoring quality values.
//
// Example header: "ar-EG,ar;q=0.9,en;q=0.8"
// Returns: Arabic
func ParseAcceptLanguage(header string) Lang {
	if len(header) > maxAcceptLanguageLength {
		// cut at a list separator so no tag or rune is split
		header = header[:maxAcceptLanguageLength]
		if i := strings.LastIndexByte(header, ','); i >= 0 {
			header = header[:i]
		} else {
			header = ""
		}
	}
	if strings.TrimSpace(header) == "" {
		return DefaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	return match(tags...)
}

func match(tags ...language.Tag) Lang {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	base, _ := supported[idx].Base()
	return Lang(base.String())
}

// ReplacePlaceholders replaces placeholders in the template string with values
// from the provided map. Placeholders use the format %{name}.
// If a placeholder is not found in the map, it remains unchanged.
//
// Example:
//
//	template: "Card number must have %{min} to %{max} digits"
//	placeholders: M{"min": 13, "max": 19}
//	returns: "Card number must have 13 to 19 digits"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) < 1 {
		return template
	}

	result := template
	for key, value := range placeholders {
		placeholder := fmt.Sprintf("%%{%s}", key)
		replacement := fmt.Sprintf("%v", value)
		result = strings.ReplaceAll(result, placeholder, replacement)
	}

	return result
}
