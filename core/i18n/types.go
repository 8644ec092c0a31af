package i18n

// M is a convenience type for placeholder maps used in translations.
// It maps placeholder names to their values.
type M map[string]any

// Lang identifies one of the supported output languages.
type Lang string

// Supported languages.
const (
	Arabic  Lang = "ar"
	English Lang = "en"
)

// DefaultLang is used when no supported language can be resolved.
const DefaultLang = English

// Text is a label available in Arabic and English.
// The zero value is an empty label in both languages.
type Text struct {
	Arabic  string `json:"ar"`
	English string `json:"en"`
}

// T builds a Text from its Arabic and English forms.
func T(arabic, english string) Text {
	return Text{Arabic: arabic, English: english}
}

// In returns the label in the requested language.
// Unknown languages fall back to English; an empty Arabic form falls back to English too.
func (t Text) In(lang Lang) string {
	if lang == Arabic && t.Arabic != "" {
		return t.Arabic
	}
	return t.English
}

// String returns the English form.
func (t Text) String() string {
	return t.English
}

// IsZero reports whether both forms are empty.
func (t Text) IsZero() bool {
	return t.Arabic == "" && t.English == ""
}

// Format replaces %{name} placeholders in both forms.
func (t Text) Format(placeholders M) Text {
	return Text{
		Arabic:  ReplacePlaceholders(t.Arabic, placeholders),
		English: ReplacePlaceholders(t.English, placeholders),
	}
}
