// Package i18n holds bilingual Arabic and English labels and resolves the
// caller's preferred language.
//
// Labels are static and pre-translated; there is no catalog lookup at runtime.
// A Text carries both forms and In picks one:
//
//	import "github.com/dmitrymomot/egyptid/core/i18n"
//
//	cairo := i18n.T("القاهرة", "Cairo")
//	cairo.In(i18n.Arabic)  // "القاهرة"
//	cairo.In(i18n.English) // "Cairo"
//
// # Language Resolution
//
// ParseLang accepts BCP 47 codes and common variants ("ar", "ar-EG", "en_US").
// ParseAcceptLanguage honors quality values in an Accept-Language header.
// Both use golang.org/x/text/language matching and fall back to English:
//
//	i18n.ParseLang("ar-EG")                           // Arabic
//	i18n.ParseAcceptLanguage("fr-FR,ar;q=0.8,en;q=0.5") // Arabic
//	i18n.ParseLang("de")                              // English
//
// # Placeholders
//
// Text.Format and ReplacePlaceholders substitute %{name} placeholders:
//
//	msg := i18n.T("يجب أن يتكون من %{n} رقمًا", "must have %{n} digits")
//	msg.Format(i18n.M{"n": 14}).English // "must have 14 digits"
package i18n
