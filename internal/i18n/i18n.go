// Package i18n holds the English and Hindi strings the dashboard shows.
// Every label function switches over its full enum; an unknown value falls
// back to the raw string so nothing renders blank.
package i18n

import "strings"

type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

func Languages() []Language {
	return []Language{English, Hindi}
}

func (l Language) Valid() bool {
	return l == English || l == Hindi
}

func ParseLanguage(s string) (Language, bool) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	return l, l.Valid()
}

// Text is one string in both languages.
type Text struct {
	En string
	Hi string
}

func (t Text) In(l Language) string {
	if l == Hindi && t.Hi != "" {
		return t.Hi
	}
	return t.En
}
