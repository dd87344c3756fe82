// Package locale holds the closed set of supported locales and the
// per-locale generator strategies used to synthesize catalog text.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the supported catalog locales.
type Locale string

const (
	English Locale = "en"
	Turkish Locale = "tr"
	Russian Locale = "ru"
	Chinese Locale = "zh"

	// Default substitutes for any unknown locale code.
	Default = English
)

// All lists the supported locales in display order.
var All = []Locale{English, Turkish, Russian, Chinese}

func (l Locale) String() string { return string(l) }

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	for _, known := range All {
		if l == known {
			return true
		}
	}
	return false
}

// Tag returns the BCP 47 tag for l.
func (l Locale) Tag() language.Tag {
	switch l {
	case Turkish:
		return language.Turkish
	case Russian:
		return language.Russian
	case Chinese:
		return language.SimplifiedChinese
	default:
		return language.AmericanEnglish
	}
}

// Parse maps a locale code to a supported Locale. Plain codes ("tr") and
// BCP 47 tags ("zh-CN", "en-US") are accepted; anything else yields Default.
func Parse(code string) Locale {
	code = strings.ToLower(strings.TrimSpace(code))
	if l := Locale(code); l.Valid() {
		return l
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Default
	}
	base, _ := tag.Base()
	if l := Locale(base.String()); l.Valid() {
		return l
	}
	return Default
}
