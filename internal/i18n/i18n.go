// Package i18n resolves dotted translation keys (e.g. "login.username")
// against embedded per-language tables. Lookup never fails: a key missing
// from the active table comes back verbatim so the UI always has something
// to render.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	LangEnglish = "en"
	LangArabic  = "ar"

	// DefaultLanguage is used when no language cookie is present or the
	// requested code is unknown.
	DefaultLanguage = LangEnglish
)

// CookieName is where the active language code persists between requests.
const CookieName = "lang"

// Bundle holds the parsed translation tables for all supported languages.
type Bundle struct {
	tables map[string]map[string]any
}

// NewBundle parses the embedded locale files. The embedded tables are part
// of the build, so a parse failure is a programming error.
func NewBundle() (*Bundle, error) {
	b := &Bundle{tables: make(map[string]map[string]any)}
	for _, lang := range []string{LangEnglish, LangArabic} {
		raw, err := localeFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		var table map[string]any
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		b.tables[lang] = table
	}
	return b, nil
}

// Normalize maps an arbitrary language code to a supported one.
func (b *Bundle) Normalize(lang string) string {
	if _, ok := b.tables[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

// T resolves a dotted key in the given language. Unknown languages fall back
// to the default table; missing keys return the key itself.
func (b *Bundle) T(lang, key string) string {
	table := b.tables[b.Normalize(lang)]

	var value any = table
	for _, part := range strings.Split(key, ".") {
		m, ok := value.(map[string]any)
		if !ok {
			return key
		}
		value, ok = m[part]
		if !ok {
			return key
		}
	}

	s, ok := value.(string)
	if !ok {
		return key
	}
	return s
}

// Table returns the whole translation table for a language, for clients that
// want to resolve keys locally.
func (b *Bundle) Table(lang string) map[string]any {
	return b.tables[b.Normalize(lang)]
}

// Dir is the document text direction for a language.
func Dir(lang string) string {
	if lang == LangArabic {
		return "rtl"
	}
	return "ltr"
}

// Toggle flips between the two supported languages.
func Toggle(lang string) string {
	if lang == LangArabic {
		return LangEnglish
	}
	return LangArabic
}
