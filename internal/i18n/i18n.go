// Package i18n translates UI strings for the English and Burmese front ends.
// The language is resolved per request and travels in the request context.
package i18n

import (
	"context"

	"golang.org/x/text/language"
)

type Lang string

const (
	English Lang = "en"
	Burmese Lang = "my"
)

const DefaultLang = English

var supported = []language.Tag{
	language.English,
	language.MustParse("my"),
}

var supportedLangs = []Lang{English, Burmese}

var matcher = language.NewMatcher(supported)

var tables = map[Lang]map[string]string{
	Burmese: burmese,
}

type ctxKey struct{}

// ParseLang yalnızca desteklenen kodları kabul eder ("en", "my").
func ParseLang(code string) (Lang, bool) {
	for _, l := range supportedLangs {
		if string(l) == code {
			return l, true
		}
	}
	return "", false
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header value.
func MatchAcceptLanguage(header string) Lang {
	if header == "" {
		return DefaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	return supportedLangs[idx]
}

func WithLang(ctx context.Context, lang Lang) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

func FromContext(ctx context.Context) Lang {
	if ctx == nil {
		return DefaultLang
	}
	if l, ok := ctx.Value(ctxKey{}).(Lang); ok {
		return l
	}
	return DefaultLang
}

// Translate: bilinmeyen anahtar veya dil için metnin kendisini döner
func Translate(lang Lang, text string) string {
	if t, ok := tables[lang][text]; ok {
		return t
	}
	return text
}

func T(ctx context.Context, text string) string {
	return Translate(FromContext(ctx), text)
}

// Table returns the full lookup for lang; English maps every key to itself.
func Table(lang Lang) map[string]string {
	out := make(map[string]string, len(burmese))
	for k := range burmese {
		out[k] = Translate(lang, k)
	}
	return out
}
