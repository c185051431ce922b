package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no supported language can be negotiated.
const DefaultLanguage = "en"

// Headers longer than this are truncated before parsing.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the best supported language for an
// Accept-Language header. Tags are tried in quality order, first for an
// exact match (pt-br) and then for their base language (pt). Matching is
// case-insensitive and the result is lower-case.
func ParseAcceptLanguage(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return defaultLang
	}

	normalized := make([]string, len(supported))
	for i, lang := range supported {
		normalized[i] = strings.ToLower(lang)
	}

	for _, tag := range tags {
		if lang := strings.ToLower(tag.String()); slices.Contains(normalized, lang) {
			return lang
		}
	}
	for _, tag := range tags {
		base, confidence := tag.Base()
		if confidence == language.No {
			continue
		}
		if lang := strings.ToLower(base.String()); slices.Contains(normalized, lang) {
			return lang
		}
	}
	return defaultLang
}
