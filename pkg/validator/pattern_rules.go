package validator

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MatchesRegex validates a string against a precompiled pattern.
// Callers are expected to cache compiled patterns.
func MatchesRegex(field string, value any, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			s, ok := AsString(value)
			return ok && re.MatchString(s)
		},
		Error: newError(field, "regex", "validation.regex_pattern",
			"must match pattern "+re.String(),
			map[string]any{"pattern": re.String()}),
	}
}

// Lowercase validates that a string is unchanged by Unicode lower-casing.
func Lowercase(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := AsString(value)
			return ok && cases.Lower(language.Und).String(s) == s
		},
		Error: newError(field, "isLowercase", "validation.lowercase", "must be lowercase", nil),
	}
}

// Uppercase validates that a string is unchanged by Unicode upper-casing.
func Uppercase(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := AsString(value)
			return ok && cases.Upper(language.Und).String(s) == s
		},
		Error: newError(field, "isUppercase", "validation.uppercase", "must be uppercase", nil),
	}
}
