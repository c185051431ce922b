package validator

import (
	"math"
	"strings"
)

// IsString validates that the value is string-typed.
func IsString(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			_, ok := AsString(value)
			return ok
		},
		Error: newError(field, "isString", "validation.string", "must be a string", nil),
	}
}

// NotEmptyString validates that the value is a string with non-whitespace content.
func NotEmptyString(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := AsString(value)
			return ok && strings.TrimSpace(s) != ""
		},
		Error: newError(field, "isNotEmptyString", "validation.required", "field is required", nil),
	}
}

// IsBoolean validates that the value is a real boolean, not its string form.
func IsBoolean(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			_, ok := value.(bool)
			return ok
		},
		Error: newError(field, "isBoolean", "validation.boolean", "must be a boolean", nil),
	}
}

// IsNumber validates that the value is numeric. Numeric strings do not pass.
func IsNumber(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			_, ok := AsFloat(value)
			return ok
		},
		Error: newError(field, "isNumber", "validation.number", "must be a number", nil),
	}
}

// IsInteger validates that the value is numeric and has no fractional part.
func IsInteger(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			f, ok := AsFloat(value)
			return ok && !math.IsInf(f, 0) && f == math.Trunc(f)
		},
		Error: newError(field, "isInteger", "validation.integer", "must be an integer", nil),
	}
}

// IsNull validates that no value was supplied.
func IsNull(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return value == nil
		},
		Error: newError(field, "isNull", "validation.null", "must be empty", nil),
	}
}

// Custom adapts a caller-supplied predicate into a rule reported under ruleName.
func Custom(field, ruleName string, value any, fn func(any) bool) Rule {
	return Rule{
		Check: func() bool {
			return fn(value)
		},
		Error: newError(field, ruleName, "validation.custom", "is invalid", map[string]any{
			"rule": ruleName,
		}),
	}
}
