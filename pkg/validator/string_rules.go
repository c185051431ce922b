package validator

import "fmt"

// MinLen validates that a string (in runes) or collection has at least min elements.
func MinLen(field string, value any, min int) Rule {
	return Rule{
		Check: func() bool {
			n, ok := Length(value)
			return ok && n >= min
		},
		Error: newError(field, "minLength", "validation.min_length",
			fmt.Sprintf("must be at least %d characters long", min),
			map[string]any{"min": min}),
	}
}

func MaxLen(field string, value any, max int) Rule {
	return Rule{
		Check: func() bool {
			n, ok := Length(value)
			return ok && n <= max
		},
		Error: newError(field, "maxLength", "validation.max_length",
			fmt.Sprintf("must be at most %d characters long", max),
			map[string]any{"max": max}),
	}
}

func Len(field string, value any, exact int) Rule {
	return Rule{
		Check: func() bool {
			n, ok := Length(value)
			return ok && n == exact
		},
		Error: newError(field, "length", "validation.exact_length",
			fmt.Sprintf("must be exactly %d characters long", exact),
			map[string]any{"length": exact}),
	}
}

// LenBetween validates an inclusive length range. A negative bound is open.
func LenBetween(field string, value any, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n, ok := Length(value)
			if !ok {
				return false
			}
			if min >= 0 && n < min {
				return false
			}
			return max < 0 || n <= max
		},
		Error: newError(field, "length", "validation.length_between",
			lengthMessage(min, max),
			map[string]any{"min": min, "max": max}),
	}
}

func lengthMessage(min, max int) string {
	switch {
	case min >= 0 && max >= 0:
		return fmt.Sprintf("must be between %d and %d characters long", min, max)
	case min >= 0:
		return fmt.Sprintf("must be at least %d characters long", min)
	case max >= 0:
		return fmt.Sprintf("must be at most %d characters long", max)
	default:
		return "has an invalid length"
	}
}
