package validator

import "fmt"

// Min validates that a numeric value is greater than or equal to the minimum.
// Non-numeric values fail.
func Min(field string, value any, min float64) Rule {
	return Rule{
		Check: func() bool {
			f, ok := AsFloat(value)
			return ok && f >= min
		},
		Error: newError(field, "min", "validation.min",
			fmt.Sprintf("must be at least %v", min),
			map[string]any{"min": min}),
	}
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max(field string, value any, max float64) Rule {
	return Rule{
		Check: func() bool {
			f, ok := AsFloat(value)
			return ok && f <= max
		},
		Error: newError(field, "max", "validation.max",
			fmt.Sprintf("must be at most %v", max),
			map[string]any{"max": max}),
	}
}
