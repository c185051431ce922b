package validator

import "fmt"

// InList validates that the value equals one of the allowed values.
// Comparison is loose for scalars, see Equal.
func InList(field string, value any, allowedValues []any) Rule {
	return Rule{
		Check: func() bool {
			return contains(allowedValues, value)
		},
		Error: newError(field, "isIn", "validation.in_list",
			fmt.Sprintf("must be one of: %v", allowedValues),
			map[string]any{"allowed_values": allowedValues}),
	}
}

func NotInList(field string, value any, forbiddenValues []any) Rule {
	return Rule{
		Check: func() bool {
			return !contains(forbiddenValues, value)
		},
		Error: newError(field, "isNotIn", "validation.not_in_list",
			fmt.Sprintf("must not be one of: %v", forbiddenValues),
			map[string]any{"forbidden_values": forbiddenValues}),
	}
}

func contains(list []any, value any) bool {
	for _, item := range list {
		if Equal(item, value) {
			return true
		}
	}
	return false
}
