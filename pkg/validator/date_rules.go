package validator

import (
	"fmt"
	"time"
)

// Layouts accepted for string dates, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// AsTime converts a time.Time, or a string in one of the ISO 8601 layouts,
// to a time.Time.
func AsTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func ValidDate(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			_, ok := AsTime(value)
			return ok
		},
		Error: newError(field, "isDate", "validation.date", "must be a valid date", nil),
	}
}

// DateAfter passes when the value is a date strictly after bound.
func DateAfter(field string, value any, bound time.Time) Rule {
	formatted := bound.Format(time.DateOnly)
	return Rule{
		Check: func() bool {
			t, ok := AsTime(value)
			return ok && t.After(bound)
		},
		Error: newError(field, "after", "validation.date_after",
			fmt.Sprintf("date must be after %s", formatted), map[string]any{"after": formatted}),
	}
}

// DateBefore passes when the value is a date strictly before bound.
func DateBefore(field string, value any, bound time.Time) Rule {
	formatted := bound.Format(time.DateOnly)
	return Rule{
		Check: func() bool {
			t, ok := AsTime(value)
			return ok && t.Before(bound)
		},
		Error: newError(field, "before", "validation.date_before",
			fmt.Sprintf("date must be before %s", formatted), map[string]any{"before": formatted}),
	}
}
