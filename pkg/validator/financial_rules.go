package validator

import "strings"

// ValidCreditCard validates a card number with the Luhn checksum. Spaces and
// dashes between digit groups are ignored.
func ValidCreditCard(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := AsString(value)
			return ok && luhn(strings.NewReplacer(" ", "", "-", "").Replace(s))
		},
		Error: newError(field, "isCreditCard", "validation.credit_card", "must be a valid credit card number", nil),
	}
}

func luhn(digits string) bool {
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
