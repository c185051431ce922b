// Package constraint implements the constraint-checking primitive used by the
// attribute validator: given one candidate value and a merged rule (rule name
// mapped to parameter) it returns the list of violations.
//
//	violations, err := constraint.Check("name", "x", constraint.Rule{
//	    "isString": true,
//	    "length":   map[string]any{"min": 2, "max": 5},
//	})
//
// Rules are evaluated in sorted name order so the violation list is
// deterministic. A parameter of literal false disables its rule.
//
// Check returns an error, and no violations, when a rule name is unknown
// (ErrUnknownRule) or a parameter has an unsupported shape
// (ErrInvalidParameter). Callers treat those errors as fatal: they describe a
// broken schema, not a bad value.
//
// Built-in rules:
//
//	isEmail isBoolean isNumber isInteger isString isNotEmptyString isNull
//	isURL isUUID isIP isHexColor isAlphanumeric isLowercase isUppercase
//	isObjectId isDate isCreditCard              boolean flag
//	min max                                     number
//	minLength maxLength                         non-negative integer
//	length (len)                                integer or {min, max}
//	isIn isNotIn (notIn)                        list
//	before after (isBefore isAfter)             date or ISO 8601 string
//	regex                                       string or *regexp.Regexp
//	custom                                      func(any) bool or Predicate
//
// Short aliases (email, url, uuid, ip, hexColor, alphanumeric, lowercase,
// uppercase, notEmpty, date, creditCard) map onto the flag rules. Extra
// rules are registered with WithRule.
package constraint
