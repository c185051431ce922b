package constraint

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/dmitrymomot/attrvalid/pkg/validator"
)

// flag rules take a boolean parameter; true enables them.
var flagRules = map[string]func(field string, value any) validator.Rule{
	"isEmail":          validator.ValidEmail,
	"isBoolean":        validator.IsBoolean,
	"isNumber":         validator.IsNumber,
	"isInteger":        validator.IsInteger,
	"isString":         validator.IsString,
	"isNotEmptyString": validator.NotEmptyString,
	"isNull":           validator.IsNull,
	"isURL":            validator.ValidURL,
	"isUUID":           validator.ValidUUID,
	"isIP":             validator.ValidIP,
	"isHexColor":       validator.ValidHexColor,
	"isAlphanumeric":   validator.ValidAlphanumeric,
	"isLowercase":      validator.Lowercase,
	"isUppercase":      validator.Uppercase,
	"isObjectId":       validator.ValidObjectID,
	"isDate":           validator.ValidDate,
	"isCreditCard":     validator.ValidCreditCard,
}

// aliases maps the short attribute-style names onto the catalogue.
var aliases = map[string]string{
	"email":        "isEmail",
	"url":          "isURL",
	"uuid":         "isUUID",
	"ip":           "isIP",
	"hexColor":     "isHexColor",
	"alphanumeric": "isAlphanumeric",
	"lowercase":    "isLowercase",
	"uppercase":    "isUppercase",
	"notEmpty":     "isNotEmptyString",
	"date":         "isDate",
	"creditCard":   "isCreditCard",
	"len":          "length",
	"notIn":        "isNotIn",
	"isBefore":     "before",
	"isAfter":      "after",
}

func builtinRules() map[string]Builder {
	rules := make(map[string]Builder, len(flagRules)+len(aliases)+8)
	for name, fn := range flagRules {
		rules[name] = flag(fn)
	}

	rules["min"] = buildMin
	rules["max"] = buildMax
	rules["minLength"] = buildMinLength
	rules["maxLength"] = buildMaxLength
	rules["length"] = buildLength
	rules["isIn"] = buildIn
	rules["isNotIn"] = buildNotIn
	rules["regex"] = buildRegex
	rules["before"] = buildBefore
	rules["after"] = buildAfter
	rules["custom"] = buildCustom

	for alias, target := range aliases {
		rules[alias] = rules[target]
	}
	return rules
}

func flag(fn func(field string, value any) validator.Rule) Builder {
	return func(_ *Checker, field string, value any, param any) (validator.Rule, error) {
		if _, ok := param.(bool); !ok {
			return validator.Rule{}, fmt.Errorf("expected boolean, got %T", param)
		}
		return fn(field, value), nil
	}
}

func buildMin(_ *Checker, field string, value any, param any) (validator.Rule, error) {
	bound, ok := validator.AsFloat(param)
	if !ok {
		return validator.Rule{}, fmt.Errorf("expected number, got %T", param)
	}
	return validator.Min(field, value, bound), nil
}

func buildMax(_ *Checker, field string, value any, param any) (validator.Rule, error) {
	bound, ok := validator.AsFloat(param)
	if !ok {
		return validator.Rule{}, fmt.Errorf("expected number, got %T", param)
	}
	return validator.Max(field, value, bound), nil
}

func buildMinLength(_ *Checker, field string, value any, param any) (validator.Rule, error) {
	n, err := count(param)
	if err != nil {
		return validator.Rule{}, err
	}
	return validator.MinLen(field, value, n), nil
}

func buildMaxLength(_ *Checker, field string, value any, param any) (validator.Rule, error) {
	n, err := count(param)
	if err != nil {
		return validator.Rule{}, err
	}
	return validator.MaxLen(field, value, n), nil
}

// buildLength accepts an exact count or a {min, max} bounds map of any
// value type.
func buildLength(_ *Checker, field string, value any, param any) (validator.Rule, error) {
	if bounds, ok := validator.ToMap(param); ok {
		min, max := -1, -1
		for key, raw := range bounds {
			n, err := count(raw)
			if err != nil {
				return validator.Rule{}, fmt.Errorf("%s: %w", key, err)
			}
			switch key {
			case "min":
				min = n
			case "max":
				max = n
			default:
				return validator.Rule{}, fmt.Errorf("unexpected bound %q", key)
			}
		}
		return validator.LenBetween(field, value, min, max), nil
	}

	n, err := count(param)
	if err != nil {
		return validator.Rule{}, err
	}
	return validator.Len(field, value, n), nil
}

func buildBefore(_ *Checker, field string, value any, param any) (validator.Rule, error) {
	bound, ok := validator.AsTime(param)
	if !ok {
		return validator.Rule{}, fmt.Errorf("expected date, got %v", param)
	}
	return validator.DateBefore(field, value, bound), nil
}

func buildAfter(_ *Checker, field string, value any, param any) (validator.Rule, error) {
	bound, ok := validator.AsTime(param)
	if !ok {
		return validator.Rule{}, fmt.Errorf("expected date, got %v", param)
	}
	return validator.DateAfter(field, value, bound), nil
}

func buildIn(_ *Checker, field string, value any, param any) (validator.Rule, error) {
	list, ok := validator.ToList(param)
	if !ok {
		return validator.Rule{}, fmt.Errorf("expected list, got %T", param)
	}
	return validator.InList(field, value, list), nil
}

func buildNotIn(_ *Checker, field string, value any, param any) (validator.Rule, error) {
	list, ok := validator.ToList(param)
	if !ok {
		return validator.Rule{}, fmt.Errorf("expected list, got %T", param)
	}
	return validator.NotInList(field, value, list), nil
}

func buildRegex(c *Checker, field string, value any, param any) (validator.Rule, error) {
	switch p := param.(type) {
	case *regexp.Regexp:
		if p == nil {
			return validator.Rule{}, errors.New("nil pattern")
		}
		return validator.MatchesRegex(field, value, p), nil
	case string:
		re, err := c.pattern(p)
		if err != nil {
			return validator.Rule{}, err
		}
		return validator.MatchesRegex(field, value, re), nil
	default:
		return validator.Rule{}, fmt.Errorf("expected pattern, got %T", param)
	}
}

func buildCustom(_ *Checker, field string, value any, param any) (validator.Rule, error) {
	switch p := param.(type) {
	case Predicate:
		if p.Check == nil {
			return validator.Rule{}, errors.New("predicate without check")
		}
		name := p.Name
		if name == "" {
			name = "custom"
		}
		return validator.Custom(field, name, value, p.Check), nil
	case func(any) bool:
		if p == nil {
			return validator.Rule{}, errors.New("nil predicate")
		}
		return validator.Custom(field, "custom", value, p), nil
	default:
		return validator.Rule{}, fmt.Errorf("expected predicate, got %T", param)
	}
}

// count converts a parameter into a non-negative whole number.
func count(param any) (int, error) {
	f, ok := validator.AsFloat(param)
	if !ok || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, fmt.Errorf("expected non-negative integer, got %v", param)
	}
	return int(f), nil
}
