package constraint

import (
	"fmt"
	"maps"
	"regexp"
	"slices"

	"github.com/dmitrymomot/attrvalid/pkg/cache"
	"github.com/dmitrymomot/attrvalid/pkg/validator"
)

const defaultRegexCacheSize = 128

// Rule is a merged rule: rule name mapped to its parameter.
type Rule map[string]any

// Names returns the rule names in evaluation order.
func (r Rule) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// Builder turns one rule parameter into a validator.Rule for the given value.
// It returns an error when the parameter shape is not supported.
type Builder func(c *Checker, field string, value any, param any) (validator.Rule, error)

// Predicate is a named custom check. The name is reported as the violated rule.
type Predicate struct {
	Name  string
	Check func(value any) bool
}

// Checker evaluates merged rules against single values.
// It is safe for concurrent use once constructed.
type Checker struct {
	builders  map[string]Builder
	cacheSize int
	patterns  *cache.LRUCache[string, *regexp.Regexp]
}

// Option configures a Checker.
type Option func(*Checker)

// WithRegexCacheSize sets how many compiled regex patterns are kept.
// Non-positive sizes are ignored.
func WithRegexCacheSize(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.cacheSize = n
		}
	}
}

// WithRule registers or overrides a rule builder.
func WithRule(name string, b Builder) Option {
	return func(c *Checker) {
		if name != "" && b != nil {
			c.builders[name] = b
		}
	}
}

// NewChecker returns a checker with the built-in rule catalogue.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		builders:  builtinRules(),
		cacheSize: defaultRegexCacheSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.patterns = cache.NewLRUCache[string, *regexp.Regexp](c.cacheSize)
	return c
}

// Has reports whether a rule name is known to the checker.
func (c *Checker) Has(name string) bool {
	_, ok := c.builders[name]
	return ok
}

// Check evaluates every rule in sorted name order and returns the violations.
// A parameter of literal false disables the rule. Unknown rule names and
// malformed parameters are returned as errors and no violations are reported.
func (c *Checker) Check(field string, value any, rule Rule) (validator.ValidationErrors, error) {
	rules := make([]validator.Rule, 0, len(rule))
	for _, name := range rule.Names() {
		build, ok := c.builders[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}

		param := rule[name]
		if disabled, isBool := param.(bool); isBool && !disabled {
			continue
		}

		r, err := build(c, field, value, param)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidParameter, name, err)
		}
		rules = append(rules, r)
	}
	return validator.Collect(rules...), nil
}

// CacheStats reports the compiled pattern cache counters.
func (c *Checker) CacheStats() cache.Stats {
	return c.patterns.Stats()
}

// pattern compiles a regex once and serves it from the LRU afterwards.
func (c *Checker) pattern(expr string) (*regexp.Regexp, error) {
	if re, ok := c.patterns.Get(expr); ok {
		return re, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	c.patterns.Put(expr, re)
	return re, nil
}

var defaultChecker = NewChecker()

// Check evaluates the rule with the package default checker.
func Check(field string, value any, rule Rule) (validator.ValidationErrors, error) {
	return defaultChecker.Check(field, value, rule)
}

// Default returns the package default checker.
func Default() *Checker {
	return defaultChecker
}
