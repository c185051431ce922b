package validation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/dmitrymomot/attrvalid/pkg/async"
	"github.com/dmitrymomot/attrvalid/pkg/constraint"
	"github.com/dmitrymomot/attrvalid/pkg/logger"
	"github.com/dmitrymomot/attrvalid/pkg/schema"
	"github.com/dmitrymomot/attrvalid/pkg/validator"
)

// Values are the candidate values of one request. A missing key is treated
// as a nil value.
type Values map[string]any

// Validator evaluates request values against a compiled rule map.
//
// Validate is safe for concurrent use. Initialize replaces the rule map
// wholesale and must not run concurrently with Validate.
type Validator struct {
	rules        schema.RuleMap
	types        schema.TypeRegistry
	checker      *constraint.Checker
	logger       *slog.Logger
	compilerOpts []schema.CompilerOption
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger for fatal errors and per-request debug records.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithChecker replaces the default constraint checker.
func WithChecker(c *constraint.Checker) Option {
	return func(v *Validator) {
		if c != nil {
			v.checker = c
		}
	}
}

// WithCompilerOptions sets options applied on every Initialize call.
func WithCompilerOptions(opts ...schema.CompilerOption) Option {
	return func(v *Validator) {
		v.compilerOpts = append(v.compilerOpts, opts...)
	}
}

// WithTypes registers custom types available to every Initialize call.
func WithTypes(types schema.TypeRegistry) Option {
	return func(v *Validator) {
		maps.Copy(v.types, types)
	}
}

// New creates an uninitialized validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		types:   make(schema.TypeRegistry),
		checker: constraint.Default(),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(logger.Component("validation"))
	return v
}

// FromDefinitions creates a validator and initializes it with defs.
func FromDefinitions(defs schema.Definitions, opts ...Option) (*Validator, error) {
	v := New(opts...)
	if err := v.Initialize(defs, nil); err != nil {
		return nil, err
	}
	return v, nil
}

// Initialize compiles defs and replaces the current rule map. Custom types
// given here are added to those registered with WithTypes.
func (v *Validator) Initialize(defs schema.Definitions, types schema.TypeRegistry, opts ...schema.CompilerOption) error {
	registry := maps.Clone(v.types)
	maps.Copy(registry, types)

	compilerOpts := make([]schema.CompilerOption, 0, len(v.compilerOpts)+len(opts)+1)
	compilerOpts = append(compilerOpts, v.compilerOpts...)
	compilerOpts = append(compilerOpts, opts...)
	compilerOpts = append(compilerOpts, schema.WithTypes(registry))

	compiler := schema.NewCompiler(compilerOpts...)
	rules, err := compiler.Compile(defs)
	if err != nil {
		return err
	}

	v.rules = rules
	v.types = compiler.Types()
	return nil
}

// Rules returns the compiled rule map. It must be treated as read-only.
func (v *Validator) Rules() schema.RuleMap {
	return v.rules
}

// Validate evaluates the selected attributes concurrently. It returns a
// fatal error, or the per-attribute violations, or nil for both when the
// values are valid.
func (v *Validator) Validate(ctx context.Context, values Values, sel Selector) (Errors, error) {
	if v.rules == nil {
		return nil, ErrNotInitialized
	}

	start := time.Now()
	names := sel.resolve(v.rules, values)

	results, err := async.FanOut(ctx, names, func(_ context.Context, name string) (*AttributeError, error) {
		return v.evaluate(name, values)
	})
	if err != nil {
		if errors.Is(err, async.ErrPanic) {
			err = errors.Join(ErrCheckerFailed, err)
		}
		v.logger.ErrorContext(ctx, "validation aborted",
			logger.Selection(sel.Mode().String(), len(names)),
			logger.Outcome("fatal"),
			logger.Error(err),
		)
		return nil, err
	}

	errs := make(Errors)
	for _, r := range results {
		if r != nil {
			errs[r.Attribute] = r
		}
	}

	outcome := "valid"
	if len(errs) > 0 {
		outcome = "invalid"
	}
	v.logger.DebugContext(ctx, "validation finished",
		logger.Selection(sel.Mode().String(), len(names)),
		logger.Outcome(outcome),
		logger.Duration(time.Since(start)),
	)

	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}

// Check is Validate folded into a single error: nil, Errors or a fatal error.
func (v *Validator) Check(ctx context.Context, values Values, sel Selector) error {
	errs, err := v.Validate(ctx, values, sel)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *Validator) evaluate(name string, values Values) (*AttributeError, error) {
	rs := v.rules[name]
	if rs == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}

	rule, err := v.mergedRule(name, rs)
	if err != nil {
		return nil, err
	}

	value := values[name]
	violations, err := v.check(name, value, rule)
	if err != nil {
		return nil, err
	}

	for _, exempt := range exemptions {
		if exempt(rs, value) {
			return nil, nil
		}
	}

	if violations.IsEmpty() {
		return nil, nil
	}
	return &AttributeError{Attribute: name, Value: value, Violations: violations}, nil
}

// check runs the constraint checker, turning errors and panics raised by
// user-supplied predicates into fatal errors.
func (v *Validator) check(name string, value any, rule constraint.Rule) (violations validator.ValidationErrors, err error) {
	defer func() {
		if r := recover(); r != nil {
			violations = nil
			err = fmt.Errorf("%w: attribute %q: panic: %v", ErrCheckerFailed, name, r)
		}
	}()

	violations, err = v.checker.Check(name, value, rule)
	if err != nil {
		return nil, fmt.Errorf("%w: attribute %q: %w", ErrCheckerFailed, name, err)
	}
	return violations, nil
}

// baseRule derives the type check from the declared type.
func (v *Validator) baseRule(name string, rs *schema.RuleSet) (constraint.Rule, error) {
	switch rs.Type {
	case schema.TypeEmail:
		return constraint.Rule{"isEmail": true}, nil
	case schema.TypeBoolean:
		return constraint.Rule{"isBoolean": true}, nil
	case schema.TypeNumber, schema.TypeInteger, schema.TypeFloat:
		return constraint.Rule{"isNumber": true}, nil
	case schema.TypeJSON, schema.TypeString:
		return constraint.Rule{"isString": true}, nil
	}

	if check, ok := v.types.Lookup(rs.Type.String()); ok {
		return constraint.Rule{"custom": constraint.Predicate{Name: rs.Type.String(), Check: check}}, nil
	}
	if !rs.HasType {
		return nil, fmt.Errorf("%w: attribute %q declares no type", ErrUnknownType, name)
	}
	return nil, fmt.Errorf("%w: attribute %q has type %q", ErrUnknownType, name, rs.Type)
}

// mergedRule layers the attribute constraints over its base rule. A contains
// payload replaces the whole rule.
func (v *Validator) mergedRule(name string, rs *schema.RuleSet) (constraint.Rule, error) {
	base, err := v.baseRule(name, rs)
	if err != nil {
		return nil, err
	}

	if rs.HasContains {
		payload, ok := asRule(rs.Contains)
		if !ok {
			return nil, fmt.Errorf("%w: attribute %q: contains must be a rule mapping, got %T",
				ErrCheckerFailed, name, rs.Contains)
		}
		return payload, nil
	}

	rule := make(constraint.Rule, len(base)+len(rs.Constraints)+1)
	maps.Copy(rule, base)
	maps.Copy(rule, rs.Constraints)
	if rs.HasIn {
		rule["isIn"] = rs.In
	}
	return rule, nil
}

func asRule(v any) (constraint.Rule, bool) {
	switch r := v.(type) {
	case constraint.Rule:
		return maps.Clone(r), true
	case map[string]any:
		return constraint.Rule(maps.Clone(r)), true
	default:
		return nil, false
	}
}
