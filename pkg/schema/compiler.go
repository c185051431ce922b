package schema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/attrvalid/pkg/validator"
)

// reservedProperties are schema, relationship and storage properties that
// are never validation rules.
var reservedProperties = []string{
	"defaultsTo",
	"primaryKey",
	"autoIncrement",
	"unique",
	"index",
	"collection",
	"dominant",
	"through",
	"columnName",
	"foreignKey",
	"references",
	"on",
	"groupKey",
	"model",
	"via",
	"size",
	"example",
	"validationMessage",
	"validations",
	"populateSettings",
	"onKey",
	"protected",
	"meta",
}

// DefaultReservedProperties returns a copy of the built-in reserved list.
func DefaultReservedProperties() []string {
	return slices.Clone(reservedProperties)
}

// Compiler turns raw attribute definitions into a RuleMap.
// The reserved set is fixed at construction and owned by the instance.
type Compiler struct {
	reserved map[string]struct{}
	types    TypeRegistry
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithIgnoreProperties extends the reserved set with caller-supplied names.
func WithIgnoreProperties(names ...string) CompilerOption {
	return func(c *Compiler) {
		for _, name := range names {
			if name != "" {
				c.reserved[name] = struct{}{}
			}
		}
	}
}

// WithTypes registers custom types for later rule resolution.
func WithTypes(types TypeRegistry) CompilerOption {
	return func(c *Compiler) {
		for name, check := range types {
			if check != nil {
				c.types[name] = check
			}
		}
	}
}

// NewCompiler creates a compiler with the built-in reserved properties.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		reserved: make(map[string]struct{}, len(reservedProperties)),
		types:    make(TypeRegistry),
	}
	for _, name := range reservedProperties {
		c.reserved[name] = struct{}{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsReserved reports whether a property is stripped during compilation.
func (c *Compiler) IsReserved(name string) bool {
	_, ok := c.reserved[name]
	return ok
}

// Types returns a copy of the registered custom types.
func (c *Compiler) Types() TypeRegistry {
	return maps.Clone(c.types)
}

// Compile builds one RuleSet per attribute. Null values and reserved
// properties are dropped, enum becomes the in membership rule, and every
// other property is copied verbatim. Unknown rule names are accepted here;
// their interpretation is left to evaluation.
func (c *Compiler) Compile(defs Definitions) (RuleMap, error) {
	if defs == nil {
		return nil, ErrNilDefinitions
	}

	rules := make(RuleMap, len(defs))
	for attr, def := range defs {
		if def == nil {
			return nil, fmt.Errorf("%w: %q has no declaration", ErrInvalidDefinition, attr)
		}
		rs, err := c.compileAttribute(def)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDefinition, attr, err)
		}
		rules[attr] = rs
	}
	return rules, nil
}

func (c *Compiler) compileAttribute(def Definition) (*RuleSet, error) {
	rs := &RuleSet{Constraints: make(map[string]any)}

	// Sorted so that an explicit in always wins over enum.
	for _, prop := range slices.Sorted(maps.Keys(def)) {
		value := def[prop]
		if value == nil || c.IsReserved(prop) {
			continue
		}

		switch prop {
		case RuleType:
			name, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("type must be a string, got %T", value)
			}
			rs.Type, rs.HasType = Type(name), true
		case RuleRequired:
			rs.Required, rs.HasRequired = validator.Truthy(value), true
		case RuleEnum, RuleIn:
			rs.In, rs.HasIn = value, true
		case RuleEquals:
			rs.Equals, rs.HasEquals = value, true
		case RuleContains:
			rs.Contains, rs.HasContains = value, true
		case RuleSpecial:
			rs.Special, rs.HasSpecial = value, true
		default:
			rs.Constraints[prop] = value
		}
	}
	return rs, nil
}
