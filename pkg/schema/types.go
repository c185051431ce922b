package schema

import (
	"maps"
	"slices"
)

// Definition is one attribute's raw declaration: property name to value.
type Definition map[string]any

// Definitions is a raw attribute schema keyed by attribute name.
type Definitions map[string]Definition

// Type is a declared attribute type.
type Type string

const (
	TypeEmail   Type = "email"
	TypeBoolean Type = "boolean"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeFloat   Type = "float"
	TypeJSON    Type = "json"
	TypeString  Type = "string"
)

// Types lists the built-in attribute types.
func Types() []Type {
	return []Type{TypeEmail, TypeBoolean, TypeNumber, TypeInteger, TypeFloat, TypeJSON, TypeString}
}

// Valid reports whether t is one of the built-in types.
func (t Type) Valid() bool {
	return slices.Contains(Types(), t)
}

func (t Type) String() string {
	return string(t)
}

// TypeCheck reports whether a value belongs to a custom type.
type TypeCheck func(value any) bool

// TypeRegistry holds named custom types resolvable from an attribute's type.
type TypeRegistry map[string]TypeCheck

// Lookup returns the check registered under name.
func (r TypeRegistry) Lookup(name string) (TypeCheck, bool) {
	check, ok := r[name]
	return check, ok && check != nil
}

// Rule names with a dedicated RuleSet field.
const (
	RuleType     = "type"
	RuleRequired = "required"
	RuleIn       = "in"
	RuleEnum     = "enum"
	RuleEquals   = "equals"
	RuleContains = "contains"
	RuleSpecial  = "special"
)

// RuleSet is the compiled, validation-only view of one attribute.
// Type is kept for base-rule derivation; Constraints holds every other rule
// verbatim, keyed by the declared name.
type RuleSet struct {
	Type    Type
	HasType bool

	Required    bool
	HasRequired bool

	In    any
	HasIn bool

	Equals    any
	HasEquals bool

	Contains    any
	HasContains bool

	Special    any
	HasSpecial bool

	Constraints map[string]any
}

// Keys returns the sorted rule names present in the set.
func (r *RuleSet) Keys() []string {
	keys := slices.Collect(maps.Keys(r.Constraints))
	if r.HasType {
		keys = append(keys, RuleType)
	}
	if r.HasRequired {
		keys = append(keys, RuleRequired)
	}
	if r.HasIn {
		keys = append(keys, RuleIn)
	}
	if r.HasEquals {
		keys = append(keys, RuleEquals)
	}
	if r.HasContains {
		keys = append(keys, RuleContains)
	}
	if r.HasSpecial {
		keys = append(keys, RuleSpecial)
	}
	slices.Sort(keys)
	return keys
}

// RuleMap maps attribute names to their compiled rules.
type RuleMap map[string]*RuleSet

// Names returns attribute names in a stable, sorted order.
func (m RuleMap) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// Has reports whether name has a compiled rule set.
func (m RuleMap) Has(name string) bool {
	rs, ok := m[name]
	return ok && rs != nil
}
