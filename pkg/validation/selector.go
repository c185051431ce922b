package validation

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/attrvalid/pkg/schema"
	"github.com/dmitrymomot/attrvalid/pkg/validator"
)

// Mode decides which compiled attributes a request evaluates.
type Mode int

const (
	ModeAll Mode = iota
	ModeSingle
	ModeSubset
	ModePresentOnly
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeSingle:
		return "single"
	case ModeSubset:
		return "subset"
	case ModePresentOnly:
		return "present_only"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Selector picks the attributes evaluated by one request.
// The zero value selects every attribute.
type Selector struct {
	mode  Mode
	names []string
}

// All selects every compiled attribute.
func All() Selector {
	return Selector{mode: ModeAll}
}

// Only selects exactly one attribute. Selecting an attribute without
// compiled rules is a fatal error.
func Only(name string) Selector {
	return Selector{mode: ModeSingle, names: []string{name}}
}

// Subset selects the named attributes that have compiled rules; unknown
// names are ignored.
func Subset(names ...string) Selector {
	return Selector{mode: ModeSubset, names: slices.Clone(names)}
}

// PresentOnly selects the compiled attributes whose key is present in the
// request values, whatever the value.
func PresentOnly() Selector {
	return Selector{mode: ModePresentOnly}
}

// SelectorFrom maps a loosely-typed selector: nil, false and the empty
// string select all, a string selects one attribute, a list selects a
// subset and any other truthy value selects present attributes only.
func SelectorFrom(v any) Selector {
	switch s := v.(type) {
	case Selector:
		return s
	case string:
		if s == "" {
			return All()
		}
		return Only(s)
	case []string:
		return Subset(s...)
	}

	if list, ok := validator.ToList(v); ok {
		names := make([]string, 0, len(list))
		for _, item := range list {
			names = append(names, fmt.Sprint(item))
		}
		return Subset(names...)
	}
	if validator.Truthy(v) {
		return PresentOnly()
	}
	return All()
}

func (s Selector) Mode() Mode {
	return s.mode
}

// Names returns the attribute names given to Only or Subset.
func (s Selector) Names() []string {
	return slices.Clone(s.names)
}

// resolve returns the sorted attribute names to evaluate.
func (s Selector) resolve(rules schema.RuleMap, values Values) []string {
	switch s.mode {
	case ModeSingle:
		return s.names
	case ModeSubset:
		names := make([]string, 0, len(s.names))
		for _, name := range s.names {
			if _, ok := rules[name]; ok && !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
		slices.Sort(names)
		return names
	case ModePresentOnly:
		names := make([]string, 0, len(values))
		for _, name := range rules.Names() {
			if _, ok := values[name]; ok {
				names = append(names, name)
			}
		}
		return names
	default:
		return rules.Names()
	}
}
