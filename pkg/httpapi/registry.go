package httpapi

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/attrvalid/pkg/schema"
	"github.com/dmitrymomot/attrvalid/pkg/validation"
)

// Registry maps model names to their initialized validators.
type Registry map[string]*validation.Validator

// NewRegistry builds one validator per model. Every validator receives the
// same options.
func NewRegistry(models map[string]schema.Definitions, opts ...validation.Option) (Registry, error) {
	reg := make(Registry, len(models))
	for name, defs := range models {
		v, err := validation.FromDefinitions(defs, opts...)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", name, err)
		}
		reg[name] = v
	}
	return reg, nil
}

// Names returns the registered model names, sorted.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}
