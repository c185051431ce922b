package validation

import (
	"fmt"

	"github.com/dmitrymomot/attrvalid/pkg/schema"
	"github.com/dmitrymomot/attrvalid/pkg/validator"
)

// exemption overrides the checker verdict for one attribute. It runs after
// the constraint check and reports whether the attribute is valid anyway.
type exemption func(rs *schema.RuleSet, value any) bool

// exemptions are applied in order; the first match wins.
var exemptions = []exemption{
	optionalEmpty,
	booleanString,
	identifierInteger,
}

// optionalEmpty skips attributes that are not required and carry no value.
func optionalEmpty(rs *schema.RuleSet, value any) bool {
	if rs.Required {
		return false
	}
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

// booleanString accepts "true" and "false" for required boolean attributes,
// whether given as strings or as booleans.
func booleanString(rs *schema.RuleSet, value any) bool {
	if !rs.Required || rs.Type != schema.TypeBoolean || value == nil {
		return false
	}
	s := fmt.Sprint(value)
	return s == "true" || s == "false"
}

// identifierInteger accepts object-id shaped values for integer attributes.
func identifierInteger(rs *schema.RuleSet, value any) bool {
	return rs.Type == schema.TypeInteger && validator.IsObjectID(value)
}
