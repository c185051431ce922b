package validation

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/attrvalid/pkg/validator"
)

// Fatal errors. Any of them aborts the whole request and no per-attribute
// errors are returned alongside.
var (
	ErrUnknownType      = errors.New("validation: unrecognized attribute type")
	ErrUnknownAttribute = errors.New("validation: attribute has no compiled rules")
	ErrCheckerFailed    = errors.New("validation: constraint checker failed")
	ErrNotInitialized   = errors.New("validation: validator is not initialized")
)

// AttributeError holds the violations recorded for one attribute together
// with the offending value.
type AttributeError struct {
	Attribute  string
	Value      any
	Violations validator.ValidationErrors
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Attribute, strings.Join(e.Violations.Rules(), ", "))
}

// Rules returns the names of the violated rules.
func (e *AttributeError) Rules() []string {
	return e.Violations.Rules()
}

// Errors maps attribute names to their violations. Key order carries no
// meaning; use Attributes for a stable listing.
type Errors map[string]*AttributeError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, name := range e.Attributes() {
		parts = append(parts, e[name].Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the attribute has at least one violation.
func (e Errors) Has(attribute string) bool {
	ae, ok := e[attribute]
	return ok && ae != nil
}

// Attributes returns the failing attribute names, sorted.
func (e Errors) Attributes() []string {
	return slices.Sorted(maps.Keys(e))
}

// Violation is the serializable form of a single rule violation.
type Violation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// AttributeReport is the serializable form of an AttributeError.
type AttributeReport struct {
	Value      any         `json:"value"`
	Violations []Violation `json:"violations"`
}

// Report converts the errors into a structure suitable for JSON output.
func (e Errors) Report() map[string]AttributeReport {
	return e.ReportWith(nil)
}

// Translate renders a violation message from its translation key and
// values. It reports false when it has no message for the key.
type Translate func(key string, values map[string]any) (string, bool)

// ReportWith works like Report but renders messages with translate,
// keeping the built-in message when translate has none.
func (e Errors) ReportWith(translate Translate) map[string]AttributeReport {
	report := make(map[string]AttributeReport, len(e))
	for name, ae := range e {
		violations := make([]Violation, 0, len(ae.Violations))
		for _, v := range ae.Violations {
			msg := v.Message
			if translate != nil && v.TranslationKey != "" {
				if translated, ok := translate(v.TranslationKey, v.TranslationValues); ok {
					msg = translated
				}
			}
			violations = append(violations, Violation{Rule: v.Rule, Message: msg})
		}
		report[name] = AttributeReport{Value: ae.Value, Violations: violations}
	}
	return report
}

// IsValidationError reports whether err carries per-attribute violations.
func IsValidationError(err error) bool {
	var errs Errors
	return errors.As(err, &errs)
}

// ExtractErrors returns the per-attribute violations carried by err, if any.
func ExtractErrors(err error) Errors {
	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}
