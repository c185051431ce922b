// Package validation evaluates record values against compiled attribute rules.
//
// A Validator is initialized once from a schema and then validates any
// number of requests. For each selected attribute it derives a base rule
// from the declared type (email, boolean, number, integer, float, json or
// string, or a registered custom type), layers the attribute's remaining
// constraints over it and runs the constraint checker. Three exemptions may
// then override a failed check:
//
//   - an attribute that is not required and has no value (nil or "") is skipped;
//   - a required boolean given as "true" or "false" is accepted;
//   - an integer attribute holding an object-id shaped value is accepted.
//
// Attributes are evaluated concurrently. The outcome is one of three:
// valid (nil, nil), invalid (Errors, nil) or fatal (nil, err). Fatal errors
// come from an unrecognized type, an attribute selected without compiled
// rules, or a checker failure; the first one aborts the request.
//
//	v, err := validation.FromDefinitions(schema.Definitions{
//		"name":  {"type": "string"},
//		"email": {"type": "email", "required": true},
//	})
//	if err != nil {
//		return err
//	}
//
//	errs, err := v.Validate(ctx, validation.Values{"name": "x"}, validation.All())
//	switch {
//	case err != nil:
//		// broken schema or checker
//	case errs != nil:
//		// errs["email"].Violations
//	}
//
// Selectors choose what is evaluated: All, Only(name), Subset(names...) and
// PresentOnly, or SelectorFrom for loosely typed input.
package validation
