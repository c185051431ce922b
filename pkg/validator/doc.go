// Package validator provides rule-building utilities for loosely-typed record
// values: strings, numbers, booleans, dates, membership sets, formats and
// identifiers supplied as `any`.
//
// Every exported constructor returns a Rule that pairs a boolean Check
// function with translation-friendly error metadata. Rules are evaluated with
// Apply or Collect which aggregate failures into a ValidationErrors slice that
// satisfies the error interface.
//
// # Architecture
//
// Each source file groups a family of rules (`type_rules.go`,
// `string_rules.go`, `format_rules.go`, etc.). Values arrive untyped, so
// every rule first narrows the value with the helpers in `values.go`
// (AsString, AsFloat, Length, ToList, Equal) or AsTime; a value of the wrong kind
// simply fails the rule. There is no hidden global state and the package is
// goroutine-safe.
//
// Core building blocks:
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single failure, its rule name and i18n key
//   - ValidationErrors  – slice type that implements the error interface
//
// # Usage
//
//	err := validator.Apply(
//	    validator.IsString("email", values["email"]),
//	    validator.ValidEmail("email", values["email"]),
//	    validator.Min("age", values["age"], 18),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over rule-level messages or translate them
//	}
//
// # Semantics
//
// Strings are never numbers and numbers are never strings: IsNumber("12")
// fails. Booleans must be real booleans. Membership (InList) compares scalars
// by their string form, so 1 and "1" match.
package validator
