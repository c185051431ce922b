package schema

import "errors"

var (
	// ErrNilDefinitions is returned when Compile receives no schema at all.
	ErrNilDefinitions = errors.New("schema: nil attribute definitions")

	// ErrInvalidDefinition is returned when an attribute declaration has the wrong shape.
	ErrInvalidDefinition = errors.New("schema: invalid attribute definition")

	// ErrReadSchema is returned when a schema file cannot be read.
	ErrReadSchema = errors.New("schema: failed to read schema file")

	// ErrParseSchema is returned when a schema document cannot be decoded.
	ErrParseSchema = errors.New("schema: failed to parse schema document")
)
