package constraint

import "errors"

var (
	// ErrUnknownRule is returned when a rule name has no registered builder.
	ErrUnknownRule = errors.New("constraint: unknown rule")

	// ErrInvalidParameter is returned when a rule parameter has the wrong shape.
	ErrInvalidParameter = errors.New("constraint: invalid rule parameter")
)
