package params

import "errors"

var (
	// ErrRangeFormat indicates a serialized integer range with a missing or
	// non-numeric field.
	ErrRangeFormat = errors.New("params: malformed integer range")
	// ErrUnknownMode indicates a generation mode name that does not parse.
	ErrUnknownMode = errors.New("params: unknown generation mode")
	// ErrInvalidParameter indicates a parameter that normalization cannot
	// correct (negative radius, empty color set, unknown symmetry).
	ErrInvalidParameter = errors.New("params: invalid parameter")
)
