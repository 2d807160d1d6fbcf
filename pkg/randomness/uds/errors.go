package uds

import (
	"errors"
	"fmt"

	"pkg.jsn.cam/randomness/pkg/randomness/scheme"
)

var (
	// Scanning
	ErrTrailingPercent     = errors.New("descriptor ends with a single '%'")
	ErrMissingArgList      = errors.New("placeholder type is not followed by '['")
	ErrMalformedArg        = errors.New("argument is not of the form key=value")
	ErrUnterminatedArgList = errors.New("argument list is not closed with ']'")

	// Resolution
	ErrUnknownType        = errors.New("unknown placeholder type")
	ErrUnsupportedArgType = scheme.ErrUnsupportedArgType
	ErrInvalidArgValue    = scheme.ErrInvalidArgValue
	ErrInvalidPlaceholder = errors.New("placeholder configuration is invalid")
)

// ParseError reports where in a descriptor parsing or resolution failed.
type ParseError struct {
	Pos int // byte offset into the descriptor
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("uds: at offset %d: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
