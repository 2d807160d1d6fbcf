package scheme

import "errors"

// Sentinel errors for scheme configuration
var (
	// Ranges
	ErrMinAboveMax          = errors.New("minimum should not be larger than maximum")
	ErrRangeTooLarge        = errors.New("range should not exceed 1e53")
	ErrNotFinite            = errors.New("value should be a finite number")
	ErrLengthTooLow         = errors.New("minimum length should be at least 1")
	ErrBaseOutOfRange       = errors.New("base should be between 2 and 36")
	ErrNegativeDecimalCount = errors.New("decimal count should not be negative")

	// Formatting
	ErrGroupingSeparatorLength = errors.New("grouping separator should be exactly one character")
	ErrDecimalSeparatorLength  = errors.New("decimal separator should be exactly one character")
	ErrUnknownCapitalization   = errors.New("unknown capitalization mode")
	ErrEmptyPattern            = errors.New("pattern should not be empty")
	ErrUnknownLocation         = errors.New("unknown time zone location")

	// Sources
	ErrNoSymbols              = errors.New("at least one symbol should be available")
	ErrNoWords                = errors.New("no word in the dictionary matches the length range")
	ErrUnsupportedUUIDVersion = errors.New("unsupported UUID version")

	// Registry and binding
	ErrUnknownKind        = errors.New("unknown scheme kind")
	ErrUnsupportedArgType = errors.New("field type cannot be set from text")
	ErrInvalidArgValue    = errors.New("invalid field value")
)
