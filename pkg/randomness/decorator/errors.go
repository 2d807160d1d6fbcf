package decorator

import "errors"

var (
	// Affix
	ErrTrailingEscape = errors.New("descriptor ends with an unescaped escape character")

	// Fixed length
	ErrLengthTooLow = errors.New("length should be at least 1")
	ErrFillerLength = errors.New("filler should be exactly one character")

	// Array
	ErrMinCountTooLow = errors.New("minimum count should be at least 1")
	ErrMinAboveMax    = errors.New("minimum count should not be larger than maximum count")
	ErrBatchTooLarge  = errors.New("array batch exceeds the maximum number of elements")
)
