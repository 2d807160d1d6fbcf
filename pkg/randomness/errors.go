package randomness

import "errors"

// Sentinel errors shared by every generator
var (
	ErrNegativeCount = errors.New("count must not be negative")
	ErrShortBatch    = errors.New("generator returned wrong number of values")
)
