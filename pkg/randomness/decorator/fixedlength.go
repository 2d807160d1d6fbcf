package decorator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"pkg.jsn.cam/randomness/pkg/randomness"
)

// FixedLengthDecorator forces every value to exactly Length characters,
// keeping the leading characters of long values and left-padding short ones
// with Filler.
type FixedLengthDecorator struct {
	Enabled bool   `json:"enabled"`
	Length  int    `json:"length"`
	Filler  string `json:"filler"`
}

// NewFixedLengthDecorator returns a disabled decorator padding to 3 with '0'.
func NewFixedLengthDecorator() FixedLengthDecorator {
	return FixedLengthDecorator{Length: 3, Filler: "0"}
}

// Decorate implements Decorator.
func (d FixedLengthDecorator) Decorate(g randomness.Generator, _ *rand.Rand) randomness.Generator {
	if !d.Enabled {
		return g
	}
	length := d.Length
	filler, _ := utf8.DecodeRuneInString(d.Filler)
	return randomness.Map(g, func(value string) string {
		return fixLength(value, length, filler)
	})
}

// Validate implements Decorator.
func (d FixedLengthDecorator) Validate() error {
	if d.Length < 1 {
		return fmt.Errorf("%w: got %d", ErrLengthTooLow, d.Length)
	}
	if utf8.RuneCountInString(d.Filler) != 1 {
		return fmt.Errorf("%w: got %q", ErrFillerLength, d.Filler)
	}
	return nil
}

func fixLength(value string, length int, filler rune) string {
	runes := []rune(value)
	if len(runes) >= length {
		return string(runes[:length])
	}
	return strings.Repeat(string(filler), length-len(runes)) + value
}
