package decorator

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"pkg.jsn.cam/randomness/pkg/randomness"
)

// newlineSeparator is the two-character escape users type for a line break.
const newlineSeparator = `\n`

// ArrayDecorator turns each value into an array of values drawn from the
// wrapped generator.
//
// One element count is sampled per batch, so all arrays of a batch have the
// same size.
type ArrayDecorator struct {
	Enabled             bool           `json:"enabled"`
	MinCount            int            `json:"minCount"`
	MaxCount            int            `json:"maxCount"`
	Separator           string         `json:"separator"`
	SpaceAfterSeparator bool           `json:"spaceAfterSeparator"`
	Affix               AffixDecorator `json:"affixDecorator"`
}

// NewArrayDecorator returns a disabled decorator producing "[a, b, c]".
func NewArrayDecorator() ArrayDecorator {
	return ArrayDecorator{
		MinCount:            3,
		MaxCount:            3,
		Separator:           ",",
		SpaceAfterSeparator: true,
		Affix:               AffixDecorator{Enabled: true, Descriptor: "[@]"},
	}
}

// Decorate implements Decorator.
func (d ArrayDecorator) Decorate(g randomness.Generator, rng *rand.Rand) randomness.Generator {
	if !d.Enabled {
		return g
	}

	minCount, maxCount := d.MinCount, d.MaxCount
	separator := d.JoinSeparator()
	joined := func(count int) ([]string, error) {
		n := randomness.IntRange(rng, minCount, maxCount)
		if count > math.MaxInt/n {
			return nil, fmt.Errorf("%w: %d arrays of %d elements", ErrBatchTooLarge, count, n)
		}
		elements, err := randomness.Batch(g, count*n)
		if err != nil {
			return nil, err
		}

		out := make([]string, count)
		for i := range out {
			out[i] = strings.Join(elements[i*n:(i+1)*n], separator)
		}
		return out, nil
	}
	return d.Affix.Decorate(joined, rng)
}

// JoinSeparator is the literal text placed between two elements. Every `\n`
// in Separator becomes a line break; a separator that is only `\n` gets no
// trailing space.
func (d ArrayDecorator) JoinSeparator() string {
	sep := strings.ReplaceAll(d.Separator, newlineSeparator, "\n")
	if d.SpaceAfterSeparator && d.Separator != newlineSeparator {
		return sep + " "
	}
	return sep
}

// Validate implements Decorator.
func (d ArrayDecorator) Validate() error {
	if d.MinCount < 1 {
		return fmt.Errorf("%w: got %d", ErrMinCountTooLow, d.MinCount)
	}
	if d.MaxCount < d.MinCount {
		return fmt.Errorf("%w: %d > %d", ErrMinAboveMax, d.MinCount, d.MaxCount)
	}
	return d.Affix.Validate()
}
