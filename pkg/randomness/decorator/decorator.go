// Package decorator holds the transformation stages that wrap a scheme's
// undecorated generator.
//
// Decorators transform whole batches, never single values, because the array
// decorator has to multiply the batch it requests from the generator it wraps.
package decorator

import (
	"math/rand/v2"

	"pkg.jsn.cam/randomness/pkg/randomness"
)

// Decorator wraps a Generator into a Generator with the same count contract.
type Decorator interface {
	// Decorate returns g unchanged when the decorator is disabled.
	Decorate(g randomness.Generator, rng *rand.Rand) randomness.Generator

	// Validate checks the configuration regardless of whether the decorator
	// is enabled.
	Validate() error
}

// Chain applies decorators in order, so the first one ends up innermost.
func Chain(g randomness.Generator, rng *rand.Rand, decorators ...Decorator) randomness.Generator {
	for _, d := range decorators {
		g = d.Decorate(g, rng)
	}
	return g
}

// ValidateAll returns the first validation error among decorators.
func ValidateAll(decorators ...Decorator) error {
	for _, d := range decorators {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}
