// Package scheme defines the configured recipes that generate random values
// and the two entry points the outside world calls: Generate and Validate.
//
// A Scheme owns its decorators by value. The order of Decorators is a fixed
// property of each scheme kind: the first decorator wraps the undecorated
// generator, the last one is outermost.
package scheme

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/decorator"
)

// Scheme is a configured recipe for one kind of random value.
type Scheme interface {
	Kind() Kind
	ID() uuid.UUID

	// Decorators lists the owned decorators, innermost first.
	Decorators() []decorator.Decorator

	// Generator returns the undecorated generator drawing from rng.
	Generator(rng *rand.Rand) randomness.Generator

	// Validate checks the scheme's own fields. Decorators are checked by the
	// package-level Validate.
	Validate() error

	// DeepCopy returns an independent copy. The copy keeps the identity only
	// when retainID is true.
	DeepCopy(retainID bool) Scheme
}

// Identity gives a scheme a stable UUID across saves and copies.
type Identity struct {
	UUID uuid.UUID `json:"uuid"`
}

// NewIdentity returns a fresh random identity.
func NewIdentity() Identity {
	return Identity{UUID: uuid.New()}
}

// ID returns the scheme's UUID.
func (i Identity) ID() uuid.UUID {
	return i.UUID
}

// Copy returns i when retain is set and a fresh identity otherwise.
func (i Identity) Copy(retain bool) Identity {
	if retain {
		return i
	}
	return NewIdentity()
}

// Decorate composes s's decorators around its undecorated generator.
func Decorate(s Scheme, rng *rand.Rand) randomness.Generator {
	return decorator.Chain(s.Generator(rng), rng, s.Decorators()...)
}

// Generate returns count decorated values of s.
//
// Callers are expected to Validate s first; generating from an invalid scheme
// yields an error or meaningless output.
func Generate(s Scheme, rng *rand.Rand, count int) ([]string, error) {
	return randomness.Batch(Decorate(s, rng), count)
}

// Validate checks s and every decorator it owns, enabled or not.
func Validate(s Scheme) error {
	if err := s.Validate(); err != nil {
		return &ValidationError{Kind: s.Kind(), Err: err}
	}
	if err := decorator.ValidateAll(s.Decorators()...); err != nil {
		return &ValidationError{Kind: s.Kind(), Err: err}
	}
	return nil
}

// ValidationError is the human-readable description returned by Validate.
type ValidationError struct {
	Kind Kind
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s scheme: %v", e.Kind, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
