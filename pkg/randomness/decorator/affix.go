package decorator

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"pkg.jsn.cam/randomness/pkg/randomness"
)

const (
	escapeChar      = '\\'
	placeholderChar = '@'
)

// AffixDecorator surrounds each value using a one-line template.
//
// In Descriptor, '@' marks where the value goes and '\' escapes the next '@'
// or '\'. A descriptor without an unescaped '@' is put on both sides of the
// value, so "()" turns "word" into "()word()".
type AffixDecorator struct {
	Enabled    bool   `json:"enabled"`
	Descriptor string `json:"descriptor"`
}

// NewAffixDecorator returns a disabled decorator with an empty descriptor.
func NewAffixDecorator() AffixDecorator {
	return AffixDecorator{}
}

// Decorate implements Decorator.
func (d AffixDecorator) Decorate(g randomness.Generator, _ *rand.Rand) randomness.Generator {
	if !d.Enabled {
		return g
	}
	descriptor := d.Descriptor
	return randomness.Map(g, func(value string) string {
		return Interpolate(descriptor, value)
	})
}

// Validate implements Decorator.
func (d AffixDecorator) Validate() error {
	return ValidateDescriptor(d.Descriptor)
}

// Interpolate renders descriptor around value in a single forward scan.
func Interpolate(descriptor, value string) string {
	var out strings.Builder
	out.Grow(len(descriptor) + len(value))

	escaped := false
	inserted := false
	for _, c := range descriptor {
		switch {
		case c == escapeChar && !escaped:
			escaped = true
		case c == placeholderChar && !escaped:
			out.WriteString(value)
			inserted = true
		default:
			out.WriteRune(c)
			escaped = false
		}
	}

	if inserted {
		return out.String()
	}
	// The wrapping affix is the scanned text, escapes already resolved, so
	// `a\\` wraps as `a\`.
	affix := out.String()
	return affix + value + affix
}

// ValidateDescriptor fails iff descriptor ends while an escape is pending.
func ValidateDescriptor(descriptor string) error {
	escaped := false
	for _, c := range descriptor {
		if c == escapeChar {
			escaped = !escaped
		} else {
			escaped = false
		}
	}
	if escaped {
		return fmt.Errorf("%w: %q", ErrTrailingEscape, descriptor)
	}
	return nil
}
