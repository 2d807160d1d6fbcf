package uds

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/scheme"
)

// Program is a compiled descriptor: one generator per segment, in order.
type Program struct {
	Segments   []Segment
	Generators []randomness.Generator

	// Ignored holds arguments whose key names no field of their placeholder's
	// type. They are dropped rather than rejected.
	Ignored []Arg
}

// CompileString parses and compiles descriptor in one step.
func CompileString(descriptor string, rng *rand.Rand) (*Program, error) {
	segments, err := Parse(descriptor)
	if err != nil {
		return nil, err
	}
	return Compile(segments, rng)
}

// Compile resolves every placeholder to a validated scheme and turns each
// segment into a generator drawing from rng.
func Compile(segments []Segment, rng *rand.Rand) (*Program, error) {
	p := &Program{Segments: segments}
	for _, seg := range segments {
		if seg.IsLiteral() {
			p.Generators = append(p.Generators, randomness.Const(seg.Literal))
			continue
		}

		s, ignored, err := Resolve(seg.Pos, seg.Placeholder)
		if err != nil {
			return nil, err
		}
		p.Ignored = append(p.Ignored, ignored...)
		p.Generators = append(p.Generators, func(count int) ([]string, error) {
			return scheme.Generate(s, rng, count)
		})
	}
	return p, nil
}

// Resolve builds the scheme a placeholder refers to. pos is the placeholder's
// offset, used in errors.
func Resolve(pos int, ph *Placeholder) (scheme.Scheme, []Arg, error) {
	entry, ok := scheme.LookupTypeName(ph.TypeName)
	if !ok {
		return nil, nil, &ParseError{Pos: pos, Err: fmt.Errorf("%w: %q", ErrUnknownType, ph.TypeName)}
	}

	s := entry.New()
	var ignored []Arg
	for _, arg := range ph.Args {
		bound, err := scheme.Bind(s, arg.Key, arg.Value)
		if err != nil {
			return nil, nil, &ParseError{Pos: arg.Pos, Err: err}
		}
		if !bound {
			ignored = append(ignored, arg)
		}
	}

	if err := scheme.Validate(s); err != nil {
		return nil, nil, &ParseError{Pos: pos, Err: fmt.Errorf("%w: %%%s: %w", ErrInvalidPlaceholder, ph.TypeName, err)}
	}
	return s, ignored, nil
}

// Generate returns count values, each the concatenation of every segment's
// value at the same position.
func (p *Program) Generate(count int) ([]string, error) {
	return Compose(p.Generators...)(count)
}

// Compose concatenates generators positionally. Each generator is called
// exactly once per batch, so batch-level behaviour inside a segment (such as
// an array's element count) is preserved. Any error discards the whole batch.
func Compose(generators ...randomness.Generator) randomness.Generator {
	return func(count int) ([]string, error) {
		if count < 0 {
			return nil, fmt.Errorf("%w: %d", randomness.ErrNegativeCount, count)
		}

		builders := make([]strings.Builder, count)
		for _, g := range generators {
			values, err := randomness.Batch(g, count)
			if err != nil {
				return nil, err
			}
			for i, v := range values {
				builders[i].WriteString(v)
			}
		}

		out := make([]string, count)
		for i := range builders {
			out[i] = builders[i].String()
		}
		return out, nil
	}
}
