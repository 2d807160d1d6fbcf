package uds

import (
	"math/rand/v2"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/decorator"
	"pkg.jsn.cam/randomness/pkg/randomness/scheme"
)

// Kind is the registry kind of UDS schemes.
const Kind scheme.Kind = "uds"

// Scheme generates values from a UDS descriptor.
type Scheme struct {
	scheme.Identity
	Descriptor string `json:"descriptor"`

	ArrayDecorator decorator.ArrayDecorator `json:"arrayDecorator"`
}

// NewScheme returns a UDS scheme with default values.
func NewScheme() *Scheme {
	return &Scheme{
		Identity:       scheme.NewIdentity(),
		Descriptor:     "%Int[minValue=1,maxValue=10]",
		ArrayDecorator: decorator.NewArrayDecorator(),
	}
}

func init() {
	scheme.Register(scheme.Entry{
		Kind:        Kind,
		Description: "literal text with embedded placeholders, e.g. id-%Int[minValue=1,maxValue=99]",
		New:         func() scheme.Scheme { return NewScheme() },
		Fields: []scheme.Field{
			scheme.StringField("descriptor", func(s *Scheme, v string) { s.Descriptor = v }),
			scheme.OpaqueField("arrayDecorator", scheme.FieldDecorator),
		},
	})
}

// Kind implements scheme.Scheme.
func (s *Scheme) Kind() scheme.Kind { return Kind }

// Decorators returns the array decorator, the only one a UDS scheme owns.
func (s *Scheme) Decorators() []decorator.Decorator {
	return []decorator.Decorator{s.ArrayDecorator}
}

// Generator compiles the descriptor once and returns the program's
// generator. A descriptor that does not compile yields a generator that
// always fails with the compile error.
func (s *Scheme) Generator(rng *rand.Rand) randomness.Generator {
	program, err := CompileString(s.Descriptor, rng)
	if err != nil {
		return func(int) ([]string, error) { return nil, err }
	}
	return program.Generate
}

// Validate parses and compiles the descriptor, which validates every
// placeholder.
func (s *Scheme) Validate() error {
	_, err := CompileString(s.Descriptor, nil)
	return err
}

// DeepCopy implements scheme.Scheme.
func (s *Scheme) DeepCopy(retainID bool) scheme.Scheme {
	c := *s
	c.Identity = s.Identity.Copy(retainID)
	return &c
}
