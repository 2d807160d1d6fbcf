package scheme

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/decorator"
)

// IntegerScheme generates integers uniformly from [MinValue, MaxValue].
type IntegerScheme struct {
	Identity
	MinValue                 int64  `json:"minValue"`
	MaxValue                 int64  `json:"maxValue"`
	Base                     int    `json:"base"`
	IsUppercase              bool   `json:"isUppercase"`
	GroupingSeparatorEnabled bool   `json:"groupingSeparatorEnabled"`
	GroupingSeparator        string `json:"groupingSeparator"`

	AffixDecorator       decorator.AffixDecorator       `json:"affixDecorator"`
	FixedLengthDecorator decorator.FixedLengthDecorator `json:"fixedLengthDecorator"`
	ArrayDecorator       decorator.ArrayDecorator       `json:"arrayDecorator"`
}

// NewIntegerScheme returns an integer scheme with default values.
func NewIntegerScheme() *IntegerScheme {
	return &IntegerScheme{
		Identity:             NewIdentity(),
		MinValue:             0,
		MaxValue:             1000,
		Base:                 10,
		GroupingSeparator:    ",",
		AffixDecorator:       decorator.NewAffixDecorator(),
		FixedLengthDecorator: decorator.NewFixedLengthDecorator(),
		ArrayDecorator:       decorator.NewArrayDecorator(),
	}
}

var integerEntry = Entry{
	Kind:        KindInteger,
	TypeName:    "Int",
	Description: "uniform integers in an inclusive range, in any base from 2 to 36",
	New:         func() Scheme { return NewIntegerScheme() },
	Fields: []Field{
		LongField("minValue", func(s *IntegerScheme, v int64) { s.MinValue = v }),
		LongField("maxValue", func(s *IntegerScheme, v int64) { s.MaxValue = v }),
		IntField("base", func(s *IntegerScheme, v int) { s.Base = v }),
		BoolField("isUppercase", func(s *IntegerScheme, v bool) { s.IsUppercase = v }),
		BoolField("groupingSeparatorEnabled", func(s *IntegerScheme, v bool) { s.GroupingSeparatorEnabled = v }),
		StringField("groupingSeparator", func(s *IntegerScheme, v string) { s.GroupingSeparator = v }),
		OpaqueField("affixDecorator", FieldDecorator),
		OpaqueField("fixedLengthDecorator", FieldDecorator),
		OpaqueField("arrayDecorator", FieldDecorator),
	},
}

// Kind implements Scheme.
func (s *IntegerScheme) Kind() Kind { return KindInteger }

// Decorators returns the owned decorators, innermost first.
func (s *IntegerScheme) Decorators() []decorator.Decorator {
	return []decorator.Decorator{s.AffixDecorator, s.FixedLengthDecorator, s.ArrayDecorator}
}

// Generator draws uniformly from [MinValue, MaxValue].
func (s *IntegerScheme) Generator(rng *rand.Rand) randomness.Generator {
	cfg := *s
	return randomness.FromFunc(func() (string, error) {
		return cfg.format(randomness.Int64Range(rng, cfg.MinValue, cfg.MaxValue)), nil
	})
}

func (s *IntegerScheme) format(v int64) string {
	if s.Base != 10 {
		out := strconv.FormatInt(v, s.Base)
		if s.IsUppercase {
			out = strings.ToUpper(out)
		}
		return out
	}

	out := strconv.FormatInt(v, 10)
	if s.GroupingSeparatorEnabled {
		out = groupThousands(out, s.GroupingSeparator)
	}
	return out
}

// Validate implements Scheme.
func (s *IntegerScheme) Validate() error {
	if s.MinValue > s.MaxValue {
		return fmt.Errorf("%w: %d > %d", ErrMinAboveMax, s.MinValue, s.MaxValue)
	}
	if s.Base < 2 || s.Base > 36 {
		return fmt.Errorf("%w: got %d", ErrBaseOutOfRange, s.Base)
	}
	if s.GroupingSeparatorEnabled && !isSingleChar(s.GroupingSeparator) {
		return fmt.Errorf("%w: got %q", ErrGroupingSeparatorLength, s.GroupingSeparator)
	}
	return nil
}

// DeepCopy implements Scheme.
func (s *IntegerScheme) DeepCopy(retainID bool) Scheme {
	c := *s
	c.Identity = s.Identity.Copy(retainID)
	return &c
}
