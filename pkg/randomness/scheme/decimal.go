package scheme

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/decorator"
)

// maxDecimalRange bounds MaxValue-MinValue so the sampled offset keeps
// enough precision to be meaningful.
const maxDecimalRange = 1e53

// DecimalScheme generates floating-point numbers from [MinValue, MaxValue].
type DecimalScheme struct {
	Identity
	MinValue                 float64 `json:"minValue"`
	MaxValue                 float64 `json:"maxValue"`
	DecimalCount             int     `json:"decimalCount"`
	ShowTrailingZeroes       bool    `json:"showTrailingZeroes"`
	GroupingSeparatorEnabled bool    `json:"groupingSeparatorEnabled"`
	GroupingSeparator        string  `json:"groupingSeparator"`
	DecimalSeparator         string  `json:"decimalSeparator"`

	AffixDecorator decorator.AffixDecorator `json:"affixDecorator"`
	ArrayDecorator decorator.ArrayDecorator `json:"arrayDecorator"`
}

// NewDecimalScheme returns a decimal scheme with default values.
func NewDecimalScheme() *DecimalScheme {
	return &DecimalScheme{
		Identity:           NewIdentity(),
		MinValue:           0,
		MaxValue:           1000,
		DecimalCount:       2,
		ShowTrailingZeroes: true,
		GroupingSeparator:  ",",
		DecimalSeparator:   ".",
		AffixDecorator:     decorator.NewAffixDecorator(),
		ArrayDecorator:     decorator.NewArrayDecorator(),
	}
}

var decimalEntry = Entry{
	Kind:        KindDecimal,
	TypeName:    "Dec",
	Description: "uniform decimals in a range with configurable separators",
	New:         func() Scheme { return NewDecimalScheme() },
	Fields: []Field{
		DoubleField("minValue", func(s *DecimalScheme, v float64) { s.MinValue = v }),
		DoubleField("maxValue", func(s *DecimalScheme, v float64) { s.MaxValue = v }),
		IntField("decimalCount", func(s *DecimalScheme, v int) { s.DecimalCount = v }),
		BoolField("showTrailingZeroes", func(s *DecimalScheme, v bool) { s.ShowTrailingZeroes = v }),
		BoolField("groupingSeparatorEnabled", func(s *DecimalScheme, v bool) { s.GroupingSeparatorEnabled = v }),
		StringField("groupingSeparator", func(s *DecimalScheme, v string) { s.GroupingSeparator = v }),
		StringField("decimalSeparator", func(s *DecimalScheme, v string) { s.DecimalSeparator = v }),
		OpaqueField("affixDecorator", FieldDecorator),
		OpaqueField("arrayDecorator", FieldDecorator),
	},
}

// Kind implements Scheme.
func (s *DecimalScheme) Kind() Kind { return KindDecimal }

// Decorators returns the owned decorators, innermost first.
func (s *DecimalScheme) Decorators() []decorator.Decorator {
	return []decorator.Decorator{s.AffixDecorator, s.ArrayDecorator}
}

// Generator draws uniformly from [MinValue, MaxValue) and formats with DecimalCount digits.
func (s *DecimalScheme) Generator(rng *rand.Rand) randomness.Generator {
	cfg := *s
	return randomness.FromFunc(func() (string, error) {
		v := cfg.MinValue
		if cfg.MaxValue > cfg.MinValue {
			v += rng.Float64() * (cfg.MaxValue - cfg.MinValue)
		}
		return cfg.format(v), nil
	})
}

func (s *DecimalScheme) format(v float64) string {
	out := strconv.FormatFloat(v, 'f', s.DecimalCount, 64)
	if !s.ShowTrailingZeroes && strings.Contains(out, ".") {
		out = strings.TrimRight(strings.TrimRight(out, "0"), ".")
	}

	whole, fraction, hasFraction := strings.Cut(out, ".")
	if s.GroupingSeparatorEnabled {
		whole = groupThousands(whole, s.GroupingSeparator)
	}
	if !hasFraction {
		return whole
	}
	return whole + s.DecimalSeparator + fraction
}

// Validate implements Scheme.
func (s *DecimalScheme) Validate() error {
	for _, v := range []float64{s.MinValue, s.MaxValue} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: got %v", ErrNotFinite, v)
		}
	}
	if s.MinValue > s.MaxValue {
		return fmt.Errorf("%w: %v > %v", ErrMinAboveMax, s.MinValue, s.MaxValue)
	}
	if s.MaxValue-s.MinValue > maxDecimalRange {
		return fmt.Errorf("%w: got %v", ErrRangeTooLarge, s.MaxValue-s.MinValue)
	}
	if s.DecimalCount < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeDecimalCount, s.DecimalCount)
	}
	if s.GroupingSeparatorEnabled && !isSingleChar(s.GroupingSeparator) {
		return fmt.Errorf("%w: got %q", ErrGroupingSeparatorLength, s.GroupingSeparator)
	}
	if !isSingleChar(s.DecimalSeparator) {
		return fmt.Errorf("%w: got %q", ErrDecimalSeparatorLength, s.DecimalSeparator)
	}
	return nil
}

// DeepCopy implements Scheme.
func (s *DecimalScheme) DeepCopy(retainID bool) Scheme {
	c := *s
	c.Identity = s.Identity.Copy(retainID)
	return &c
}
