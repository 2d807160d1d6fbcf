package scheme

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/decorator"
)

const (
	lowercaseSymbols = "abcdefghijklmnopqrstuvwxyz"
	lookAlikeSymbols = "01ILOilo|"
)

// StringScheme generates strings of random symbols.
type StringScheme struct {
	Identity
	MinLength               int            `json:"minLength"`
	MaxLength               int            `json:"maxLength"`
	Symbols                 string         `json:"symbols"`
	ExcludeLookAlikeSymbols bool           `json:"excludeLookAlikeSymbols"`
	Capitalization          Capitalization `json:"capitalization"`

	AffixDecorator       decorator.AffixDecorator       `json:"affixDecorator"`
	FixedLengthDecorator decorator.FixedLengthDecorator `json:"fixedLengthDecorator"`
	ArrayDecorator       decorator.ArrayDecorator       `json:"arrayDecorator"`
}

// NewStringScheme returns a string scheme with default values.
func NewStringScheme() *StringScheme {
	return &StringScheme{
		Identity:             NewIdentity(),
		MinLength:            3,
		MaxLength:            8,
		Symbols:              lowercaseSymbols,
		Capitalization:       CapitalizationRetain,
		AffixDecorator:       decorator.NewAffixDecorator(),
		FixedLengthDecorator: decorator.NewFixedLengthDecorator(),
		ArrayDecorator:       decorator.NewArrayDecorator(),
	}
}

var stringEntry = Entry{
	Kind:        KindString,
	TypeName:    "Str",
	Description: "strings of random symbols with a length in an inclusive range",
	New:         func() Scheme { return NewStringScheme() },
	Fields: []Field{
		IntField("minLength", func(s *StringScheme, v int) { s.MinLength = v }),
		IntField("maxLength", func(s *StringScheme, v int) { s.MaxLength = v }),
		StringField("symbols", func(s *StringScheme, v string) { s.Symbols = v }),
		BoolField("excludeLookAlikeSymbols", func(s *StringScheme, v bool) { s.ExcludeLookAlikeSymbols = v }),
		OpaqueField("capitalization", FieldEnum),
		OpaqueField("affixDecorator", FieldDecorator),
		OpaqueField("fixedLengthDecorator", FieldDecorator),
		OpaqueField("arrayDecorator", FieldDecorator),
	},
}

// Kind implements Scheme.
func (s *StringScheme) Kind() Kind { return KindString }

// Decorators returns the owned decorators, innermost first.
func (s *StringScheme) Decorators() []decorator.Decorator {
	return []decorator.Decorator{s.AffixDecorator, s.FixedLengthDecorator, s.ArrayDecorator}
}

// AvailableSymbols returns the distinct symbols a value is drawn from.
func (s *StringScheme) AvailableSymbols() []rune {
	seen := make(map[rune]bool)
	var symbols []rune
	for _, r := range s.Symbols {
		if seen[r] || (s.ExcludeLookAlikeSymbols && strings.ContainsRune(lookAlikeSymbols, r)) {
			continue
		}
		seen[r] = true
		symbols = append(symbols, r)
	}
	return symbols
}

// Generator builds strings of random length from AvailableSymbols.
func (s *StringScheme) Generator(rng *rand.Rand) randomness.Generator {
	minLength, maxLength := s.MinLength, s.MaxLength
	capitalization := s.Capitalization
	symbols := s.AvailableSymbols()
	return randomness.FromFunc(func() (string, error) {
		if len(symbols) == 0 {
			return "", ErrNoSymbols
		}
		value := make([]rune, randomness.IntRange(rng, minLength, maxLength))
		for i := range value {
			value[i] = symbols[rng.IntN(len(symbols))]
		}
		return capitalization.Apply(string(value), rng), nil
	})
}

// Validate implements Scheme.
func (s *StringScheme) Validate() error {
	if s.MinLength < 1 {
		return fmt.Errorf("%w: got %d", ErrLengthTooLow, s.MinLength)
	}
	if s.MinLength > s.MaxLength {
		return fmt.Errorf("%w: %d > %d", ErrMinAboveMax, s.MinLength, s.MaxLength)
	}
	if len(s.AvailableSymbols()) == 0 {
		return ErrNoSymbols
	}
	return s.Capitalization.Validate()
}

// DeepCopy implements Scheme.
func (s *StringScheme) DeepCopy(retainID bool) Scheme {
	c := *s
	c.Identity = s.Identity.Copy(retainID)
	return &c
}
