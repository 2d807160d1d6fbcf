package scheme

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/decorator"
)

//go:embed words.txt
var defaultDictionary string

// DefaultWords is the bundled dictionary, one word per line.
var DefaultWords = strings.Fields(defaultDictionary)

// WordScheme picks words from a dictionary.
//
// A nil Words means the bundled dictionary is used.
type WordScheme struct {
	Identity
	MinLength      int            `json:"minLength"`
	MaxLength      int            `json:"maxLength"`
	Words          []string       `json:"words,omitempty"`
	Capitalization Capitalization `json:"capitalization"`

	AffixDecorator decorator.AffixDecorator `json:"affixDecorator"`
	ArrayDecorator decorator.ArrayDecorator `json:"arrayDecorator"`
}

// NewWordScheme returns a word scheme with default values.
func NewWordScheme() *WordScheme {
	return &WordScheme{
		Identity:       NewIdentity(),
		MinLength:      1,
		MaxLength:      32,
		Capitalization: CapitalizationRetain,
		AffixDecorator: decorator.NewAffixDecorator(),
		ArrayDecorator: decorator.NewArrayDecorator(),
	}
}

var wordEntry = Entry{
	Kind:        KindWord,
	TypeName:    "Word",
	Description: "dictionary words with a length in an inclusive range",
	New:         func() Scheme { return NewWordScheme() },
	Fields: []Field{
		IntField("minLength", func(s *WordScheme, v int) { s.MinLength = v }),
		IntField("maxLength", func(s *WordScheme, v int) { s.MaxLength = v }),
		OpaqueField("words", FieldList),
		OpaqueField("capitalization", FieldEnum),
		OpaqueField("affixDecorator", FieldDecorator),
		OpaqueField("arrayDecorator", FieldDecorator),
	},
}

// Kind implements Scheme.
func (s *WordScheme) Kind() Kind { return KindWord }

// Decorators returns the owned decorators, innermost first.
func (s *WordScheme) Decorators() []decorator.Decorator {
	return []decorator.Decorator{s.AffixDecorator, s.ArrayDecorator}
}

// Candidates returns the dictionary words whose length is in range.
func (s *WordScheme) Candidates() []string {
	words := s.Words
	if words == nil {
		words = DefaultWords
	}

	var out []string
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		if n >= s.MinLength && n <= s.MaxLength {
			out = append(out, w)
		}
	}
	return out
}

// Generator picks uniformly among Candidates.
func (s *WordScheme) Generator(rng *rand.Rand) randomness.Generator {
	candidates := s.Candidates()
	capitalization := s.Capitalization
	return randomness.FromFunc(func() (string, error) {
		if len(candidates) == 0 {
			return "", ErrNoWords
		}
		return capitalization.Apply(candidates[rng.IntN(len(candidates))], rng), nil
	})
}

// Validate implements Scheme.
func (s *WordScheme) Validate() error {
	if s.MinLength < 1 {
		return fmt.Errorf("%w: got %d", ErrLengthTooLow, s.MinLength)
	}
	if s.MinLength > s.MaxLength {
		return fmt.Errorf("%w: %d > %d", ErrMinAboveMax, s.MinLength, s.MaxLength)
	}
	if len(s.Candidates()) == 0 {
		return fmt.Errorf("%w: [%d, %d]", ErrNoWords, s.MinLength, s.MaxLength)
	}
	return s.Capitalization.Validate()
}

// DeepCopy implements Scheme.
func (s *WordScheme) DeepCopy(retainID bool) Scheme {
	c := *s
	c.Identity = s.Identity.Copy(retainID)
	c.Words = slices.Clone(s.Words)
	return &c
}
