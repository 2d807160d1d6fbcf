package scheme

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalization rewrites the letter case of a generated value.
type Capitalization string

const (
	CapitalizationRetain      Capitalization = "retain"
	CapitalizationSentence    Capitalization = "sentence"
	CapitalizationUpper       Capitalization = "uppercase"
	CapitalizationLower       Capitalization = "lowercase"
	CapitalizationFirstLetter Capitalization = "first letter"
	CapitalizationRandom      Capitalization = "random"
)

// Capitalizations lists every mode in display order.
var Capitalizations = []Capitalization{
	CapitalizationRetain,
	CapitalizationSentence,
	CapitalizationUpper,
	CapitalizationLower,
	CapitalizationFirstLetter,
	CapitalizationRandom,
}

// Validate fails for modes outside Capitalizations.
func (c Capitalization) Validate() error {
	for _, known := range Capitalizations {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCapitalization, string(c))
}

// Apply transforms s. Only CapitalizationRandom draws from rng.
func (c Capitalization) Apply(s string, rng *rand.Rand) string {
	switch c {
	case CapitalizationUpper:
		return cases.Upper(language.Und).String(s)
	case CapitalizationLower:
		return cases.Lower(language.Und).String(s)
	case CapitalizationSentence:
		return sentence(s)
	case CapitalizationFirstLetter:
		return cases.Title(language.Und).String(s)
	case CapitalizationRandom:
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			if rng.IntN(2) == 0 {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
		}
		return b.String()
	default:
		return s
	}
}

func sentence(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Upper(language.Und).String(string(first)) + cases.Lower(language.Und).String(s[size:])
}
