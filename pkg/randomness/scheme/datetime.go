package scheme

import (
	"fmt"
	"math/rand/v2"
	"time"
	_ "time/tzdata"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/decorator"
)

// DefaultDateTimePattern is a Go reference-time layout.
const DefaultDateTimePattern = "2006-01-02 15:04:05"

// DateTimeScheme generates timestamps between two instants given in Unix
// milliseconds.
type DateTimeScheme struct {
	Identity
	MinDateTime int64  `json:"minDateTime"`
	MaxDateTime int64  `json:"maxDateTime"`
	Pattern     string `json:"pattern"`
	Location    string `json:"location"`

	AffixDecorator decorator.AffixDecorator `json:"affixDecorator"`
	ArrayDecorator decorator.ArrayDecorator `json:"arrayDecorator"`
}

// NewDateTimeScheme returns a scheme covering 2000 through 2029 in UTC.
func NewDateTimeScheme() *DateTimeScheme {
	return &DateTimeScheme{
		Identity:       NewIdentity(),
		MinDateTime:    time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		MaxDateTime:    time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli() - 1,
		Pattern:        DefaultDateTimePattern,
		Location:       "UTC",
		AffixDecorator: decorator.NewAffixDecorator(),
		ArrayDecorator: decorator.NewArrayDecorator(),
	}
}

var dateTimeEntry = Entry{
	Kind:        KindDateTime,
	Description: "timestamps between two instants, formatted with a Go layout",
	New:         func() Scheme { return NewDateTimeScheme() },
	Fields: []Field{
		LongField("minDateTime", func(s *DateTimeScheme, v int64) { s.MinDateTime = v }),
		LongField("maxDateTime", func(s *DateTimeScheme, v int64) { s.MaxDateTime = v }),
		StringField("pattern", func(s *DateTimeScheme, v string) { s.Pattern = v }),
		StringField("location", func(s *DateTimeScheme, v string) { s.Location = v }),
		OpaqueField("affixDecorator", FieldDecorator),
		OpaqueField("arrayDecorator", FieldDecorator),
	},
}

// Kind implements Scheme.
func (s *DateTimeScheme) Kind() Kind { return KindDateTime }

// Decorators returns the owned decorators, innermost first.
func (s *DateTimeScheme) Decorators() []decorator.Decorator {
	return []decorator.Decorator{s.AffixDecorator, s.ArrayDecorator}
}

// Generator formats instants drawn uniformly from [MinDateTime, MaxDateTime].
func (s *DateTimeScheme) Generator(rng *rand.Rand) randomness.Generator {
	cfg := *s
	return randomness.FromFunc(func() (string, error) {
		loc, err := time.LoadLocation(cfg.Location)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrUnknownLocation, cfg.Location)
		}
		ms := randomness.Int64Range(rng, cfg.MinDateTime, cfg.MaxDateTime)
		return time.UnixMilli(ms).In(loc).Format(cfg.Pattern), nil
	})
}

// Validate implements Scheme.
func (s *DateTimeScheme) Validate() error {
	if s.MinDateTime > s.MaxDateTime {
		return fmt.Errorf("%w: %d > %d", ErrMinAboveMax, s.MinDateTime, s.MaxDateTime)
	}
	if s.Pattern == "" {
		return ErrEmptyPattern
	}
	if _, err := time.LoadLocation(s.Location); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, s.Location)
	}
	return nil
}

// DeepCopy implements Scheme.
func (s *DateTimeScheme) DeepCopy(retainID bool) Scheme {
	c := *s
	c.Identity = s.Identity.Copy(retainID)
	return &c
}
