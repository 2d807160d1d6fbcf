package scheme

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/decorator"
)

// UUIDVersions lists the supported UUID versions. Versions 4 and 7 draw their
// random bits from the scheme's random source; 1 and 6 are time based.
var UUIDVersions = []int{1, 4, 6, 7}

// UUIDScheme generates RFC 9562 UUIDs.
type UUIDScheme struct {
	Identity
	Version     int  `json:"version"`
	IsUppercase bool `json:"isUppercase"`
	AddDashes   bool `json:"addDashes"`

	AffixDecorator decorator.AffixDecorator `json:"affixDecorator"`
	ArrayDecorator decorator.ArrayDecorator `json:"arrayDecorator"`
}

// NewUUIDScheme returns a UUID scheme with default values.
func NewUUIDScheme() *UUIDScheme {
	return &UUIDScheme{
		Identity:       NewIdentity(),
		Version:        4,
		AddDashes:      true,
		AffixDecorator: decorator.NewAffixDecorator(),
		ArrayDecorator: decorator.NewArrayDecorator(),
	}
}

var uuidEntry = Entry{
	Kind:        KindUUID,
	TypeName:    "UUID",
	Description: "UUIDs of version 1, 4, 6 or 7",
	New:         func() Scheme { return NewUUIDScheme() },
	Fields: []Field{
		IntField("version", func(s *UUIDScheme, v int) { s.Version = v }),
		BoolField("isUppercase", func(s *UUIDScheme, v bool) { s.IsUppercase = v }),
		BoolField("addDashes", func(s *UUIDScheme, v bool) { s.AddDashes = v }),
		OpaqueField("affixDecorator", FieldDecorator),
		OpaqueField("arrayDecorator", FieldDecorator),
	},
}

// Kind implements Scheme.
func (s *UUIDScheme) Kind() Kind { return KindUUID }

// Decorators returns the owned decorators, innermost first.
func (s *UUIDScheme) Decorators() []decorator.Decorator {
	return []decorator.Decorator{s.AffixDecorator, s.ArrayDecorator}
}

// Generator returns UUIDs of the configured version.
func (s *UUIDScheme) Generator(rng *rand.Rand) randomness.Generator {
	cfg := *s
	source := randomness.Reader(rng)
	return randomness.FromFunc(func() (string, error) {
		var (
			id  uuid.UUID
			err error
		)
		switch cfg.Version {
		case 1:
			id, err = uuid.NewUUID()
		case 4:
			id, err = uuid.NewRandomFromReader(source)
		case 6:
			id, err = uuid.NewV6()
		case 7:
			id, err = uuid.NewV7FromReader(source)
		default:
			err = fmt.Errorf("%w: %d", ErrUnsupportedUUIDVersion, cfg.Version)
		}
		if err != nil {
			return "", err
		}

		out := id.String()
		if !cfg.AddDashes {
			out = strings.ReplaceAll(out, "-", "")
		}
		if cfg.IsUppercase {
			out = strings.ToUpper(out)
		}
		return out, nil
	})
}

// Validate implements Scheme.
func (s *UUIDScheme) Validate() error {
	if !slices.Contains(UUIDVersions, s.Version) {
		return fmt.Errorf("%w: %d", ErrUnsupportedUUIDVersion, s.Version)
	}
	return nil
}

// DeepCopy implements Scheme.
func (s *UUIDScheme) DeepCopy(retainID bool) Scheme {
	c := *s
	c.Identity = s.Identity.Copy(retainID)
	return &c
}
