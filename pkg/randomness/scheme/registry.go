package scheme

import (
	"fmt"
	"sort"
)

// Kind names a scheme variant.
type Kind string

const (
	KindInteger  Kind = "integer"
	KindDecimal  Kind = "decimal"
	KindString   Kind = "string"
	KindWord     Kind = "word"
	KindUUID     Kind = "uuid"
	KindDateTime Kind = "datetime"
)

// Entry is one variant of the closed scheme registry.
type Entry struct {
	Kind Kind

	// TypeName is the name used inside UDS descriptors. Kinds with an empty
	// TypeName cannot be embedded.
	TypeName string

	Description string

	// New returns a scheme of this kind holding default values.
	New func() Scheme

	Fields []Field
}

// Field returns the field descriptor called name.
func (e Entry) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var (
	registry  = make(map[Kind]Entry)
	typeNames = make(map[string]Kind)
)

func init() {
	Register(integerEntry)
	Register(decimalEntry)
	Register(stringEntry)
	Register(wordEntry)
	Register(uuidEntry)
	Register(dateTimeEntry)
}

// Register adds a kind to the registry. It must only be called from init
// functions; a duplicate kind or type name panics.
func Register(e Entry) {
	if _, exists := registry[e.Kind]; exists {
		panic(fmt.Sprintf("scheme: kind %q registered twice", e.Kind))
	}
	if e.TypeName != "" {
		if other, exists := typeNames[e.TypeName]; exists {
			panic(fmt.Sprintf("scheme: type name %q already used by %q", e.TypeName, other))
		}
		typeNames[e.TypeName] = e.Kind
	}
	registry[e.Kind] = e
}

// Lookup returns the registry entry of kind.
func Lookup(kind Kind) (Entry, bool) {
	e, ok := registry[kind]
	return e, ok
}

// LookupTypeName returns the entry whose UDS type name is name.
func LookupTypeName(name string) (Entry, bool) {
	kind, ok := typeNames[name]
	if !ok {
		return Entry{}, false
	}
	return Lookup(kind)
}

// Get returns a default scheme of kind.
func Get(kind Kind) (Scheme, error) {
	e, ok := Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return e.New(), nil
}

// List returns all registered kinds in sorted order.
func List() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
