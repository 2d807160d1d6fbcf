package scheme

import (
	"fmt"
	"strconv"
)

// FieldKind is the declared type of a configurable field.
type FieldKind int

const (
	FieldBool FieldKind = iota
	FieldDouble
	FieldInt
	FieldLong
	FieldString

	// Not settable from text.
	FieldEnum
	FieldList
	FieldDecorator
)

var fieldKindNames = map[FieldKind]string{
	FieldBool:      "boolean",
	FieldDouble:    "double",
	FieldInt:       "int",
	FieldLong:      "long",
	FieldString:    "string",
	FieldEnum:      "enum",
	FieldList:      "list",
	FieldDecorator: "decorator",
}

func (k FieldKind) String() string {
	if name, ok := fieldKindNames[k]; ok {
		return name
	}
	return "FieldKind(" + strconv.Itoa(int(k)) + ")"
}

// Field describes one configurable field of a scheme kind: its name, its
// declared kind (which selects the text parser) and its setter.
type Field struct {
	Name string
	Kind FieldKind
	set  func(Scheme, any)
}

// Settable reports whether the field can be assigned from text.
func (f Field) Settable() bool {
	return f.set != nil
}

// BoolField declares a boolean field of S.
func BoolField[S Scheme](name string, set func(S, bool)) Field {
	return Field{Name: name, Kind: FieldBool, set: func(s Scheme, v any) { set(s.(S), v.(bool)) }}
}

// DoubleField declares a float64 field of S.
func DoubleField[S Scheme](name string, set func(S, float64)) Field {
	return Field{Name: name, Kind: FieldDouble, set: func(s Scheme, v any) { set(s.(S), v.(float64)) }}
}

// IntField declares a 32-bit integer field of S.
func IntField[S Scheme](name string, set func(S, int)) Field {
	return Field{Name: name, Kind: FieldInt, set: func(s Scheme, v any) { set(s.(S), v.(int)) }}
}

// LongField declares a 64-bit integer field of S.
func LongField[S Scheme](name string, set func(S, int64)) Field {
	return Field{Name: name, Kind: FieldLong, set: func(s Scheme, v any) { set(s.(S), v.(int64)) }}
}

// StringField declares a string field of S.
func StringField[S Scheme](name string, set func(S, string)) Field {
	return Field{Name: name, Kind: FieldString, set: func(s Scheme, v any) { set(s.(S), v.(string)) }}
}

// OpaqueField declares a field that exists but cannot be set from text.
func OpaqueField(name string, kind FieldKind) Field {
	return Field{Name: name, Kind: kind}
}

func parseValue(kind FieldKind, raw string) (any, error) {
	switch kind {
	case FieldBool:
		v, err := strconv.ParseBool(raw)
		return v, err
	case FieldDouble:
		v, err := strconv.ParseFloat(raw, 64)
		return v, err
	case FieldInt:
		v, err := strconv.ParseInt(raw, 10, 32)
		return int(v), err
	case FieldLong:
		v, err := strconv.ParseInt(raw, 10, 64)
		return v, err
	case FieldString:
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArgType, kind)
	}
}

// Bind assigns raw to the field called name.
//
// A name the scheme kind does not declare is ignored and reported with
// bound == false; the caller decides whether that deserves a warning.
func Bind(s Scheme, name, raw string) (bound bool, err error) {
	entry, ok := Lookup(s.Kind())
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownKind, s.Kind())
	}
	field, ok := entry.Field(name)
	if !ok {
		return false, nil
	}
	if !field.Settable() {
		return true, fmt.Errorf("%w: %s is a %s field", ErrUnsupportedArgType, name, field.Kind)
	}

	value, err := parseValue(field.Kind, raw)
	if err != nil {
		return true, fmt.Errorf("%w: %s=%q (want %s)", ErrInvalidArgValue, name, raw, field.Kind)
	}
	field.set(s, value)
	return true, nil
}
