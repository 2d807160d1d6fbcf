// Package uds implements user-defined strings: literal text with embedded,
// typed placeholders that are generated by other schemes.
//
// A descriptor such as
//
//	%Int[minValue=1,maxValue=10]-%Str[minLength=3,maxLength=3]
//
// produces values like "7-abc". "%%" stands for a literal percent sign.
package uds

import (
	"fmt"
	"strings"
)

// Segment is either a literal run or a placeholder.
type Segment struct {
	Pos         int
	Literal     string
	Placeholder *Placeholder
}

// IsLiteral reports whether s is a literal run.
func (s Segment) IsLiteral() bool {
	return s.Placeholder == nil
}

// Placeholder is a typed reference to another scheme.
type Placeholder struct {
	TypeName string
	Args     []Arg
}

// Arg is one key=value pair of a placeholder's argument list.
type Arg struct {
	Pos   int
	Key   string
	Value string
}

// Parse splits descriptor into literal runs and placeholders.
func Parse(descriptor string) ([]Segment, error) {
	var (
		segments   []Segment
		literal    strings.Builder
		literalPos int
	)
	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, Segment{Pos: literalPos, Literal: literal.String()})
			literal.Reset()
		}
	}
	appendLiteral := func(pos int, s string) {
		if literal.Len() == 0 {
			literalPos = pos
		}
		literal.WriteString(s)
	}

	for i := 0; i < len(descriptor); {
		if descriptor[i] != '%' {
			next := strings.IndexByte(descriptor[i:], '%')
			if next < 0 {
				next = len(descriptor) - i
			}
			appendLiteral(i, descriptor[i:i+next])
			i += next
			continue
		}

		if i+1 == len(descriptor) {
			return nil, &ParseError{Pos: i, Err: ErrTrailingPercent}
		}
		if descriptor[i+1] == '%' {
			appendLiteral(i, "%")
			i += 2
			continue
		}

		placeholder, next, err := parsePlaceholder(descriptor, i)
		if err != nil {
			return nil, err
		}
		flush()
		segments = append(segments, Segment{Pos: i, Placeholder: placeholder})
		i = next
	}
	flush()

	return segments, nil
}

// parsePlaceholder reads "%Type[args]" starting at the '%' at start and
// returns the offset just past the closing ']'.
func parsePlaceholder(descriptor string, start int) (*Placeholder, int, error) {
	open := -1
	for j := start + 1; j < len(descriptor); j++ {
		if descriptor[j] == '[' {
			open = j
			break
		}
		if descriptor[j] == '%' {
			break
		}
	}
	if open < 0 {
		return nil, 0, &ParseError{Pos: start, Err: ErrMissingArgList}
	}

	end := strings.IndexByte(descriptor[open+1:], ']')
	if end < 0 {
		return nil, 0, &ParseError{Pos: open, Err: ErrUnterminatedArgList}
	}
	end += open + 1

	args, err := parseArgs(descriptor[open+1:end], open+1)
	if err != nil {
		return nil, 0, err
	}
	return &Placeholder{TypeName: descriptor[start+1 : open], Args: args}, end + 1, nil
}

func parseArgs(list string, offset int) ([]Arg, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	var args []Arg
	pos := offset
	for _, part := range strings.Split(list, ",") {
		key, value, ok := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, &ParseError{Pos: pos, Err: fmt.Errorf("%w: %q", ErrMalformedArg, strings.TrimSpace(part))}
		}
		args = append(args, Arg{Pos: pos, Key: key, Value: strings.TrimSpace(value)})
		pos += len(part) + 1
	}
	return args, nil
}
