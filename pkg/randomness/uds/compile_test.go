package uds

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/scheme"
)

func TestProgram_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		descriptor string
		pattern    string
	}{
		{name: "empty", descriptor: "", pattern: `^$`},
		{name: "literal only", descriptor: "100%% pure", pattern: `^100% pure$`},
		{name: "fixed integer", descriptor: "a%Int[minValue=5,maxValue=5]b", pattern: `^a5b$`},
		{
			name:       "integer and string",
			descriptor: "%Int[minValue=1,maxValue=10]-%Str[minLength=3,maxLength=3]",
			pattern:    `^([1-9]|10)-[a-z]{3}$`,
		},
		{
			name:       "hex integer",
			descriptor: "0x%Int[minValue=255,maxValue=255,base=16,isUppercase=true]",
			pattern:    `^0xFF$`,
		},
		{
			name:       "decimal",
			descriptor: "%Dec[minValue=1,maxValue=2,decimalCount=3]",
			pattern:    `^[12]\.\d{3}$`,
		},
		{name: "word", descriptor: "<%Word[minLength=2,maxLength=5]>", pattern: `^<[a-z]{2,5}>$`},
		{
			name:       "uuid",
			descriptor: "id:%UUID[addDashes=false]",
			pattern:    `^id:[0-9a-f]{32}$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require := require.New(t)

			p, err := CompileString(tt.descriptor, randomness.NewRand(42))
			require.NoError(err)

			re := regexp.MustCompile(tt.pattern)
			for _, count := range []int{0, 1, 25} {
				values, err := p.Generate(count)
				require.NoError(err)
				require.Len(values, count)
				for _, v := range values {
					require.Regexp(re, v)
				}
			}
		})
	}
}

func TestProgram_Deterministic(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	const descriptor = "%Int[minValue=0,maxValue=1000000]/%Str[]/%UUID[]"

	a, err := CompileString(descriptor, randomness.NewRand(5))
	require.NoError(err)
	b, err := CompileString(descriptor, randomness.NewRand(5))
	require.NoError(err)

	va, err := a.Generate(20)
	require.NoError(err)
	vb, err := b.Generate(20)
	require.NoError(err)
	require.Equal(va, vb)
}

func TestCompile_IgnoresUnknownKeys(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	p, err := CompileString("%Int[minValue=3,maxValue=3,colour=blue]", randomness.NewRand(1))
	require.NoError(err)
	require.Len(p.Ignored, 1)
	require.Equal("colour", p.Ignored[0].Key)
	require.Equal("blue", p.Ignored[0].Value)

	values, err := p.Generate(2)
	require.NoError(err)
	require.Equal([]string{"3", "3"}, values)
}

func TestCompile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		descriptor string
		want       []error
	}{
		{name: "unknown type", descriptor: "%Nope[]", want: []error{ErrUnknownType}},
		{name: "datetime is not embeddable", descriptor: "%DateTime[]", want: []error{ErrUnknownType}},
		{name: "type names are case sensitive", descriptor: "%int[]", want: []error{ErrUnknownType}},
		{name: "bad long", descriptor: "%Int[minValue=abc]", want: []error{ErrInvalidArgValue}},
		{name: "int overflow", descriptor: "%Str[minLength=99999999999]", want: []error{ErrInvalidArgValue}},
		{name: "bad bool", descriptor: "%UUID[addDashes=yes]", want: []error{ErrInvalidArgValue}},
		{name: "enum field", descriptor: "%Str[capitalization=uppercase]", want: []error{ErrUnsupportedArgType}},
		{name: "list field", descriptor: "%Word[words=a]", want: []error{ErrUnsupportedArgType}},
		{
			name:       "invalid configuration",
			descriptor: "%Int[minValue=5,maxValue=1]",
			want:       []error{ErrInvalidPlaceholder, scheme.ErrMinAboveMax},
		},
		{
			name:       "unsupported uuid version",
			descriptor: "%UUID[version=3]",
			want:       []error{ErrInvalidPlaceholder, scheme.ErrUnsupportedUUIDVersion},
		},
		{name: "scan error", descriptor: "%Int[", want: []error{ErrUnterminatedArgList}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require := require.New(t)

			p, err := CompileString(tt.descriptor, randomness.NewRand(1))
			require.Nil(p)
			for _, want := range tt.want {
				require.ErrorIs(err, want)
			}

			var perr *ParseError
			require.True(errors.As(err, &perr))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("positional concatenation", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)

		n := 0
		seq := randomness.FromFunc(func() (string, error) {
			n++
			return string(rune('a' + n - 1)), nil
		})

		values, err := Compose(randomness.Const("<"), seq, randomness.Const(">"))(3)
		require.NoError(err)
		require.Equal([]string{"<a>", "<b>", "<c>"}, values)
	})

	t.Run("each generator called once", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)

		calls := 0
		g := func(count int) ([]string, error) {
			calls++
			return make([]string, count), nil
		}

		_, err := Compose(g, g)(10)
		require.NoError(err)
		require.Equal(2, calls)
	})

	t.Run("error aborts", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)

		boom := errors.New("boom")
		failing := func(int) ([]string, error) { return nil, boom }

		values, err := Compose(randomness.Const("x"), failing)(4)
		require.ErrorIs(err, boom)
		require.Nil(values)
	})

	t.Run("short batch", func(t *testing.T) {
		t.Parallel()

		short := func(count int) ([]string, error) { return make([]string, count-1), nil }
		_, err := Compose(short)(3)
		require.ErrorIs(t, err, randomness.ErrShortBatch)
	})

	t.Run("no generators", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)

		values, err := Compose()(3)
		require.NoError(err)
		require.Equal([]string{"", "", ""}, values)
	})

	t.Run("negative count", func(t *testing.T) {
		t.Parallel()

		_, err := Compose()(-1)
		require.ErrorIs(t, err, randomness.ErrNegativeCount)
	})
}
