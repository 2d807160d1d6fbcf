package scheme

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/randomness/pkg/randomness"
)

func TestStringScheme_Generate(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	s := NewStringScheme()
	s.MinLength, s.MaxLength = 2, 5
	s.Symbols = "ab"
	values, err := Generate(s, randomness.NewRand(8), 200)
	require.NoError(err)

	for _, v := range values {
		n := utf8.RuneCountInString(v)
		require.GreaterOrEqual(n, 2)
		require.LessOrEqual(n, 5)
		require.Empty(strings.Trim(v, "ab"))
	}
}

func TestStringScheme_ExcludeLookAlikes(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	s := NewStringScheme()
	s.Symbols = "0O1lIa"
	s.ExcludeLookAlikeSymbols = true
	require.Equal([]rune{'a'}, s.AvailableSymbols())

	values, err := Generate(s, randomness.NewRand(8), 20)
	require.NoError(err)
	for _, v := range values {
		require.Empty(strings.Trim(v, "a"))
	}

	s.Symbols = "0O1"
	require.ErrorIs(Validate(s), ErrNoSymbols)
}

func TestStringScheme_Capitalization(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	s := NewStringScheme()
	s.Capitalization = CapitalizationUpper
	values, err := Generate(s, randomness.NewRand(8), 20)
	require.NoError(err)
	for _, v := range values {
		require.Equal(strings.ToUpper(v), v)
	}
}

func TestStringScheme_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*StringScheme)
		wantErr error
	}{
		{name: "defaults", mutate: func(*StringScheme) {}},
		{name: "min too low", mutate: func(s *StringScheme) { s.MinLength = 0 }, wantErr: ErrLengthTooLow},
		{name: "min above max", mutate: func(s *StringScheme) { s.MinLength, s.MaxLength = 4, 3 }, wantErr: ErrMinAboveMax},
		{name: "no symbols", mutate: func(s *StringScheme) { s.Symbols = "" }, wantErr: ErrNoSymbols},
		{name: "bad capitalization", mutate: func(s *StringScheme) { s.Capitalization = "shouting" }, wantErr: ErrUnknownCapitalization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewStringScheme()
			tt.mutate(s)
			err := Validate(s)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
