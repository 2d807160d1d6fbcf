package scheme

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/randomness/pkg/randomness"
)

func TestDecimalScheme_Range(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	s := NewDecimalScheme()
	s.MinValue, s.MaxValue = -2.5, 2.5
	s.DecimalCount = 4
	values, err := Generate(s, randomness.NewRand(3), 300)
	require.NoError(err)

	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		require.NoError(err)
		require.GreaterOrEqual(f, -2.5)
		require.LessOrEqual(f, 2.5)
	}
}

func TestDecimalScheme_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*DecimalScheme)
		value  float64
		want   string
	}{
		{name: "two decimals", mutate: func(*DecimalScheme) {}, value: 12.5, want: "12.50"},
		{name: "no trailing zeroes", mutate: func(s *DecimalScheme) { s.ShowTrailingZeroes = false }, value: 12.5, want: "12.5"},
		{name: "no trailing zeroes integral", mutate: func(s *DecimalScheme) { s.ShowTrailingZeroes = false }, value: 12, want: "12"},
		{name: "zero decimals", mutate: func(s *DecimalScheme) { s.DecimalCount = 0 }, value: 41.2, want: "41"},
		{name: "custom separators", mutate: func(s *DecimalScheme) {
			s.GroupingSeparatorEnabled = true
			s.GroupingSeparator = "."
			s.DecimalSeparator = ","
		}, value: 1234567.891, want: "1.234.567,89"},
		{name: "negative grouped", mutate: func(s *DecimalScheme) { s.GroupingSeparatorEnabled = true }, value: -9876.5, want: "-9,876.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require := require.New(t)

			s := NewDecimalScheme()
			tt.mutate(s)
			s.MinValue, s.MaxValue = tt.value, tt.value
			require.NoError(Validate(s))

			values, err := Generate(s, randomness.NewRand(1), 1)
			require.NoError(err)
			require.Equal([]string{tt.want}, values)
		})
	}
}

func TestDecimalScheme_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*DecimalScheme)
		wantErr error
	}{
		{name: "defaults", mutate: func(*DecimalScheme) {}},
		{name: "min above max", mutate: func(s *DecimalScheme) { s.MinValue, s.MaxValue = 2, 1 }, wantErr: ErrMinAboveMax},
		{name: "range too large", mutate: func(s *DecimalScheme) { s.MinValue, s.MaxValue = -1e53, 1e53 }, wantErr: ErrRangeTooLarge},
		{name: "nan", mutate: func(s *DecimalScheme) { s.MinValue = math.NaN() }, wantErr: ErrNotFinite},
		{name: "infinite", mutate: func(s *DecimalScheme) { s.MaxValue = math.Inf(1) }, wantErr: ErrNotFinite},
		{name: "negative decimal count", mutate: func(s *DecimalScheme) { s.DecimalCount = -1 }, wantErr: ErrNegativeDecimalCount},
		{name: "grouping separator", mutate: func(s *DecimalScheme) {
			s.GroupingSeparatorEnabled = true
			s.GroupingSeparator = ",,"
		}, wantErr: ErrGroupingSeparatorLength},
		{name: "decimal separator", mutate: func(s *DecimalScheme) { s.DecimalSeparator = "" }, wantErr: ErrDecimalSeparatorLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewDecimalScheme()
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
