package music

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDurationValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		d    Duration
		want Fraction
	}{
		{"whole", Duration{Base: 1}, Fraction{1, 1}},
		{"quarter", Duration{Base: 4}, Fraction{1, 4}},
		{"dotted quarter", Duration{Base: 4, Dots: 1}, Fraction{3, 8}},
		{"double dotted half", Duration{Base: 2, Dots: 2}, Fraction{7, 8}},
		{"eighth triplet", Duration{Base: 8, Tuplet: Tuplet{3, 2}}, Fraction{1, 12}},
		{"dotted quarter in 5/4 tuplet", Duration{Base: 4, Dots: 1, Tuplet: Tuplet{5, 4}}, Fraction{3, 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.d.Value())
			require.Equal(t, 1, tc.d.Value().Cmp(Fraction{}), "durations are strictly positive")
		})
	}
}

func TestDurationValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Duration{Base: 64, Dots: 3}.Validate())
	require.Error(t, Duration{Base: 3}.Validate(), "non power of two")
	require.Error(t, Duration{Base: 128}.Validate(), "too short")
	require.Error(t, Duration{Base: 0}.Validate())
	require.Error(t, Duration{Base: 4, Dots: 4}.Validate())
	require.Error(t, Duration{Base: 4, Tuplet: Tuplet{1, 1}}.Validate())
}

func TestFractionArithmetic(t *testing.T) {
	t.Parallel()

	sum := NewFraction(1, 4).Add(NewFraction(1, 8)).Add(NewFraction(1, 8))
	require.Equal(t, Fraction{1, 2}, sum)
	require.Equal(t, -1, sum.Cmp(NewFraction(3, 4)))
	require.Equal(t, 0, sum.Cmp(NewFraction(2, 4)))
}
