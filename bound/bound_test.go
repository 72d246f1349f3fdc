package bound_test

import (
	"errors"
	"testing"

	"github.com/go-dbm/udbm/bound"
	"github.com/stretchr/testify/require"
)

func TestMakeAndAccessors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		b      int32
		strict bool
	}{
		{"zero weak", 0, false},
		{"zero strict", 0, true},
		{"positive weak", 42, false},
		{"negative strict", -7, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r, err := bound.Make(tc.b, tc.strict)
			require.NoError(t, err)
			require.Equal(t, tc.b, r.Value())
			require.Equal(t, tc.strict, r.IsStrict())
			require.False(t, r.IsInfinity())
		})
	}
}

func TestMakeOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := bound.Make(1<<30, false)
	require.Error(t, err)
	require.True(t, errors.Is(err, bound.ErrInvalidBound))
}

func TestConversionLaw(t *testing.T) {
	t.Parallel()

	// bound2raw(b, STRICT) + 1 = bound2raw(b, WEAK)
	strict := bound.MustMake(5, true)
	weak := bound.MustMake(5, false)
	require.Equal(t, weak, strict+1)
}

func TestAddSaturatesAtInfinity(t *testing.T) {
	t.Parallel()

	a := bound.MustMake(3, false)
	b := bound.MustMake(4, true)
	sum := bound.Add(a, b)
	require.Equal(t, int32(7), sum.Value())
	require.True(t, sum.IsStrict(), "strict operand propagates")

	require.Equal(t, bound.LSInfinity, bound.Add(bound.LSInfinity, a))
	require.Equal(t, bound.LSInfinity, bound.Add(a, bound.LSInfinity))
}

func TestAddWeakWeakStaysWeak(t *testing.T) {
	t.Parallel()

	a := bound.MustMake(2, false)
	b := bound.MustMake(3, false)
	sum := bound.Add(a, b)
	require.Equal(t, int32(5), sum.Value())
	require.False(t, sum.IsStrict())
}

func TestNegate(t *testing.T) {
	t.Parallel()

	r := bound.MustMake(5, true)
	n := bound.Negate(r)
	require.Equal(t, int32(-5), n.Value())
	require.False(t, n.IsStrict())

	require.Equal(t, bound.LSInfinity, bound.Negate(bound.LSInfinity))
}

func TestCompareOrderMatchesTightness(t *testing.T) {
	t.Parallel()

	tight := bound.MustMake(3, true)  // x <= 3 strict, i.e. < 3
	loose := bound.MustMake(3, false) // <= 3

	require.Equal(t, -1, bound.Compare(tight, loose))
	require.True(t, bound.Less(tight, loose))
	require.True(t, bound.LessEqual(tight, loose))
	require.Equal(t, 0, bound.Compare(loose, loose))
}

func TestLEZeroIsSmallestNonEmptyDiagonal(t *testing.T) {
	t.Parallel()

	require.Equal(t, int32(0), bound.LEZero.Value())
	require.False(t, bound.LEZero.IsStrict())
}

func TestStringRendering(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<= 3", bound.MustMake(3, false).String())
	require.Equal(t, "< 3", bound.MustMake(3, true).String())
	require.Equal(t, "<inf", bound.LSInfinity.String())
}
