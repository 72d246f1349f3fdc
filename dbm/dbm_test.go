package dbm_test

import (
	"testing"

	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/dbm"
	"github.com/go-dbm/udbm/udbmctx"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 3)
	require.True(t, d.IsEmpty())
}

func TestSetInitIsEqualToInitAndZero(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 1)
	d.SetInit()
	require.False(t, d.IsEmpty())
	require.True(t, d.IsEqualToInit())
	// dim=1: only the reference clock; init == zero (spec.md §8 boundary).
	require.True(t, d.IsEqualToZero())
}

func TestClosureDetectsInconsistency(t *testing.T) {
	t.Parallel()
	// Scenario 1 from spec.md §8: n=3, init, x1-x2<=3, x2-x1<=-5 ⇒ Empty.
	ctx := udbmctx.New()
	d := dbm.New(ctx, 3)
	d.SetInit()

	st := d.Constrain(1, 2, bound.MustMake(3, false))
	require.NotEqual(t, dbm.Empty, st)

	st = d.Constrain(2, 1, bound.MustMake(-5, false))
	require.Equal(t, dbm.Empty, st)
	require.True(t, d.IsEmpty())
}

func TestConstrainUnchangedWhenAlreadyTighter(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	d.SetInit()
	d.Constrain(1, 0, bound.MustMake(5, false))
	st := d.Constrain(1, 0, bound.MustMake(10, false))
	require.Equal(t, dbm.Unchanged, st)
}

func TestXLessThanZeroIsEmptyForNonTrivialDimensions(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	d.SetInit()
	st := d.Constrain(1, 0, bound.MustMake(0, true)) // x1 < 0
	require.Equal(t, dbm.Empty, st)
}

func TestIntersectIdempotent(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	d.SetInit()
	d.Constrain(1, 0, bound.MustMake(5, false))

	e := dbm.New(ctx, 2)
	e.SetInit()
	e.Constrain(1, 0, bound.MustMake(5, false))

	st, err := d.Intersect(e)
	require.NoError(t, err)
	require.NotEqual(t, dbm.Empty, st)
	rel, err := d.Relation(e)
	require.NoError(t, err)
	require.Equal(t, dbm.Equal, rel)
}

func TestUpIdempotent(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	d.SetZero()
	d.Up()
	before := snapshot(d)
	d.Up()
	require.Equal(t, before, snapshot(d))
}

func TestDownIdempotent(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	d.SetInit()
	d.Constrain(1, 0, bound.MustMake(5, false))
	d.Down()
	before := snapshot(d)
	d.Down()
	require.Equal(t, before, snapshot(d))
}

func TestDelayAfterResetPreservesOtherClocks(t *testing.T) {
	t.Parallel()
	// Boundary: Up() only ever rewrites column 0 (upper bounds against
	// the reference clock); a clock's lower bound and its relation to
	// clocks other than the one just reset survive delay exactly.
	ctx := udbmctx.New()
	d := dbm.New(ctx, 3)
	d.SetInit()
	d.Constrain(0, 2, bound.MustMake(-3, false)) // x2 >= 3
	before, err := d.At(0, 2)
	require.NoError(t, err)

	d.UpdateValue(1, 0) // x1 := 0, a reset unrelated to clock 2
	d.Up()

	after, err := d.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestCloseIdempotent(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 3)
	d.SetInit()
	d.Constrain(1, 0, bound.MustMake(5, false))
	d.Close()
	before := snapshot(d)
	st := d.Close()
	require.Equal(t, dbm.Unchanged, st)
	require.Equal(t, before, snapshot(d))
}

func TestSubtractSplitsCorrectly(t *testing.T) {
	t.Parallel()
	// Scenario 2 from spec.md §8.
	ctx := udbmctx.New()
	d := dbm.New(ctx, 3)
	d.SetInit()
	d.Constrain(1, 0, bound.MustMake(10, false))
	d.Constrain(0, 1, bound.MustMake(0, false))
	d.Constrain(2, 0, bound.MustMake(10, false))
	d.Constrain(0, 2, bound.MustMake(0, false))

	e := dbm.New(ctx, 3)
	e.SetInit()
	e.Constrain(1, 0, bound.MustMake(5, false))
	e.Constrain(0, 1, bound.MustMake(-3, false))
	e.Constrain(2, 0, bound.MustMake(5, false))
	e.Constrain(0, 2, bound.MustMake(-3, false))

	var pieces []dbm.DBM
	err := d.Subtract(e, func(p dbm.DBM) { pieces = append(pieces, p) })
	require.NoError(t, err)
	require.NotEmpty(t, pieces)
	for _, p := range pieces {
		require.False(t, p.IsEmpty())
	}
}

func TestSubtractSelfIsEmpty(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	d.SetInit()
	d.Constrain(1, 0, bound.MustMake(5, false))

	var pieces []dbm.DBM
	err := d.Subtract(d, func(p dbm.DBM) { pieces = append(pieces, p) })
	require.NoError(t, err)
	require.Empty(t, pieces)
}

func TestInternPointerEquality(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()

	a := dbm.New(ctx, 2)
	a.SetInit()
	a.Constrain(1, 0, bound.MustMake(3, false))

	b := dbm.New(ctx, 2)
	b.SetZero()
	b.SetInit()
	b.Constrain(1, 0, bound.MustMake(3, false))

	ia := a.Intern()
	ib := b.Intern()
	require.True(t, dbm.Same(ia, ib))
	require.Equal(t, ia.Hash(), ib.Hash())

	iia := ia.Intern()
	require.True(t, dbm.Same(iia, ia))
}

func TestSatisfies(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	d.SetInit()
	d.Constrain(1, 0, bound.MustMake(5, false)) // x1 <= 5

	require.True(t, d.Satisfies(1, 0, bound.MustMake(10, false)))
	require.False(t, d.Satisfies(0, 1, bound.MustMake(-6, false))) // x1 >= 6 contradicts x1<=5
}

func TestContainsPoint(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	d.SetInit()
	d.Constrain(1, 0, bound.MustMake(5, false))

	require.True(t, d.ContainsPoint([]int32{0, 3}))
	require.False(t, d.ContainsPoint([]int32{0, 6}))
}

func TestExtrapolateMaxIdempotent(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	d.SetInit()
	d.Constrain(1, 0, bound.MustMake(100, false))

	m := []int32{0, 5}
	d.ExtrapolateMax(m)
	before := snapshot(d)
	d.ExtrapolateMax(m)
	require.Equal(t, before, snapshot(d))
}

func TestUpdateValuePreservesClosedForm(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	d.SetZero()
	d.Up()
	d.Constrain(1, 0, bound.MustMake(2, false)) // 0<=x1<=2

	d.UpdateValue(1, 0)
	require.True(t, d.ContainsPoint([]int32{0, 0}))
}

func TestRelaxAllPromotesStrictToWeak(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	d.SetInit()
	d.Constrain(1, 0, bound.MustMake(5, true))
	r, err := d.At(1, 0)
	require.NoError(t, err)
	require.True(t, r.IsStrict())

	d.RelaxAll()
	r, err = d.At(1, 0)
	require.NoError(t, err)
	require.False(t, r.IsStrict())
}

func snapshot(d dbm.DBM) []bound.Bound {
	dim := d.Dim()
	out := make([]bound.Bound, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			v, _ := d.At(i, j)
			out[i*dim+j] = v
		}
	}
	return out
}
