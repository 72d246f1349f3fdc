package fed_test

import (
	"testing"

	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/dbm"
	"github.com/go-dbm/udbm/fed"
	"github.com/go-dbm/udbm/udbmctx"
	"github.com/stretchr/testify/require"
)

func initZone(ctx *udbmctx.Context, dim int) dbm.DBM {
	d := dbm.New(ctx, dim)
	d.SetInit()
	return d
}

func TestNewIsEmpty(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	f := fed.New(ctx, 2)
	require.True(t, f.IsEmpty())
	require.Equal(t, 0, f.Size())
}

func TestAppendSkipsEmptyZones(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	f := fed.New(ctx, 2)
	require.NoError(t, f.Append(dbm.New(ctx, 2))) // canonical empty DBM
	require.Equal(t, 0, f.Size())

	require.NoError(t, f.Append(initZone(ctx, 2)))
	require.Equal(t, 1, f.Size())
}

func TestAppendRejectsDimensionMismatch(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	f := fed.New(ctx, 2)
	err := f.Append(initZone(ctx, 3))
	require.ErrorIs(t, err, fed.ErrDimensionMismatch)
}

func TestUnionConcatenatesZones(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	a := fed.New(ctx, 2)
	require.NoError(t, a.Append(initZone(ctx, 2)))

	b := fed.New(ctx, 2)
	z := initZone(ctx, 2)
	z.Constrain(1, 0, bound.MustMake(5, false))
	require.NoError(t, b.Append(z))

	require.NoError(t, a.Union(b))
	require.Equal(t, 2, a.Size())
}

func TestIntersectionDropsEmptyPairs(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()

	a := fed.New(ctx, 2)
	za := initZone(ctx, 2)
	za.Constrain(1, 0, bound.MustMake(5, false)) // x<=5
	require.NoError(t, a.Append(za))

	b := fed.New(ctx, 2)
	zb := initZone(ctx, 2)
	zb.Constrain(0, 1, bound.MustMake(-10, false)) // x>=10, disjoint from a
	require.NoError(t, b.Append(zb))

	require.NoError(t, a.Intersection(b))
	require.True(t, a.IsEmpty())
}

func TestConstrainFiltersEmptyZones(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	f := fed.New(ctx, 2)
	require.NoError(t, f.Append(initZone(ctx, 2)))
	require.Equal(t, 1, f.Size())

	f.Constrain(dbm.Constraint{I: 1, J: 0, Bound: bound.MustMake(0, true)}) // x<0: empty
	require.True(t, f.IsEmpty())
}

func TestSubtractSplitsZoneAndPreservesCoverage(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	f := fed.New(ctx, 2)
	big := initZone(ctx, 2)
	big.Constrain(1, 0, bound.MustMake(10, false)) // 0<=x<=10
	require.NoError(t, f.Append(big))

	hole := fed.New(ctx, 2)
	h := initZone(ctx, 2)
	h.Constrain(1, 0, bound.MustMake(7, false))
	h.Constrain(0, 1, bound.MustMake(-3, false)) // 3<=x<=7
	require.NoError(t, hole.Append(h))

	require.NoError(t, f.Subtract(hole))
	require.True(t, f.Size() >= 1)
	require.True(t, f.ContainsPoint([]int32{0, 0}))
	require.True(t, f.ContainsPoint([]int32{0, 9}))
	require.False(t, f.ContainsPoint([]int32{0, 5}))
}

func TestRelationSubsetAndEqual(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()

	a := fed.New(ctx, 2)
	za := initZone(ctx, 2)
	za.Constrain(1, 0, bound.MustMake(5, false))
	require.NoError(t, a.Append(za))

	b := fed.New(ctx, 2)
	zb := initZone(ctx, 2)
	require.NoError(t, b.Append(zb)) // unconstrained init, superset of a

	rel, err := a.Relation(b)
	require.NoError(t, err)
	require.Equal(t, dbm.Subset, rel)

	rel, err = b.Relation(a)
	require.NoError(t, err)
	require.Equal(t, dbm.Superset, rel)

	c := a.Copy()
	rel, err = a.Relation(c)
	require.NoError(t, err)
	require.Equal(t, dbm.Equal, rel)
}

func TestReduceDropsSubsumedZone(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	f := fed.New(ctx, 2)

	wide := initZone(ctx, 2)
	require.NoError(t, f.Append(wide))

	narrow := initZone(ctx, 2)
	narrow.Constrain(1, 0, bound.MustMake(5, false))
	require.NoError(t, f.Append(narrow))

	require.Equal(t, 2, f.Size())
	f.Reduce()
	require.Equal(t, 1, f.Size())
}

func TestMergeReduceMergesAdjacentZones(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	f := fed.New(ctx, 2)

	left := initZone(ctx, 2)
	left.Constrain(1, 0, bound.MustMake(5, false)) // 0<=x<=5
	require.NoError(t, f.Append(left))

	right := initZone(ctx, 2)
	right.Constrain(0, 1, bound.MustMake(-5, false)) // x>=5
	right.Constrain(1, 0, bound.MustMake(10, false))// x<=10
	require.NoError(t, f.Append(right))

	f.MergeReduce()
	require.Equal(t, 1, f.Size())
	require.True(t, f.ContainsPoint([]int32{0, 0}))
	require.True(t, f.ContainsPoint([]int32{0, 10}))
}

func TestIteratorExtractRemoveInsert(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	f := fed.New(ctx, 2)
	require.NoError(t, f.Append(initZone(ctx, 2)))
	z2 := initZone(ctx, 2)
	z2.Constrain(1, 0, bound.MustMake(3, false))
	require.NoError(t, f.Append(z2))
	require.Equal(t, 2, f.Size())

	it := f.Iterate()
	require.True(t, it.Valid())
	extracted := it.Extract()
	require.Equal(t, 1, f.Size())
	extracted.Release()

	it2 := f.Iterate()
	it2.Insert(initZone(ctx, 2))
	require.Equal(t, 2, f.Size())

	it3 := f.Iterate()
	it3.Remove()
	require.Equal(t, 1, f.Size())
}

func TestCopyOnWriteIndependence(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	f := fed.New(ctx, 2)
	require.NoError(t, f.Append(initZone(ctx, 2)))

	g := f.Copy()
	require.NoError(t, g.Append(initZone(ctx, 2)))

	require.Equal(t, 1, f.Size())
	require.Equal(t, 2, g.Size())
}

func TestGetValuation(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	f := fed.New(ctx, 2)
	_, ok := f.GetValuation()
	require.False(t, ok)

	require.NoError(t, f.Append(initZone(ctx, 2)))
	x, ok := f.GetValuation()
	require.True(t, ok)
	require.Len(t, x, 2)
	require.True(t, f.ContainsPoint(x))
}

func TestPredtIsDisjointFromBadDownClosure(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()

	self := fed.New(ctx, 2)
	require.NoError(t, self.Append(initZone(ctx, 2)))

	bad := fed.New(ctx, 2)
	zb := initZone(ctx, 2)
	zb.Constrain(1, 0, bound.MustMake(5, false))
	zb.Constrain(0, 1, bound.MustMake(-5, false))
	require.NoError(t, bad.Append(zb)) // the single point x==5

	result, err := self.Predt(bad)
	require.NoError(t, err)
	require.False(t, result.ContainsPoint([]int32{0, 5}))
}
