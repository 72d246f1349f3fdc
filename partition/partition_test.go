package partition_test

import (
	"testing"

	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/dbm"
	"github.com/go-dbm/udbm/fed"
	"github.com/go-dbm/udbm/partition"
	"github.com/go-dbm/udbm/udbmctx"
	"github.com/stretchr/testify/require"
)

func zoneUpTo(t *testing.T, ctx *udbmctx.Context, dim int, max int32) dbm.DBM {
	t.Helper()
	d := dbm.New(ctx, dim)
	d.SetInit()
	d.Constrain(1, 0, bound.MustMake(max, false))
	return d
}

func fedOf(t *testing.T, ctx *udbmctx.Context, dim int, zones ...dbm.DBM) fed.Federation {
	t.Helper()
	f := fed.New(ctx, dim)
	for _, z := range zones {
		require.NoError(t, f.Append(z))
	}
	return f
}

func TestAddFirstEntryKeepsWholeFederation(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	p := partition.New[int](ctx, 2)

	require.NoError(t, p.Add(1, fedOf(t, ctx, 2, zoneUpTo(t, ctx, 2, 5))))

	got, ok := p.Get(1)
	require.True(t, ok)
	require.False(t, got.IsEmpty())
	require.True(t, p.All.ContainsPoint([]int32{0, 0}))
}

func TestAddEnforcesDisjointness(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	p := partition.New[int](ctx, 2)

	require.NoError(t, p.Add(1, fedOf(t, ctx, 2, zoneUpTo(t, ctx, 2, 10))))
	// Entirely overlapping with id 1's region: nothing new for id 2.
	require.NoError(t, p.Add(2, fedOf(t, ctx, 2, zoneUpTo(t, ctx, 2, 5))))

	_, ok := p.Get(2)
	require.False(t, ok, "fully-overlapping region contributes nothing")
}

func TestAddRejectsDimensionMismatch(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	p := partition.New[int](ctx, 2)
	err := p.Add(1, fedOf(t, ctx, 3, zoneUpTo(t, ctx, 3, 5)))
	require.ErrorIs(t, err, partition.ErrDimensionMismatch)
}

func TestRelaxedModeSkipsSubtractForNonZeroID(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	p := partition.New[int](ctx, 2, partition.WithRelaxed())

	require.NoError(t, p.Add(1, fedOf(t, ctx, 2, zoneUpTo(t, ctx, 2, 10))))
	// Relaxed + nonzero id: no subtract against All, so this still lands
	// even though it overlaps id 1's region.
	require.NoError(t, p.Add(2, fedOf(t, ctx, 2, zoneUpTo(t, ctx, 2, 5))))

	got, ok := p.Get(2)
	require.True(t, ok)
	require.False(t, got.IsEmpty())
}

func TestRelaxedModeStillSubtractsForZeroID(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	p := partition.New[int](ctx, 2, partition.WithRelaxed())

	require.NoError(t, p.Add(1, fedOf(t, ctx, 2, zoneUpTo(t, ctx, 2, 10))))
	require.NoError(t, p.Add(0, fedOf(t, ctx, 2, zoneUpTo(t, ctx, 2, 5))))

	_, ok := p.Get(0)
	require.False(t, ok, "id==0 always disjoints against All regardless of relaxed mode")
}

func TestWithReduceStrategyConvex(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	p := partition.New[int](ctx, 2, partition.WithReduceStrategy(partition.ReduceConvex))

	require.NoError(t, p.Add(1, fedOf(t, ctx, 2, zoneUpTo(t, ctx, 2, 5))))
	got, ok := p.Get(1)
	require.True(t, ok)
	require.Equal(t, 1, got.Size())
}
