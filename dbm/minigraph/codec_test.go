package minigraph_test

import (
	"testing"

	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/dbm"
	"github.com/go-dbm/udbm/dbm/minigraph"
	"github.com/go-dbm/udbm/udbmctx"
	"github.com/stretchr/testify/require"
)

func zoneWithTwoClocks(t *testing.T) dbm.DBM {
	t.Helper()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 3)
	d.SetInit()
	require.Equal(t, dbm.Tightened, d.Constrain(1, 0, bound.MustMake(10, false)))
	require.Equal(t, dbm.Tightened, d.Constrain(0, 1, bound.MustMake(-2, false)))
	require.Equal(t, dbm.Tightened, d.Constrain(2, 0, bound.MustMake(8, true)))
	return d
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	d := zoneWithTwoClocks(t)

	buf, err := minigraph.Encode(d)
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	ctx := udbmctx.New()
	decoded, err := minigraph.Decode(ctx, buf)
	require.NoError(t, err)
	require.Equal(t, d.Dim(), decoded.Dim())

	for i := 0; i < d.Dim(); i++ {
		for j := 0; j < d.Dim(); j++ {
			want, _ := d.At(i, j)
			got, _ := decoded.At(i, j)
			require.Equalf(t, want, got, "cell (%d,%d)", i, j)
		}
	}
}

func TestEncodeEmptyIsRejected(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	d := dbm.New(ctx, 2)
	_, err := minigraph.Encode(d)
	require.ErrorIs(t, err, minigraph.ErrEmpty)
}

func TestEncodeUsesPacked16WhenBoundsFit(t *testing.T) {
	t.Parallel()
	d := zoneWithTwoClocks(t)
	buf, err := minigraph.Encode(d)
	require.NoError(t, err)
	header := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	flags := header >> 16
	require.Equal(t, uint32(1), flags&1, "packed-16 flag expected for small bounds")
}

func TestEncodeWithTailRoundTrip(t *testing.T) {
	t.Parallel()
	d := zoneWithTwoClocks(t)
	tail := []byte{0xAA, 0xBB, 0xCC, 0xDD}

	buf, err := minigraph.EncodeWithTail(d, tail)
	require.NoError(t, err)

	ctx := udbmctx.New()
	decoded, gotTail, err := minigraph.DecodeWithTail(ctx, buf)
	require.NoError(t, err)
	require.Equal(t, tail, gotTail)

	for i := 0; i < d.Dim(); i++ {
		for j := 0; j < d.Dim(); j++ {
			want, _ := d.At(i, j)
			got, _ := decoded.At(i, j)
			require.Equal(t, want, got)
		}
	}
}

func TestDecodeRejectsUnknownFlagBits(t *testing.T) {
	t.Parallel()
	d := zoneWithTwoClocks(t)
	buf, err := minigraph.Encode(d)
	require.NoError(t, err)

	// Set an undefined flag bit (bit 2 of the flags half-word, byte offset 2).
	corrupt := append([]byte(nil), buf...)
	corrupt[2] |= 0x04

	ctx := udbmctx.New()
	_, err = minigraph.Decode(ctx, corrupt)
	require.ErrorIs(t, err, minigraph.ErrInvalidFormat)
}

func TestDecodeRejectsTruncatedBuffer(t *testing.T) {
	t.Parallel()
	d := zoneWithTwoClocks(t)
	buf, err := minigraph.Encode(d)
	require.NoError(t, err)

	ctx := udbmctx.New()
	_, err = minigraph.Decode(ctx, buf[:len(buf)-1])
	require.ErrorIs(t, err, minigraph.ErrInvalidFormat)
}

func TestDecodeRejectsUnexpectedTail(t *testing.T) {
	t.Parallel()
	d := zoneWithTwoClocks(t)
	buf, err := minigraph.EncodeWithTail(d, []byte{0x01})
	require.NoError(t, err)

	ctx := udbmctx.New()
	_, err = minigraph.Decode(ctx, buf)
	require.ErrorIs(t, err, minigraph.ErrInvalidFormat)
}

func TestComputeOmitsRedundantEdges(t *testing.T) {
	t.Parallel()
	d := zoneWithTwoClocks(t)
	mask, err := minigraph.Compute(d)
	require.NoError(t, err)
	// The diagonal is never part of the minimal graph.
	for i := 0; i < d.Dim(); i++ {
		require.False(t, mask.Test(i*d.Dim()+i))
	}
	// x1-x2 and x2-x1 are implied through the reference clock.
	require.False(t, mask.Test(1*d.Dim()+2))
	require.False(t, mask.Test(2*d.Dim()+1))
}
