package priced_test

import (
	"math/big"
	"testing"

	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/priced"
	"github.com/go-dbm/udbm/udbmctx"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	p, err := priced.New(ctx, 2, rates(0, 3))
	require.NoError(t, err)
	p.Zone.SetInit()
	_, err = p.Constrain(1, 0, bound.MustMake(7, false))
	require.NoError(t, err)
	p.Offset = *big.NewRat(5, 1)

	b, err := priced.Encode(p)
	require.NoError(t, err)

	got, err := priced.Decode(ctx, b)
	require.NoError(t, err)
	require.Equal(t, p.Dim(), got.Dim())

	gotInf, err := got.Infimum()
	require.NoError(t, err)
	wantInf, err := p.Infimum()
	require.NoError(t, err)
	require.Equal(t, wantInf.RatString(), gotInf.RatString())
}

func TestEncodeRejectsNonIntegerRate(t *testing.T) {
	t.Parallel()
	ctx := udbmctx.New()
	p, err := priced.New(ctx, 2, []big.Rat{*big.NewRat(0, 1), *big.NewRat(1, 3)})
	require.NoError(t, err)
	p.Zone.SetInit()

	_, err = priced.Encode(p)
	require.ErrorIs(t, err, priced.ErrNonIntegerCost)
}
