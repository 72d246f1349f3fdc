package priced

import (
	"fmt"
	"math/big"

	"github.com/go-dbm/udbm/dbm"
	"github.com/go-dbm/udbm/udbmctx"
)

// PricedDBM pairs a zone with an affine cost function c(x) = c0 +
// Σ ri·(xi - v0i), where v0 is the zone's offset vertex: the
// coordinate-wise minimum valuation under D's closure (spec.md §4.7).
// v0 is never stored; it is re-derived from Zone whenever needed, so it
// can never drift out of sync with a mutated zone.
type PricedDBM struct {
	Zone   dbm.DBM
	Rates  []big.Rat // len == Zone.Dim(); Rates[0] must be 0
	Offset big.Rat   // c0
}

// New returns a priced DBM over the zero zone (every clock at 0) with
// the given rate vector and a zero offset cost. rates[0] must be 0.
func New(ctx *udbmctx.Context, dim int, rates []big.Rat) (PricedDBM, error) {
	if err := checkRates(dim, rates); err != nil {
		return PricedDBM{}, err
	}
	z := dbm.New(ctx, dim)
	z.SetZero()
	return PricedDBM{Zone: z, Rates: rates}, nil
}

func checkRates(dim int, rates []big.Rat) error {
	if len(rates) != dim {
		return fmt.Errorf("priced: rate vector length %d != dim %d: %w", len(rates), dim, ErrRateLength)
	}
	if len(rates) > 0 && rates[0].Sign() != 0 {
		return fmt.Errorf("priced: rates[0] must be 0, got %s: %w", rates[0].String(), ErrRateLength)
	}
	return nil
}

// Dim returns the dimension of the underlying zone.
func (p PricedDBM) Dim() int { return p.Zone.Dim() }

// Copy returns an independent handle sharing the zone's storage (via
// dbm.DBM.Copy) along with its own copies of the rate vector and offset,
// which are plain values and need no explicit aliasing.
func (p PricedDBM) Copy() PricedDBM {
	rates := make([]big.Rat, len(p.Rates))
	copy(rates, p.Rates)
	return PricedDBM{Zone: p.Zone.Copy(), Rates: rates, Offset: p.Offset}
}

// Release drops this handle's reference to the underlying zone.
func (p PricedDBM) Release() { p.Zone.Release() }

// offsetVertex returns the coordinate-wise minimum valuation of d: for
// every clock i, xi = -D[0][i].Value(), the tightest lower bound implied
// by the reference clock. For a closed, non-empty DBM this point always
// lies in the zone (symmetric to the "upper corner" argument used by
// Infimum/Supremum below).
func offsetVertex(d dbm.DBM) ([]int32, error) {
	dim := d.Dim()
	v0 := make([]int32, dim)
	for i := 0; i < dim; i++ {
		b, err := d.At(0, i)
		if err != nil {
			return nil, err
		}
		if b.IsInfinity() {
			return nil, fmt.Errorf("priced: clock %d has no lower bound: %w", i, ErrUnbounded)
		}
		v0[i] = -b.Value()
	}
	return v0, nil
}
