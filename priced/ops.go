package priced

import (
	"fmt"
	"math/big"

	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/dbm"
)

// Cost evaluates c(x) at valuation x (len(x) == Dim(), x[0] == 0).
func (p PricedDBM) Cost(x []int32) (big.Rat, error) {
	if len(x) != p.Dim() {
		return big.Rat{}, fmt.Errorf("priced.PricedDBM.Cost: %d != %d: %w", len(x), p.Dim(), ErrDimensionMismatch)
	}
	v0, err := offsetVertex(p.Zone)
	if err != nil {
		return big.Rat{}, err
	}
	sum := new(big.Rat).Set(&p.Offset)
	for i := 1; i < p.Dim(); i++ {
		if p.Rates[i].Sign() == 0 {
			continue
		}
		delta := big.NewRat(int64(x[i]-v0[i]), 1)
		sum.Add(sum, new(big.Rat).Mul(&p.Rates[i], delta))
	}
	return *sum, nil
}

// extremeCost computes the infimum (wantSupremum=false) or supremum
// (wantSupremum=true) of c(·) over the zone.
//
// The offset vertex v0 is, for every clock, its coordinate-wise tightest
// lower bound; a closed, non-empty DBM's closure guarantees this point is
// always feasible (D[i,0] <= D[i,k]+D[k,0] for every k, so no pairwise
// constraint can be violated when every clock sits at its own bound
// simultaneously — the same argument applies symmetrically to the
// all-upper-bounds corner). This makes each rate's contribution
// independent: a clock whose rate points toward v0 already contributes
// nothing (it is evaluated exactly there), and one whose rate points away
// contributes the distance to its opposite corner. This is the closed
// form of the min-cost transportation problem the closure graph encodes:
// since routing each clock's "supply" r_i to the reference clock is
// uncapacitated and single-sink, its cheapest path is exactly the
// already-computed closure distance D[i,0] or D[0,i], so no separate flow
// solver needs to run at query time (see DESIGN.md).
func extremeCost(p PricedDBM, wantSupremum bool) (big.Rat, error) {
	if p.Zone.IsEmpty() {
		return big.Rat{}, ErrEmpty
	}
	v0, err := offsetVertex(p.Zone)
	if err != nil {
		return big.Rat{}, err
	}
	sum := new(big.Rat).Set(&p.Offset)
	for i := 1; i < p.Dim(); i++ {
		r := p.Rates[i]
		if r.Sign() == 0 {
			continue
		}
		goToUpper := (r.Sign() > 0) == wantSupremum
		if !goToUpper {
			continue // the lower corner is v0 itself: zero contribution
		}
		b, err := p.Zone.At(i, 0)
		if err != nil {
			return big.Rat{}, err
		}
		if b.IsInfinity() {
			return big.Rat{}, fmt.Errorf("priced.PricedDBM: clock %d: %w", i, ErrUnbounded)
		}
		delta := big.NewRat(int64(b.Value()-v0[i]), 1)
		sum.Add(sum, new(big.Rat).Mul(&r, delta))
	}
	return *sum, nil
}

// Infimum returns min c(x) for x in the zone. Returns ErrEmpty if the
// zone is empty, ErrUnbounded if a non-zero-rate clock lacks the bound
// the minimum needs.
func (p PricedDBM) Infimum() (big.Rat, error) { return extremeCost(p, false) }

// Supremum returns max c(x) for x in the zone.
func (p PricedDBM) Supremum() (big.Rat, error) { return extremeCost(p, true) }

// reanchor keeps c(·) invariant under a change of offset vertex. Solving
// c0 + r·(x-v0) = c0' + r·(x-v0') for c0' gives c0' = c0 + r·(v0'-v0):
// switching to a new v0' while adding that correction to c0 leaves c(x)
// unchanged for every x still in the zone.
func reanchor(p *PricedDBM, oldV0 []int32) error {
	newV0, err := offsetVertex(p.Zone)
	if err != nil {
		return err
	}
	for i := 1; i < p.Dim(); i++ {
		if p.Rates[i].Sign() == 0 {
			continue
		}
		delta := big.NewRat(int64(newV0[i]-oldV0[i]), 1)
		p.Offset.Add(&p.Offset, new(big.Rat).Mul(&p.Rates[i], delta))
	}
	return nil
}

// IncrementCost adds delta to the offset cost, e.g. for a fixed-cost edge
// traversed alongside a delay or reset.
func (p *PricedDBM) IncrementCost(delta big.Rat) {
	p.Offset.Add(&p.Offset, &delta)
}

// Constrain tightens the zone by xi-xj <= r and re-anchors the cost
// function at the (possibly moved) resulting offset vertex. If the
// constraint empties the zone, the cost function becomes meaningless and
// is left untouched.
func (p *PricedDBM) Constrain(i, j int, r bound.Bound) (dbm.Status, error) {
	oldV0, err := offsetVertex(p.Zone)
	if err != nil {
		return dbm.Unchanged, err
	}
	status := p.Zone.Constrain(i, j, r)
	if status == dbm.Empty {
		return status, nil
	}
	return status, reanchor(p, oldV0)
}

// DelayWithRate applies the future operator and switches to newRate.
//
// Up() only ever relaxes an upper bound (D[i,0] -> infinity); it never
// touches a lower bound (D[0,i]), so the offset vertex — defined purely
// from lower bounds — is unchanged by delay. Re-anchoring a cost function
// at an unmoved vertex is a no-op, so unlike the general case this never
// needs to split the zone: c0 stays exactly as it was, and only the rate
// vector driving future cost accrual changes. (The original algorithm's
// per-facet split exists to maintain a stronger "single cost plane over a
// whole federation" invariant that this package does not carry; see
// DESIGN.md.)
func (p *PricedDBM) DelayWithRate(newRate []big.Rat) error {
	if err := checkRates(p.Dim(), newRate); err != nil {
		return err
	}
	p.Zone.Up()
	p.Rates = newRate
	return nil
}

// UpdateValue resets clock k to the constant v. If k carries a non-zero
// rate, the cost accrued by the best pre-image value of k (the value
// minimizing cost, since a reset image is reachable from any prior value
// of k consistent with the zone) is folded into the offset cost before k
// is fixed and its rate zeroed; remaining clocks are re-anchored as in
// Constrain.
func (p *PricedDBM) UpdateValue(k int, v int32) error {
	if k <= 0 || k >= p.Dim() {
		return fmt.Errorf("priced.PricedDBM.UpdateValue(%d): %w", k, ErrInvalidIndex)
	}
	oldV0, err := offsetVertex(p.Zone)
	if err != nil {
		return err
	}
	if rk := p.Rates[k]; rk.Sign() != 0 {
		goToUpper := rk.Sign() < 0
		var extreme int32
		if goToUpper {
			b, err := p.Zone.At(k, 0)
			if err != nil {
				return err
			}
			if b.IsInfinity() {
				return fmt.Errorf("priced.PricedDBM.UpdateValue: clock %d: %w", k, ErrUnbounded)
			}
			extreme = b.Value()
		} else {
			extreme = oldV0[k]
		}
		delta := big.NewRat(int64(extreme-oldV0[k]), 1)
		p.Offset.Add(&p.Offset, new(big.Rat).Mul(&rk, delta))
		p.Rates[k] = *big.NewRat(0, 1)
	}
	p.Zone.UpdateValue(k, v)
	return reanchor(p, oldV0)
}

// clampRates zeroes the rate of every clock whose upper bound is infinite
// after extrapolation, whether it became so there or already was: a
// non-zero rate over an unbounded clock
// would make the cost of the (over-approximated) widened region diverge,
// so its contribution is dropped rather than carried forward unsoundly.
func clampRates(rates []big.Rat, d dbm.DBM) error {
	for i := 1; i < d.Dim(); i++ {
		if rates[i].Sign() == 0 {
			continue
		}
		b, err := d.At(i, 0)
		if err != nil {
			return err
		}
		if b.IsInfinity() {
			rates[i] = *big.NewRat(0, 1)
		}
	}
	return nil
}

// ExtrapolateMax applies the k-bounds widening, clamps rates of clocks
// whose upper bound is unbounded afterwards, then re-anchors.
func (p *PricedDBM) ExtrapolateMax(m []int32) (dbm.Status, error) {
	oldV0, err := offsetVertex(p.Zone)
	if err != nil {
		return dbm.Unchanged, err
	}
	status := p.Zone.ExtrapolateMax(m)
	if err := clampRates(p.Rates, p.Zone); err != nil {
		return status, err
	}
	return status, reanchor(p, oldV0)
}

// ExtrapolateLU applies the LU-bounds widening, clamps rates of clocks
// whose upper bound is unbounded afterwards, then re-anchors.
func (p *PricedDBM) ExtrapolateLU(l, u []int32) (dbm.Status, error) {
	oldV0, err := offsetVertex(p.Zone)
	if err != nil {
		return dbm.Unchanged, err
	}
	status := p.Zone.ExtrapolateLU(l, u)
	if err := clampRates(p.Rates, p.Zone); err != nil {
		return status, err
	}
	return status, reanchor(p, oldV0)
}

// Relation combines the zone's inclusion relation with a cost comparison
// at a point common to both zones: the offset vertex of whichever side
// the zone relation identifies as the subset (any point in a subset
// zone's domain also lies in the superset's). A cost-dominating subset
// zone (same or cheaper everywhere, verified at that point) yields the
// matching priced relation; otherwise the zones are priced-Different even
// if set-included.
func (p PricedDBM) Relation(q PricedDBM) (dbm.Relation, error) {
	return relation(p, q, false)
}

// RelationStrict is Relation with strict cost domination required: the
// dominating side must be strictly cheaper at the joint point, not merely
// equal-or-cheaper.
func (p PricedDBM) RelationStrict(q PricedDBM) (dbm.Relation, error) {
	return relation(p, q, true)
}

func relation(p, q PricedDBM, strict bool) (dbm.Relation, error) {
	zr, err := p.Zone.Relation(q.Zone)
	if err != nil {
		return dbm.Different, err
	}
	if zr == dbm.Different {
		return dbm.Different, nil
	}

	var point []int32
	switch zr {
	case dbm.Superset:
		point, err = offsetVertex(q.Zone)
	default: // Equal or Subset: p's vertex lies in both
		point, err = offsetVertex(p.Zone)
	}
	if err != nil {
		return dbm.Different, err
	}

	cp, err := p.Cost(point)
	if err != nil {
		return dbm.Different, err
	}
	cq, err := q.Cost(point)
	if err != nil {
		return dbm.Different, err
	}

	dominates := func(cheaper, costlier *big.Rat) bool {
		cmp := cheaper.Cmp(costlier)
		if strict {
			return cmp < 0
		}
		return cmp <= 0
	}

	switch zr {
	case dbm.Equal:
		if cp.Cmp(&cq) == 0 {
			return dbm.Equal, nil
		}
	case dbm.Subset:
		if dominates(&cq, &cp) {
			return dbm.Subset, nil
		}
	case dbm.Superset:
		if dominates(&cp, &cq) {
			return dbm.Superset, nil
		}
	}
	return dbm.Different, nil
}
