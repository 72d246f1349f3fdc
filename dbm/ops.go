package dbm

import "github.com/go-dbm/udbm/bound"

// initData sets data to the canonical "init" DBM: every clock unbounded
// above, non-negative below, diagonal zero.
func initData(data []bound.Bound, dim int) {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			switch {
			case i == j:
				data[idx(dim, i, j)] = bound.LEZero
			case i == 0:
				data[idx(dim, i, j)] = bound.LEZero
			default:
				data[idx(dim, i, j)] = bound.LSInfinity
			}
		}
	}
}

// zeroData sets every entry (including off-diagonal) to LEZero: the
// single point where every clock equals zero.
func zeroData(data []bound.Bound, dim int) {
	for i := 0; i < dim*dim; i++ {
		data[i] = bound.LEZero
	}
}

// constrainData tightens cell (i,j) to r if r is strictly tighter than
// the current value, then reclosures the full matrix. Returns Unchanged
// without modifying data if r does not tighten the constraint; otherwise
// Tightened, or Empty if the reclosure finds the zone empty.
func constrainData(data []bound.Bound, dim int, i, j int, r bound.Bound) Status {
	cur := data[idx(dim, i, j)]
	if bound.LessEqual(cur, r) {
		return Unchanged
	}
	data[idx(dim, i, j)] = r
	if closeData(data, dim) == Empty {
		return Empty
	}
	return Tightened
}

// constrainAllData applies every tightening in cs before a single
// reclosure, matching spec.md's batch-constrain contract.
func constrainAllData(data []bound.Bound, dim int, cs []Constraint) Status {
	changed := false
	for _, c := range cs {
		cell := idx(dim, c.I, c.J)
		if bound.Less(c.Bound, data[cell]) {
			data[cell] = c.Bound
			changed = true
		}
	}
	if !changed {
		return Unchanged
	}
	if closeData(data, dim) == Empty {
		return Empty
	}
	return Tightened
}

// intersectData takes the cell-wise minimum of a and b into dst (dst may
// alias a), then reclosures. Returns Unchanged if b tightens no cell of a.
func intersectData(dst, a, b []bound.Bound, dim int) Status {
	changed := false
	for i := 0; i < dim*dim; i++ {
		if bound.Less(b[i], a[i]) {
			dst[i] = b[i]
			changed = true
		} else {
			dst[i] = a[i]
		}
	}
	if !changed {
		return Unchanged
	}
	if closeData(dst, dim) == Empty {
		return Empty
	}
	return Tightened
}

// relationData computes the four-valued inclusion relation between two
// closed DBMs of the same dimension by pairwise comparison of raw bounds:
// a ⊆ b iff a[c] <= b[c] for every cell c (smaller raw = tighter set).
func relationData(a, b []bound.Bound, dim int) Relation {
	aSubsetB := true
	bSubsetA := true
	for i := 0; i < dim*dim; i++ {
		if bound.Compare(a[i], b[i]) > 0 {
			aSubsetB = false
		}
		if bound.Compare(b[i], a[i]) > 0 {
			bSubsetA = false
		}
		if !aSubsetB && !bSubsetA {
			return Different
		}
	}
	switch {
	case aSubsetB && bSubsetA:
		return Equal
	case aSubsetB:
		return Subset
	case bSubsetA:
		return Superset
	default:
		return Different
	}
}

// upData applies the future operator: every clock's upper bound against
// the reference clock is removed, letting time pass unboundedly. The
// result is already closed; no reclosure is required.
func upData(data []bound.Bound, dim int) {
	for i := 1; i < dim; i++ {
		data[idx(dim, i, 0)] = bound.LSInfinity
	}
}

// downData applies the past operator: each clock's lower bound becomes
// the tightest lower bound reachable by letting any other clock's value
// stand in for it, respecting non-negativity.
func downData(data []bound.Bound, dim int) {
	for j := 1; j < dim; j++ {
		best := bound.LEZero
		for i := 1; i < dim; i++ {
			cell := data[idx(dim, i, j)]
			if bound.Less(cell, best) {
				best = cell
			}
		}
		data[idx(dim, 0, j)] = best
	}
}

// freeClockData unconstrains clock k against every other clock: its
// upper bounds are all removed and its lower bounds are re-derived from
// the reference clock's own bounds (k becomes "free" in both directions
// except through 0).
func freeClockData(data []bound.Bound, dim int, k int) {
	for j := 0; j < dim; j++ {
		data[idx(dim, k, j)] = bound.LSInfinity
	}
	for j := 0; j < dim; j++ {
		data[idx(dim, j, k)] = data[idx(dim, j, 0)]
	}
	data[idx(dim, k, k)] = bound.LEZero
}

// freeUpData removes the upper bound on clock k (k may grow without
// bound): every off-diagonal entry of row k becomes LSInfinity, leaving
// its lower bounds (column k) intact.
func freeUpData(data []bound.Bound, dim int, k int) {
	for j := 0; j < dim; j++ {
		if j != k {
			data[idx(dim, k, j)] = bound.LSInfinity
		}
	}
}

// freeDownData removes the lower bound on clock k down to non-negativity:
// column k is re-derived from column 0 (as in freeClockData), leaving its
// upper bounds (row k) intact.
func freeDownData(data []bound.Bound, dim int, k int) {
	for j := 0; j < dim; j++ {
		data[idx(dim, j, k)] = data[idx(dim, j, 0)]
	}
	data[idx(dim, k, k)] = bound.LEZero
}

// freeAllUpData applies freeUpData to every clock.
func freeAllUpData(data []bound.Bound, dim int) {
	for k := 1; k < dim; k++ {
		freeUpData(data, dim, k)
	}
}

// freeAllDownData applies freeDownData to every clock.
func freeAllDownData(data []bound.Bound, dim int) {
	for k := 1; k < dim; k++ {
		freeDownData(data, dim, k)
	}
}

// shiftBound adds an integer constant to a finite bound's value while
// preserving its strictness; LSInfinity is absorbing.
func shiftBound(r bound.Bound, delta int32) bound.Bound {
	if r.IsInfinity() {
		return bound.LSInfinity
	}
	shifted, err := bound.Make(r.Value()+delta, r.IsStrict())
	if err != nil {
		return bound.LSInfinity
	}
	return shifted
}

// updateValueData assigns xk := v via the closed-form rewrite of row and
// column k from row and column 0, avoiding a full reclosure.
func updateValueData(data []bound.Bound, dim int, k int, v int32) {
	for j := 0; j < dim; j++ {
		if j == k {
			continue
		}
		data[idx(dim, k, j)] = shiftBound(data[idx(dim, 0, j)], v)
		data[idx(dim, j, k)] = shiftBound(data[idx(dim, j, 0)], -v)
	}
	data[idx(dim, k, k)] = bound.LEZero
}

// updateClockData assigns xk := xj via the closed-form rewrite of row and
// column k from row and column j.
func updateClockData(data []bound.Bound, dim int, k, j int) {
	for m := 0; m < dim; m++ {
		if m == k {
			continue
		}
		data[idx(dim, k, m)] = data[idx(dim, j, m)]
		data[idx(dim, m, k)] = data[idx(dim, m, j)]
	}
	data[idx(dim, k, k)] = bound.LEZero
}

// updateIncrementData assigns xk := xk + v by shifting row and column k.
func updateIncrementData(data []bound.Bound, dim int, k int, v int32) {
	for m := 0; m < dim; m++ {
		if m == k {
			continue
		}
		data[idx(dim, k, m)] = shiftBound(data[idx(dim, k, m)], v)
		data[idx(dim, m, k)] = shiftBound(data[idx(dim, m, k)], -v)
	}
}

// updateData assigns xk := xj + v, combining updateClockData and
// updateIncrementData's closed forms in one rewrite.
func updateData(data []bound.Bound, dim int, k, j int, v int32) {
	for m := 0; m < dim; m++ {
		if m == k {
			continue
		}
		data[idx(dim, k, m)] = shiftBound(data[idx(dim, j, m)], v)
		data[idx(dim, m, k)] = shiftBound(data[idx(dim, m, j)], -v)
	}
	data[idx(dim, k, k)] = bound.LEZero
}

// satisfiesData reports whether intersecting with xi - xj ≼ r would keep
// the DBM non-empty, without actually constraining it:
// D ⊓ {xi-xj≼r} is non-empty iff negate(r) < D[j,i].
func satisfiesData(data []bound.Bound, dim int, i, j int, r bound.Bound) bool {
	return bound.Less(bound.Negate(r), data[idx(dim, j, i)])
}

// isUnboundedData reports whether every clock lacks an upper bound
// against the reference clock.
func isUnboundedData(data []bound.Bound, dim int) bool {
	for i := 1; i < dim; i++ {
		if !data[idx(dim, i, 0)].IsInfinity() {
			return false
		}
	}
	return true
}

// equalData reports whether two same-dimension matrices are cell-wise
// identical.
func equalData(a, b []bound.Bound) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isEqualToInitData reports whether data equals the canonical init DBM.
func isEqualToInitData(data []bound.Bound, dim int) bool {
	ref := make([]bound.Bound, dim*dim)
	initData(ref, dim)
	return equalData(data, ref)
}

// isEqualToZeroData reports whether data equals the canonical zero DBM.
func isEqualToZeroData(data []bound.Bound, dim int) bool {
	ref := make([]bound.Bound, dim*dim)
	zeroData(ref, dim)
	return equalData(data, ref)
}

// containsPointData reports whether the integer point x (len == dim,
// x[0] == 0) satisfies every constraint in data.
func containsPointData(data []bound.Bound, dim int, x []int32) bool {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue
			}
			r := data[idx(dim, i, j)]
			if r.IsInfinity() {
				continue
			}
			diff := x[i] - x[j]
			if r.IsStrict() {
				if !(diff < r.Value()) {
					return false
				}
			} else {
				if !(diff <= r.Value()) {
					return false
				}
			}
		}
	}
	return true
}

// containsRealPointData is containsPointData's real-valued counterpart,
// used for witness points with fractional clock values.
func containsRealPointData(data []bound.Bound, dim int, x []float64) bool {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue
			}
			r := data[idx(dim, i, j)]
			if r.IsInfinity() {
				continue
			}
			diff := x[i] - x[j]
			if r.IsStrict() {
				if !(diff < float64(r.Value())) {
					return false
				}
			} else {
				if !(diff <= float64(r.Value())) {
					return false
				}
			}
		}
	}
	return true
}

// relaxCell promotes a strict cell to weak in place, leaving weak cells
// and infinity untouched.
func relaxCell(data []bound.Bound, idx int) {
	r := data[idx]
	if r.IsInfinity() || !r.IsStrict() {
		return
	}
	relaxed, err := bound.Make(r.Value(), false)
	if err == nil {
		data[idx] = relaxed
	}
}

// relaxUpData promotes every clock's upper bound (row against 0) from
// strict to weak.
func relaxUpData(data []bound.Bound, dim int) {
	for i := 1; i < dim; i++ {
		relaxCell(data, idx(dim, i, 0))
	}
}

// relaxDownData promotes every clock's lower bound (column from 0) from
// strict to weak.
func relaxDownData(data []bound.Bound, dim int) {
	for j := 1; j < dim; j++ {
		relaxCell(data, idx(dim, 0, j))
	}
}

// relaxAllData promotes every off-diagonal strict bound to weak.
func relaxAllData(data []bound.Bound, dim int) {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue
			}
			relaxCell(data, idx(dim, i, j))
		}
	}
}
