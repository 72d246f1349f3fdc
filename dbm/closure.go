package dbm

import "github.com/go-dbm/udbm/bound"

// closeData runs Floyd–Warshall shortest-path closure over a dim×dim
// row-major matrix of raw bounds, in place. It returns Empty if any
// diagonal entry becomes tighter than LEZero (invariant 4 of spec.md §3),
// writing the canonical empty marker to D[0,0]; otherwise Tightened if any
// cell was strictly tightened, or Unchanged if the matrix was already
// closed.
//
// Complexity: O(n³).
func closeData(data []bound.Bound, dim int) Status {
	changed := false
	for k := 0; k < dim; k++ {
		for i := 0; i < dim; i++ {
			dik := data[idx(dim, i, k)]
			if dik.IsInfinity() {
				continue
			}
			for j := 0; j < dim; j++ {
				dkj := data[idx(dim, k, j)]
				if dkj.IsInfinity() {
					continue
				}
				ij := idx(dim, i, j)
				candidate := bound.Add(dik, dkj)
				if bound.Less(candidate, data[ij]) {
					data[ij] = candidate
					changed = true
				}
			}
		}
	}
	return finishClosure(data, dim, changed)
}

// finishClosure checks the diagonal for the emptiness witness (invariant
// 4) and writes the canonical empty marker if found, translating the
// "changed" bookkeeping into the three-valued Status contract.
func finishClosure(data []bound.Bound, dim int, changed bool) Status {
	for i := 0; i < dim; i++ {
		if bound.Less(data[idx(dim, i, i)], bound.LEZero) {
			data[idx(dim, 0, 0)] = emptyMarker
			return Empty
		}
	}
	if changed {
		return Tightened
	}
	return Unchanged
}

// close1Data reclosures a matrix after tightening an operation that only
// touched row/column k as a whole (a reset-style rewrite), relaxing every
// (i,j) pair through k as the sole intermediate vertex.
//
// Complexity: O(n²).
func close1Data(data []bound.Bound, dim int, k int) Status {
	changed := false
	for i := 0; i < dim; i++ {
		dik := data[idx(dim, i, k)]
		if dik.IsInfinity() {
			continue
		}
		for j := 0; j < dim; j++ {
			dkj := data[idx(dim, k, j)]
			if dkj.IsInfinity() {
				continue
			}
			ij := idx(dim, i, j)
			candidate := bound.Add(dik, dkj)
			if bound.Less(candidate, data[ij]) {
				data[ij] = candidate
				changed = true
			}
		}
	}
	return finishClosure(data, dim, changed)
}

// closeXData applies close1Data once for every clock index named in ks,
// in order, then performs a single emptiness check.
//
// Complexity: O(|ks|·n²).
func closeXData(data []bound.Bound, dim int, ks []int) Status {
	changed := false
	for _, k := range ks {
		st := close1Data(data, dim, k)
		if st == Empty {
			return Empty
		}
		if st == Tightened {
			changed = true
		}
	}
	return finishClosure(data, dim, changed)
}
