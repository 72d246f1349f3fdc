package dbm

import "github.com/go-dbm/udbm/bound"

// subtractData enumerates the DBMs whose union is D \ E by splitting D
// along each constraint of E that cuts it, the classic "onion-peeling"
// zone subtraction algorithm: the remainder still satisfying all of E's
// constraints so far is narrowed step by step, and at each step the
// piece that violates the current constraint of E is peeled off as one
// output zone.
//
// Each emitted piece is already in canonical form. Complexity is
// O(n²) splits, each requiring an O(n³) reclosure.
func subtractData(d, e []bound.Bound, dim int, emit func(piece []bound.Bound)) {
	remainder := make([]bound.Bound, len(d))
	copy(remainder, d)

	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue
			}
			eij := e[idx(dim, i, j)]
			if eij.IsInfinity() {
				continue
			}
			// Complement of "xi-xj ≼ eij" is "xj-xi ≼ negate(eij)".
			complement := bound.Negate(eij)
			piece := make([]bound.Bound, len(remainder))
			copy(piece, remainder)
			if st := constrainData(piece, dim, j, i, complement); st != Empty {
				emit(piece)
			}
			// Narrow the remainder to the region still satisfying E's
			// constraint at (i,j), continuing to peel against the rest.
			if st := constrainData(remainder, dim, i, j, eij); st == Empty {
				return
			}
		}
	}
}
