package dbm

import "github.com/go-dbm/udbm/bound"

// extrapolateLUData implements the standard LU-extrapolation widening
// (Behrmann, Bouyer, Larsen, Pelánek): L[i] bounds clock i's lower-bound
// abstraction, U[i] its upper-bound abstraction. A bound exceeding the
// relevant constant is set to infinity; a lower bound tighter than the
// negated constant is relaxed to that constant, strict. Reclosure
// follows, since the rewrite can locally violate the triangle
// inequality between unrelated clocks.
func extrapolateLUData(data []bound.Bound, dim int, l, u []int32) Status {
	for i := 1; i < dim; i++ {
		cell := idx(dim, i, 0)
		if r := data[cell]; !r.IsInfinity() && r.Value() > l[i] {
			data[cell] = bound.LSInfinity
		}
	}
	for i := 1; i < dim; i++ {
		for j := 1; j < dim; j++ {
			if i == j {
				continue
			}
			cell := idx(dim, i, j)
			r := data[cell]
			switch {
			case !r.IsInfinity() && r.Value() > l[i]:
				data[cell] = bound.LSInfinity
			case data[idx(dim, 0, j)].Value() < -u[j]:
				// i != 0 here (the loop starts at 1): Extra+_LU relaxes
				// to infinity, not to (<, -u[j]) — that finite clamp is
				// only for the i == 0 row, handled below. Clamping a
				// large/infinite D[i,j] to a finite negative bound here
				// would shrink the zone.
				data[cell] = bound.LSInfinity
			}
		}
	}
	for j := 1; j < dim; j++ {
		cell := idx(dim, 0, j)
		if r := data[cell]; r.Value() < -u[j] {
			data[cell] = bound.MustMake(-u[j], true)
		}
	}
	return closeData(data, dim)
}

// extrapolateMaxData is extrapolateLUData specialized to a single bound
// vector M used for both the lower- and upper-bound role (the classic
// "max bounds" widening, a special case of LU-extrapolation with L=U=M).
func extrapolateMaxData(data []bound.Bound, dim int, m []int32) Status {
	return extrapolateLUData(data, dim, m, m)
}

// diagonalExtrapolateMaxData is the diagonal-preserving variant of
// extrapolateMaxData, specialized from diagonalExtrapolateLUData the
// same way extrapolateMaxData specializes extrapolateLUData.
func diagonalExtrapolateMaxData(data []bound.Bound, dim int, m []int32) Status {
	return diagonalExtrapolateLUData(data, dim, m, m)
}

// diagonalExtrapolateLUData implements basic Extra_LU, the
// diagonal-preserving counterpart of extrapolateLUData's closed
// Extra+_LU: an off-diagonal cell D[i,j] (i,j != 0) is only widened
// when its own value needs it (r.Value() < -u[j]), never because some
// other cell sharing clock i's row or clock j's column was widened.
// This keeps diagonal constraints x_i - x_j intact in more cases than
// the closed variant, which can discard a perfectly tight D[i,j] purely
// because clock j's column bound was exceeded elsewhere. The partial
// rewrite below is not itself closed, so the trailing closeData call
// does real work here (unlike a no-op wrapper around the closed form).
func diagonalExtrapolateLUData(data []bound.Bound, dim int, l, u []int32) Status {
	for i := 1; i < dim; i++ {
		cell := idx(dim, i, 0)
		if r := data[cell]; !r.IsInfinity() && r.Value() > l[i] {
			data[cell] = bound.LSInfinity
		}
	}
	for j := 1; j < dim; j++ {
		cell := idx(dim, 0, j)
		if r := data[cell]; r.Value() < -u[j] {
			data[cell] = bound.MustMake(-u[j], true)
		}
	}
	for i := 1; i < dim; i++ {
		for j := 1; j < dim; j++ {
			if i == j {
				continue
			}
			cell := idx(dim, i, j)
			if r := data[cell]; !r.IsInfinity() && r.Value() < -u[j] {
				data[cell] = bound.MustMake(-u[j], true)
			}
		}
	}
	return closeData(data, dim)
}
