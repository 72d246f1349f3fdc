package minigraph

import (
	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/dbm"
	"github.com/go-dbm/udbm/internal/bititer"
)

// unionFind is a tiny disjoint-set structure used to group clocks into
// zero-cycle (equality) components.
type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// Compute returns the bitmask (over dim*dim row-major cells) of the
// minimal graph of a closed, non-empty DBM d: the smallest constraint set
// equivalent to d.
//
// Algorithm (spec.md §4.3): group clocks into equality components via
// the zero-cycle relation D[i,j]+D[j,i]==LEZero, keep a single spanning
// cycle of edges within each component, and for every remaining pair
// (i,j) keep the constraint only if it is not implied by some other pair
// (i,k),(k,j) whose sum equals it exactly (a non-redundant, tight edge).
func Compute(d dbm.DBM) (bititer.Set, error) {
	if d.IsEmpty() {
		return bititer.Set{}, ErrEmpty
	}
	n := d.Dim()
	at := func(i, j int) bound.Bound {
		v, _ := d.At(i, j)
		return v
	}

	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dij, dji := at(i, j), at(j, i)
			if dij.IsInfinity() || dji.IsInfinity() {
				continue
			}
			if bound.Add(dij, dji) == bound.LEZero {
				uf.union(i, j)
			}
		}
	}

	// For each component, pick the lowest index as representative and
	// connect every other member directly to it: a spanning star, which
	// is a valid "single cycle of zero-weight edges" reading (star ≡
	// cycle through the representative) and is simpler to construct
	// deterministically than a general ring.
	repOf := make([]int, n)
	for i := 0; i < n; i++ {
		repOf[i] = uf.find(i)
	}

	mask := bititer.NewSet(n * n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if at(i, j).IsInfinity() {
				continue
			}
			if repOf[i] == repOf[j] {
				// Equality component: keep only the two star edges
				// connecting i and j to their shared representative,
				// skipping any direct edge between two non-representative
				// members (redundant given the star already connects
				// both to it).
				r := repOf[i]
				if i == r || j == r {
					mask.Set(i*n + j)
				}
				continue
			}
			if isRedundant(at, n, i, j) {
				continue
			}
			mask.Set(i*n + j)
		}
	}
	return mask, nil
}

// isRedundant reports whether constraint (i,j) is implied by the sum of
// two tighter constraints through some intermediate clock k: D[i,j] ==
// D[i,k] + D[k,j] for some k other than i and j.
func isRedundant(at func(i, j int) bound.Bound, n, i, j int) bool {
	dij := at(i, j)
	for k := 0; k < n; k++ {
		if k == i || k == j {
			continue
		}
		dik, dkj := at(i, k), at(k, j)
		if dik.IsInfinity() || dkj.IsInfinity() {
			continue
		}
		if bound.Add(dik, dkj) == dij {
			return true
		}
	}
	return false
}
