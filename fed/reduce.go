package fed

import (
	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/dbm"
	"github.com/go-dbm/udbm/udbmctx"
)

// rebuildList replaces c's list wholesale with zones, taking ownership of
// each handle (no additional retain — callers hand over zones they
// already hold the sole reference to).
func rebuildList(c *container, zones []dbm.DBM) {
	var head, tail *node
	for _, z := range zones {
		nn := &node{d: z}
		if tail == nil {
			head = nn
		} else {
			tail.next = nn
		}
		tail = nn
	}
	c.head = head
	c.size = len(zones)
}

// Reduce drops each zone included in some other zone of the same
// federation, checked pairwise via dbm.DBM.Relation against the whole
// set (not just zones already kept). Among a group of mutually-equal
// zones, only the lowest-indexed one survives.
func (f *Federation) Reduce() {
	c := f.mutate()
	zones := f.Zones()
	keep := subsumptionMask(zones)
	releaseDropped(zones, keep)
	rebuildList(c, keptZones(zones, keep))
}

// subsumptionMask marks zones[i] for removal when some other zones[j]
// contains it (Subset), or equals it at a lower index (keeping a single
// representative of a mutually-equal group).
func subsumptionMask(zones []dbm.DBM) []bool {
	keep := make([]bool, len(zones))
	for i := range keep {
		keep[i] = true
	}
	for i := range zones {
		for j := range zones {
			if i == j {
				continue
			}
			rel, err := zones[i].Relation(zones[j])
			if err != nil {
				continue
			}
			if rel == dbm.Subset || (rel == dbm.Equal && j < i) {
				keep[i] = false
				break
			}
		}
	}
	return keep
}

func releaseDropped(zones []dbm.DBM, keep []bool) {
	for i, k := range keep {
		if !k {
			zones[i].Release()
		}
	}
}

func keptZones(zones []dbm.DBM, keep []bool) []dbm.DBM {
	out := make([]dbm.DBM, 0, len(zones))
	for i, k := range keep {
		if k {
			out = append(out, zones[i])
		}
	}
	return out
}

// ExpensiveReduce additionally drops a zone included in the union of the
// other zones, decided via Subtract-emptiness — strictly subsumes
// Reduce's pairwise check at the cost of one extra Subtract per zone.
func (f *Federation) ExpensiveReduce() {
	c := f.mutate()
	zones := f.Zones()
	keep := subsumptionMask(zones)

	for i := range zones {
		if !keep[i] {
			continue
		}
		others := New(f.ctx, f.dim)
		for j, z := range zones {
			if j != i && keep[j] {
				others.Append(z)
			}
		}
		single := New(f.ctx, f.dim)
		single.Append(zones[i])
		if isSubset(single, others) {
			keep[i] = false
		}
		single.Release()
		others.Release()
	}

	releaseDropped(zones, keep)
	rebuildList(c, keptZones(zones, keep))
}

// MergeReduce repeatedly merges pairs of zones whose convex hull equals
// their set union (detected via Subtract-emptiness), the default
// reduction strategy for package partition (spec.md §9's resolved Open
// Question on REDUCE/BIGREDUCE).
func (f *Federation) MergeReduce() {
	c := f.mutate()
	zones := f.Zones()

	changed := true
	for changed {
		changed = false
		for i := 0; i < len(zones) && !changed; i++ {
			for j := i + 1; j < len(zones); j++ {
				hull, err := convexHull(f.ctx, zones[i], zones[j])
				if err != nil {
					continue
				}
				if hullEqualsUnion(f.ctx, f.dim, hull, zones[i], zones[j]) {
					zones[i].Release()
					zones[j].Release()
					zones[i] = hull
					zones = append(zones[:j], zones[j+1:]...)
					changed = true
					break
				}
				hull.Release()
			}
		}
	}
	rebuildList(c, zones)
}

// ConvexReduce replaces the whole federation with a single zone equal to
// the convex hull of all its zones, iff that hull equals their set union;
// otherwise the federation is left unchanged.
func (f *Federation) ConvexReduce() {
	zones := f.Zones()
	if len(zones) <= 1 {
		return
	}
	hull := zones[0].Copy()
	for _, z := range zones[1:] {
		nh, err := convexHull(f.ctx, hull, z)
		hull.Release()
		if err != nil {
			return
		}
		hull = nh
	}
	if hullEqualsUnion(f.ctx, f.dim, hull, zones...) {
		c := f.mutate()
		for n := c.head; n != nil; n = n.next {
			n.d.Release()
		}
		c.head = &node{d: hull}
		c.size = 1
		return
	}
	hull.Release()
}

// convexHull computes the cell-wise loosest bound of a and b, reclosured
// — the smallest single zone containing both.
func convexHull(ctx *udbmctx.Context, a, b dbm.DBM) (dbm.DBM, error) {
	n := a.Dim()
	data := make([]bound.Bound, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ai, _ := a.At(i, j)
			bi, _ := b.At(i, j)
			if bound.Less(ai, bi) {
				data[i*n+j] = bi
			} else {
				data[i*n+j] = ai
			}
		}
	}
	h, err := dbm.FromMatrix(ctx, n, data)
	if err != nil {
		return dbm.DBM{}, err
	}
	h.Close()
	return h, nil
}

// hullEqualsUnion reports whether hull's denoted set equals the union of
// zones, via hull \ (zones...) == ∅ (hull always ⊇ their union already).
func hullEqualsUnion(ctx *udbmctx.Context, dim int, hull dbm.DBM, zones ...dbm.DBM) bool {
	work := New(ctx, dim)
	work.Append(hull)
	other := New(ctx, dim)
	for _, z := range zones {
		other.Append(z)
	}
	res := isSubset(work, other)
	work.Release()
	other.Release()
	return res
}
