package fed

import (
	"github.com/go-dbm/udbm/dbm"
)

// Union splices g's zones onto self in place, each retained independently;
// it does not itself reduce (call Reduce/MergeReduce afterward if wanted).
func (f *Federation) Union(g Federation) error {
	if err := checkDim(*f, g, "Union"); err != nil {
		return err
	}
	c := f.mutate()
	for n := g.c.head; n != nil; n = n.next {
		if n.d.IsEmpty() {
			continue
		}
		c.head = &node{d: n.d.Copy(), next: c.head}
		c.size++
	}
	return nil
}

// Intersection replaces self with the cartesian product of pairwise
// intersections against g's zones, dropping any that come out empty.
// O(|self|·|g|·n³).
func (f *Federation) Intersection(g Federation) error {
	if err := checkDim(*f, g, "Intersection"); err != nil {
		return err
	}
	c := f.mutate()
	gzones := g.Zones()

	var newHead, tail *node
	newSize := 0
	for n := c.head; n != nil; n = n.next {
		for _, e := range gzones {
			piece := n.d.Copy()
			st, err := piece.Intersect(e)
			if err != nil {
				return err
			}
			if st == dbm.Empty {
				piece.Release()
				continue
			}
			nn := &node{d: piece}
			if tail == nil {
				newHead = nn
			} else {
				tail.next = nn
			}
			tail = nn
			newSize++
		}
	}
	// Release the old zones; their place is taken by the intersected pieces.
	for n := c.head; n != nil; n = n.next {
		n.d.Release()
	}
	c.head = newHead
	c.size = newSize
	return nil
}

// Constrain maps dbm.DBM.Constrain over every zone, filtering out any
// zone that becomes empty.
func (f *Federation) Constrain(cs ...dbm.Constraint) {
	c := f.mutate()
	var prev *node
	n := c.head
	for n != nil {
		for _, cs := range cs {
			n.d.Constrain(cs.I, cs.J, cs.Bound)
		}
		if n.d.IsEmpty() {
			next := n.next
			n.d.Release()
			if prev == nil {
				c.head = next
			} else {
				prev.next = next
			}
			c.size--
			n = next
			continue
		}
		prev = n
		n = n.next
	}
}

// Subtract replaces every zone Z of self with the split Z \ g, i.e. Z
// minus each zone of g in turn (spec.md §4.5's incremental algorithm).
func (f *Federation) Subtract(g Federation) error {
	if err := checkDim(*f, g, "Subtract"); err != nil {
		return err
	}
	c := f.mutate()
	gzones := g.Zones()

	var newHead, tail *node
	newSize := 0
	for n := c.head; n != nil; n = n.next {
		pieces := []dbm.DBM{n.d}
		for _, e := range gzones {
			if len(pieces) == 0 {
				break
			}
			var next []dbm.DBM
			for _, z := range pieces {
				if err := z.Subtract(e, func(p dbm.DBM) { next = append(next, p) }); err != nil {
					return err
				}
				z.Release()
			}
			pieces = next
		}
		for _, p := range pieces {
			nn := &node{d: p}
			if tail == nil {
				newHead = nn
			} else {
				tail.next = nn
			}
			tail = nn
			newSize++
		}
	}
	c.head = newHead
	c.size = newSize
	return nil
}

// ContainsPoint reports whether any zone contains the integer point x.
func (f Federation) ContainsPoint(x []int32) bool {
	for n := f.c.head; n != nil; n = n.next {
		if n.d.ContainsPoint(x) {
			return true
		}
	}
	return false
}

// ContainsRealPoint reports whether any zone contains the real point x.
func (f Federation) ContainsRealPoint(x []float64) bool {
	for n := f.c.head; n != nil; n = n.next {
		if n.d.ContainsRealPoint(x) {
			return true
		}
	}
	return false
}

// GetValuation returns a representative integer point from some zone
// (the list head), arbitrary but deterministic for a given federation:
// the lexicographically smallest point satisfying that zone's lower
// bounds. Reports false for the empty federation.
func (f Federation) GetValuation() ([]int32, bool) {
	if f.c.size == 0 {
		return nil, false
	}
	z := f.c.head.d
	n := z.Dim()
	x := make([]int32, n)
	for i := 1; i < n; i++ {
		b, _ := z.At(0, i)
		if b.IsInfinity() {
			continue
		}
		v := -b.Value()
		if b.IsStrict() {
			v++
		}
		x[i] = v
	}
	return x, true
}

// ExtrapolateMax applies dbm.DBM.ExtrapolateMax to every zone.
func (f *Federation) ExtrapolateMax(m []int32) {
	c := f.mutate()
	for n := c.head; n != nil; n = n.next {
		n.d.ExtrapolateMax(m)
	}
}

// DiagonalExtrapolateMax applies dbm.DBM.DiagonalExtrapolateMax to every zone.
func (f *Federation) DiagonalExtrapolateMax(m []int32) {
	c := f.mutate()
	for n := c.head; n != nil; n = n.next {
		n.d.DiagonalExtrapolateMax(m)
	}
}

// ExtrapolateLU applies dbm.DBM.ExtrapolateLU to every zone.
func (f *Federation) ExtrapolateLU(l, u []int32) {
	c := f.mutate()
	for n := c.head; n != nil; n = n.next {
		n.d.ExtrapolateLU(l, u)
	}
}

// DiagonalExtrapolateLU applies dbm.DBM.DiagonalExtrapolateLU to every zone.
func (f *Federation) DiagonalExtrapolateLU(l, u []int32) {
	c := f.mutate()
	for n := c.head; n != nil; n = n.next {
		n.d.DiagonalExtrapolateLU(l, u)
	}
}
