package fed

import (
	"fmt"

	"github.com/go-dbm/udbm/dbm"
	"github.com/go-dbm/udbm/udbmctx"
)

// node is one link of the intrusive list backing a Federation's container.
type node struct {
	d    dbm.DBM
	next *node
}

// container is the shared, ref-counted record a Federation handle points
// to: the list head, a cached size, and a reference count. Mutating
// operations call mutate to ensure the container (and every zone it owns)
// is privately held before writing, the same copy-on-write discipline
// dbm.DBM applies at the matrix level.
type container struct {
	head *node
	size int
	refs int32
}

// Federation is a value handle to a shared list of DBMs of the same
// dimension, denoting their set union. Like dbm.DBM, plain Go assignment
// does not register a shared alias — call Copy to create a second handle
// that participates in copy-on-write.
type Federation struct {
	ctx *udbmctx.Context
	dim int
	c   *container
}

// New returns the empty federation (the empty union, i.e. no behavior) of
// the given dimension.
func New(ctx *udbmctx.Context, dim int) Federation {
	return Federation{ctx: ctx, dim: dim, c: &container{refs: 1}}
}

// Dim returns the dimension shared by every zone in the federation.
func (f Federation) Dim() int { return f.dim }

// Size returns the number of zones currently in the federation.
func (f Federation) Size() int { return f.c.size }

// IsEmpty reports whether the federation denotes the empty set (no
// zones). A federation can also reach zero zones by every zone being
// removed through Reduce/Constrain/Subtract filtering out empties.
func (f Federation) IsEmpty() bool { return f.c.size == 0 }

// Copy returns a second handle sharing this federation's storage,
// incrementing its reference count.
func (f Federation) Copy() Federation {
	f.c.refs++
	return f
}

// Release drops this handle's reference. Once the last handle is
// released, every zone's DBM handle is released too.
func (f Federation) Release() {
	f.c.refs--
	if f.c.refs <= 0 {
		for n := f.c.head; n != nil; n = n.next {
			n.d.Release()
		}
	}
}

// mutate forces copy-on-write at the list level: if this container is
// shared, it is cloned (each zone handle re-retained) before any
// structural change, leaving other Federation handles over the old
// container untouched.
func (f *Federation) mutate() *container {
	if f.c.refs <= 1 {
		return f.c
	}
	nc := &container{refs: 1}
	var tail *node
	for n := f.c.head; n != nil; n = n.next {
		nn := &node{d: n.d.Copy()}
		if tail == nil {
			nc.head = nn
		} else {
			tail.next = nn
		}
		tail = nn
		nc.size++
	}
	f.c.refs--
	f.c = nc
	return nc
}

// Zones returns the federation's zones as a read-only snapshot: a caller
// that wants an independent, mutable DBM must call DBM.Copy on the
// entries before mutating them, exactly as with any other shared handle.
func (f Federation) Zones() []dbm.DBM {
	zs := make([]dbm.DBM, 0, f.c.size)
	for n := f.c.head; n != nil; n = n.next {
		zs = append(zs, n.d)
	}
	return zs
}

// Append prepends d to the federation in O(1), retaining its own handle
// to it. Empty DBMs contribute nothing to the union and are skipped.
// Returns ErrDimensionMismatch if d's dimension does not match.
func (f *Federation) Append(d dbm.DBM) error {
	if d.Dim() != f.dim {
		return fmt.Errorf("fed.Federation.Append: %d != %d: %w", d.Dim(), f.dim, ErrDimensionMismatch)
	}
	if d.IsEmpty() {
		return nil
	}
	c := f.mutate()
	c.head = &node{d: d.Copy(), next: c.head}
	c.size++
	return nil
}

// checkDim is the shared dimension-matching guard for binary federation
// operations.
func checkDim(a, b Federation, op string) error {
	if a.dim != b.dim {
		return fmt.Errorf("fed.Federation.%s: %d != %d: %w", op, a.dim, b.dim, ErrDimensionMismatch)
	}
	return nil
}
