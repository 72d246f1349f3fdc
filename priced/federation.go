package priced

import (
	"fmt"
	"math/big"

	"github.com/go-dbm/udbm/udbmctx"
)

// pnode is one link of a PricedFederation's intrusive list, mirroring
// fed.node but carrying a priced zone (rates and offset included) rather
// than a bare dbm.DBM, since every zone in a priced federation may carry
// an independent cost function.
type pnode struct {
	d    PricedDBM
	next *pnode
}

type pcontainer struct {
	head *pnode
	size int
	refs int32
}

// PricedFederation is a list of priced DBMs, ref-counted and
// copy-on-write exactly like fed.Federation, whose semantics is the
// pointwise-minimum cost over the union (spec.md §4.7). Union across
// priced federations never merges cost: zones keep their own rate
// vectors and offsets.
type PricedFederation struct {
	ctx *udbmctx.Context
	dim int
	c   *pcontainer
}

// NewFederation returns the empty priced federation of the given
// dimension.
func NewFederation(ctx *udbmctx.Context, dim int) PricedFederation {
	return PricedFederation{ctx: ctx, dim: dim, c: &pcontainer{refs: 1}}
}

// Dim returns the dimension shared by every zone in the federation.
func (f PricedFederation) Dim() int { return f.dim }

// Size returns the number of zones currently in the federation.
func (f PricedFederation) Size() int { return f.c.size }

// IsEmpty reports whether the federation has no zones.
func (f PricedFederation) IsEmpty() bool { return f.c.size == 0 }

// Copy returns a second handle sharing this federation's storage.
func (f PricedFederation) Copy() PricedFederation {
	f.c.refs++
	return f
}

// Release drops this handle's reference, releasing every zone once the
// last handle is gone.
func (f PricedFederation) Release() {
	f.c.refs--
	if f.c.refs <= 0 {
		for n := f.c.head; n != nil; n = n.next {
			n.d.Release()
		}
	}
}

func (f *PricedFederation) mutate() *pcontainer {
	if f.c.refs <= 1 {
		return f.c
	}
	nc := &pcontainer{refs: 1}
	var tail *pnode
	for n := f.c.head; n != nil; n = n.next {
		nn := &pnode{d: n.d.Copy()}
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

// Zones returns the federation's zones as a read-only snapshot.
func (f PricedFederation) Zones() []PricedDBM {
	zs := make([]PricedDBM, 0, f.c.size)
	for n := f.c.head; n != nil; n = n.next {
		zs = append(zs, n.d)
	}
	return zs
}

// Append prepends p to the federation, retaining its own handle. Empty
// zones are skipped.
func (f *PricedFederation) Append(p PricedDBM) error {
	if p.Dim() != f.dim {
		return fmt.Errorf("priced.PricedFederation.Append: %d != %d: %w", p.Dim(), f.dim, ErrDimensionMismatch)
	}
	if p.Zone.IsEmpty() {
		return nil
	}
	c := f.mutate()
	c.head = &pnode{d: p.Copy(), next: c.head}
	c.size++
	return nil
}

// Union splices g's zones onto f without any cost merging: each zone
// keeps its own rate vector and offset.
func (f *PricedFederation) Union(g PricedFederation) error {
	if f.dim != g.dim {
		return fmt.Errorf("priced.PricedFederation.Union: %d != %d: %w", f.dim, g.dim, ErrDimensionMismatch)
	}
	c := f.mutate()
	for n := g.c.head; n != nil; n = n.next {
		if n.d.Zone.IsEmpty() {
			continue
		}
		c.head = &pnode{d: n.d.Copy(), next: c.head}
		c.size++
	}
	return nil
}

// Infimum returns the pointwise minimum cost over the union: the least
// Infimum among the federation's zones. Returns ErrEmpty if the
// federation has no zones, or any zone-level error (including
// ErrUnbounded) encountered along the way.
func (f PricedFederation) Infimum() (big.Rat, error) {
	var best *big.Rat
	for n := f.c.head; n != nil; n = n.next {
		v, err := n.d.Infimum()
		if err != nil {
			return big.Rat{}, err
		}
		if best == nil || v.Cmp(best) < 0 {
			vv := v
			best = &vv
		}
	}
	if best == nil {
		return big.Rat{}, ErrEmpty
	}
	return *best, nil
}
