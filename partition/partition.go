package partition

import (
	"fmt"

	"github.com/go-dbm/udbm/fed"
	"github.com/go-dbm/udbm/udbmctx"
)

// Partition owns a table from caller identifiers to disjoint federations
// plus All, the federation of everything added so far.
type Partition[ID comparable] struct {
	ctx   *udbmctx.Context
	dim   int
	opts  options
	table map[ID]fed.Federation
	All   fed.Federation
}

// New returns an empty partition of the given dimension.
func New[ID comparable](ctx *udbmctx.Context, dim int, opts ...Option) *Partition[ID] {
	o := defaultOptions()
	for _, set := range opts {
		set(&o)
	}
	return &Partition[ID]{
		ctx:   ctx,
		dim:   dim,
		opts:  o,
		table: make(map[ID]fed.Federation),
		All:   fed.New(ctx, dim),
	}
}

// Get returns the federation currently bound to id, if any.
func (p *Partition[ID]) Get(id ID) (fed.Federation, bool) {
	f, ok := p.table[id]
	return f, ok
}

// Add implements spec.md §4.6's five-step algorithm:
//  1. compute f' := f \ All (disjointness);
//  2. if f' is empty, no change;
//  3. append f' to the federation bound to id (creating it if absent),
//     then to All;
//  4. reduce both the target entry and All;
//  5. rehash the id table if load factor exceeds 0.75 — Go's builtin map
//     already grows its bucket count automatically as entries are added,
//     so this step needs no explicit code here; it exists in the
//     original only because the source language's hash table does not
//     self-resize.
func (p *Partition[ID]) Add(id ID, f fed.Federation) error {
	if f.Dim() != p.dim {
		return fmt.Errorf("partition.Partition.Add: %d != %d: %w", f.Dim(), p.dim, ErrDimensionMismatch)
	}

	var zero ID
	skipSubtract := p.opts.relaxed && id != zero

	prime := f.Copy()
	if !skipSubtract {
		if err := prime.Subtract(p.All); err != nil {
			return err
		}
	}
	if prime.IsEmpty() {
		prime.Release()
		return nil
	}

	target, ok := p.table[id]
	if !ok {
		target = fed.New(p.ctx, p.dim)
	}
	if err := target.Union(prime); err != nil {
		return err
	}
	if err := p.All.Union(prime); err != nil {
		return err
	}
	prime.Release()

	applyReduce(&target, p.opts.strategy)
	applyReduce(&p.All, p.opts.strategy)

	p.table[id] = target
	return nil
}

func applyReduce(f *fed.Federation, strategy ReduceStrategy) {
	switch strategy {
	case ReduceConvex:
		f.ConvexReduce()
	case ReduceExpensive:
		f.ExpensiveReduce()
	default:
		f.MergeReduce()
	}
}
