package udbmctx

import (
	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/support"
	"github.com/google/uuid"
)

// MatrixObject is the shared, reference-counted backing store for a DBM
// handle: a flat row-major slice of raw bounds plus bookkeeping consulted
// by copy-on-write and hash-consing.
type MatrixObject struct {
	Dim      int
	Data     []bound.Bound // len == Dim*Dim, row-major
	RefCount int32

	hashValid bool
	hash      uint32

	// MinGraph is a slot for a cached minimal-graph bitmask; dbm/minigraph
	// neither reads nor fills it. It is reset to nil by Mutate and Alloc.
	MinGraph []uint64
}

// invalidateCaches drops the cached hash and minimal-graph bitmask; callers
// must invoke this after mutating Data in place.
func (o *MatrixObject) invalidateCaches() {
	o.hashValid = false
	o.MinGraph = nil
}

// internKey identifies a chain in Context.intern: matrices only ever
// collide within a chain if they share both dimension and hash.
type internKey struct {
	dim  int
	hash uint32
}

// Context is the explicit, non-global home for the intern table and the
// per-dimension free lists. Construct one per independent "universe" of
// DBMs (typically one per goroutine, since Context is not safe for
// concurrent use).
type Context struct {
	// ID distinguishes contexts from one another in diagnostic output when
	// an application runs more than one (e.g. one per verification worker).
	ID uuid.UUID

	intern   map[internKey][]*MatrixObject
	freeList map[int][]*MatrixObject
}

// New constructs an empty Context.
func New() *Context {
	return &Context{
		ID:       uuid.New(),
		intern:   make(map[internKey][]*MatrixObject),
		freeList: make(map[int][]*MatrixObject),
	}
}

var defaultContext *Context

// Default returns a package-level convenience Context, lazily created on
// first use. It exists only for callers that do not need context
// isolation; anything concurrent or test-sensitive should call New
// instead, since Default is shared and therefore thread-hostile exactly
// like the Context it returns.
func Default() *Context {
	if defaultContext == nil {
		defaultContext = New()
	}
	return defaultContext
}

// Alloc returns a MatrixObject of the given dimension, recycled from the
// free list when available, with RefCount reset to 1 and all Data entries
// zeroed (callers typically overwrite immediately via Init/Zero).
// Complexity: O(dim²) when allocating fresh or when the recycled object's
// Data must be rezeroed; O(1) list-pop overhead otherwise.
func (c *Context) Alloc(dim int) *MatrixObject {
	if list := c.freeList[dim]; len(list) > 0 {
		o := list[len(list)-1]
		c.freeList[dim] = list[:len(list)-1]
		for i := range o.Data {
			o.Data[i] = 0
		}
		o.RefCount = 1
		o.invalidateCaches()
		return o
	}
	return &MatrixObject{
		Dim:      dim,
		Data:     make([]bound.Bound, dim*dim),
		RefCount: 1,
	}
}

// Retain increments o's reference count, recording a new shared owner.
func (c *Context) Retain(o *MatrixObject) {
	o.RefCount++
}

// Release decrements o's reference count and, once it reaches zero, pushes
// o onto the per-dimension free list for reuse instead of discarding it.
func (c *Context) Release(o *MatrixObject) {
	o.RefCount--
	if o.RefCount <= 0 {
		c.freeList[o.Dim] = append(c.freeList[o.Dim], o)
	}
}

// IsUnique reports whether o has exactly one owner, i.e. whether a
// mutation may proceed in place without violating another owner's view.
func (c *Context) IsUnique(o *MatrixObject) bool {
	return o.RefCount <= 1
}

// Clone allocates a fresh MatrixObject with o's Data copied, used by
// copy-on-write when IsUnique(o) is false.
// Complexity: O(dim²).
func (c *Context) Clone(o *MatrixObject) *MatrixObject {
	n := c.Alloc(o.Dim)
	copy(n.Data, o.Data)
	return n
}

// Mutate returns an object equivalent to o that the caller may freely
// write through: o itself if uniquely owned, or a fresh clone otherwise
// (with o released). This is the single copy-on-write choke point used by
// every mutating dbm.DBM method.
func (c *Context) Mutate(o *MatrixObject) *MatrixObject {
	if c.IsUnique(o) {
		o.invalidateCaches()
		return o
	}
	clone := c.Clone(o)
	c.Release(o)
	return clone
}

// Hash returns o's content hash, computing and caching it on first use.
// The hash folds in the dimension so matrices of different size never
// collide in the intern table regardless of byte layout.
func (c *Context) Hash(o *MatrixObject) uint32 {
	if o.hashValid {
		return o.hash
	}
	ints := make([]int32, len(o.Data))
	for i, v := range o.Data {
		ints[i] = int32(v)
	}
	h := support.HashInts(ints, uint32(o.Dim))
	o.hash = h
	o.hashValid = true
	return h
}

func sameData(a, b *MatrixObject) bool {
	if a.Dim != b.Dim {
		return false
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			return false
		}
	}
	return true
}

// Intern hash-conses o into the table: if an equal matrix is already
// interned, o is released and the canonical object is returned (retained
// once on o's behalf). Otherwise o itself becomes the canonical object,
// gains one retain representing the table's own reference, and is
// returned unchanged. Interned objects are logically immutable; Mutate
// still works correctly against them because the table's extra retain
// keeps RefCount above 1, forcing a clone on the next mutation.
func (c *Context) Intern(o *MatrixObject) *MatrixObject {
	key := internKey{dim: o.Dim, hash: c.Hash(o)}
	for _, cand := range c.intern[key] {
		if sameData(cand, o) {
			c.Release(o)
			c.Retain(cand)
			return cand
		}
	}
	c.intern[key] = append(c.intern[key], o)
	c.Retain(o) // the table's own reference
	return o
}

// Teardown drains the free lists and clears the intern table, releasing
// every object this Context was holding. It does not affect MatrixObjects
// still referenced by live dbm.DBM handles outside of this Context's own
// bookkeeping.
func (c *Context) Teardown() {
	c.freeList = make(map[int][]*MatrixObject)
	c.intern = make(map[internKey][]*MatrixObject)
}
