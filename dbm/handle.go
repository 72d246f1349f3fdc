package dbm

import (
	"fmt"

	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/udbmctx"
)

// DBM is a value-typed handle to a shared, reference-counted matrix
// object. Copies created via Copy share the underlying object until one
// of them mutates, at which point copy-on-write clones the matrix for the
// mutator.
//
// Plain Go struct assignment (d2 := d1) does NOT register as a shared
// alias the way C++'s copy constructor would — DBM has no hidden side
// effects on assignment. Call d1.Copy() explicitly to create a second
// handle that shares storage and participates in copy-on-write; this is
// the Go-idiomatic replacement for the original's implicit refcounting
// copy constructor (see DESIGN.md).
type DBM struct {
	ctx *udbmctx.Context
	obj *udbmctx.MatrixObject
}

// New allocates an empty (unsatisfiable) DBM of the given dimension.
func New(ctx *udbmctx.Context, dim int) DBM {
	d := DBM{ctx: ctx, obj: ctx.Alloc(dim)}
	d.SetEmpty()
	return d
}

// FromMatrix builds a DBM by copying a caller-supplied row-major matrix of
// dim*dim raw bounds. Returns ErrDimensionMismatch if len(data) != dim*dim.
func FromMatrix(ctx *udbmctx.Context, dim int, data []bound.Bound) (DBM, error) {
	if len(data) != dim*dim {
		return DBM{}, fmt.Errorf("dbm.FromMatrix: %d != %d*%d: %w", len(data), dim, dim, ErrDimensionMismatch)
	}
	obj := ctx.Alloc(dim)
	copy(obj.Data, data)
	return DBM{ctx: ctx, obj: obj}, nil
}

// Copy returns a second handle sharing this DBM's storage, incrementing
// its reference count so a later mutation on either handle clones instead
// of mutating the other's view.
func (d DBM) Copy() DBM {
	d.ctx.Retain(d.obj)
	return d
}

// Release drops this handle's reference, returning the backing matrix to
// the context's free list once no handle refers to it. Callers that do
// not explicitly manage lifetime (most Go code, relying on the garbage
// collector) may skip this; it exists to let hot paths recycle matrices
// eagerly, matching spec.md §4.4's free-list allocator.
func (d DBM) Release() {
	d.ctx.Release(d.obj)
}

// Dim returns the DBM's dimension (number of clocks, including the
// reference clock).
func (d DBM) Dim() int { return d.obj.Dim }

// At returns the raw bound stored at (i,j). Returns ErrInvalidIndex if i
// or j falls outside [0, Dim()).
func (d DBM) At(i, j int) (bound.Bound, error) {
	if i < 0 || i >= d.Dim() || j < 0 || j >= d.Dim() {
		return 0, fmt.Errorf("dbm.DBM.At(%d,%d): %w", i, j, ErrInvalidIndex)
	}
	return d.obj.Data[idx(d.Dim(), i, j)], nil
}

// IsEmpty reports whether this DBM is the canonical empty representation.
func (d DBM) IsEmpty() bool {
	return isEmptyData(d.obj.Data, d.Dim())
}

// Hash returns the DBM's content hash (stable within this process run).
func (d DBM) Hash() uint32 {
	return d.ctx.Hash(d.obj)
}

// Intern hash-conses this DBM into its Context's intern table, returning
// a handle to the canonical shared object. Two DBMs built by different
// operator sequences that end up cell-identical intern to the same
// object: Intern(a) and Intern(b) then compare pointer-equal via Same.
func (d DBM) Intern() DBM {
	d.obj = d.ctx.Intern(d.obj)
	return d
}

// Same reports whether a and b are handles to the identical backing
// object (pointer equality), the check used to verify intern-table
// canonicalization.
func Same(a, b DBM) bool { return a.obj == b.obj }

// mutate forces copy-on-write and returns the matrix data slice the
// caller may now write through freely.
func (d *DBM) mutate() []bound.Bound {
	d.obj = d.ctx.Mutate(d.obj)
	return d.obj.Data
}

// SetInit resets this DBM to the canonical "init" zone: all clocks
// unbounded above, non-negative, diagonal zero.
func (d *DBM) SetInit() {
	initData(d.mutate(), d.Dim())
}

// SetZero resets this DBM to the single point where every clock is zero.
func (d *DBM) SetZero() {
	zeroData(d.mutate(), d.Dim())
}

// SetEmpty resets this DBM to the canonical empty representation.
func (d *DBM) SetEmpty() {
	data := d.mutate()
	dim := d.Dim()
	for i := 0; i < dim*dim; i++ {
		data[i] = bound.LEZero
	}
	data[idx(dim, 0, 0)] = emptyMarker
}

// Close reclosures the DBM via Floyd–Warshall, e.g. after external
// manipulation of several cells via ConstrainAll's "Tightened" cells seen
// through At. Most callers never need this directly: Constrain and
// ConstrainAll already reclosure.
func (d *DBM) Close() Status {
	return closeData(d.mutate(), d.Dim())
}

// Close1 reclosures after an operation that rewrote row/column k as a
// whole, relaxing through k as the sole intermediate vertex.
func (d *DBM) Close1(k int) Status {
	return close1Data(d.mutate(), d.Dim(), k)
}

// CloseX reclosures after operations that rewrote row/column for each
// clock in ks.
func (d *DBM) CloseX(ks []int) Status {
	return closeXData(d.mutate(), d.Dim(), ks)
}

// Constrain tightens xi - xj ≼ r, reclosuring on change.
func (d *DBM) Constrain(i, j int, r bound.Bound) Status {
	return constrainData(d.mutate(), d.Dim(), i, j, r)
}

// ConstrainAll applies every constraint in cs before a single reclosure.
func (d *DBM) ConstrainAll(cs []Constraint) Status {
	return constrainAllData(d.mutate(), d.Dim(), cs)
}

// Intersect narrows this DBM to its intersection with other, which must
// share its dimension.
func (d *DBM) Intersect(other DBM) (Status, error) {
	if d.Dim() != other.Dim() {
		return Unchanged, fmt.Errorf("dbm.DBM.Intersect: %d != %d: %w", d.Dim(), other.Dim(), ErrDimensionMismatch)
	}
	data := d.mutate()
	return intersectData(data, data, other.obj.Data, d.Dim()), nil
}

// Relation computes the inclusion relation of d against other.
func (d DBM) Relation(other DBM) (Relation, error) {
	if d.Dim() != other.Dim() {
		return Different, fmt.Errorf("dbm.DBM.Relation: %d != %d: %w", d.Dim(), other.Dim(), ErrDimensionMismatch)
	}
	return relationData(d.obj.Data, other.obj.Data, d.Dim()), nil
}

// Up applies the future operator in place.
func (d *DBM) Up() { upData(d.mutate(), d.Dim()) }

// Down applies the past operator in place.
func (d *DBM) Down() { downData(d.mutate(), d.Dim()) }

// FreeClock unconstrains clock k against every other clock.
func (d *DBM) FreeClock(k int) { freeClockData(d.mutate(), d.Dim(), k) }

// FreeUp removes the upper bound on clock k.
func (d *DBM) FreeUp(k int) { freeUpData(d.mutate(), d.Dim(), k) }

// FreeDown removes the lower bound on clock k.
func (d *DBM) FreeDown(k int) { freeDownData(d.mutate(), d.Dim(), k) }

// FreeAllUp removes the upper bound on every clock.
func (d *DBM) FreeAllUp() { freeAllUpData(d.mutate(), d.Dim()) }

// FreeAllDown removes the lower bound on every clock.
func (d *DBM) FreeAllDown() { freeAllDownData(d.mutate(), d.Dim()) }

// UpdateValue assigns xk := v.
func (d *DBM) UpdateValue(k int, v int32) { updateValueData(d.mutate(), d.Dim(), k, v) }

// UpdateClock assigns xk := xj.
func (d *DBM) UpdateClock(k, j int) { updateClockData(d.mutate(), d.Dim(), k, j) }

// UpdateIncrement assigns xk := xk + v.
func (d *DBM) UpdateIncrement(k int, v int32) { updateIncrementData(d.mutate(), d.Dim(), k, v) }

// Update assigns xk := xj + v.
func (d *DBM) Update(k, j int, v int32) { updateData(d.mutate(), d.Dim(), k, j, v) }

// Satisfies reports whether intersecting with xi-xj≼r would keep this DBM
// non-empty, without mutating it.
func (d DBM) Satisfies(i, j int, r bound.Bound) bool {
	return satisfiesData(d.obj.Data, d.Dim(), i, j, r)
}

// IsUnbounded reports whether every clock lacks an upper bound.
func (d DBM) IsUnbounded() bool { return isUnboundedData(d.obj.Data, d.Dim()) }

// IsEqualToInit reports whether d denotes the same set as SetInit would
// produce.
func (d DBM) IsEqualToInit() bool { return isEqualToInitData(d.obj.Data, d.Dim()) }

// IsEqualToZero reports whether d denotes the same set as SetZero would
// produce.
func (d DBM) IsEqualToZero() bool { return isEqualToZeroData(d.obj.Data, d.Dim()) }

// ContainsPoint reports whether the integer point x satisfies every
// constraint in d. len(x) must equal Dim(), with x[0] == 0.
func (d DBM) ContainsPoint(x []int32) bool {
	return containsPointData(d.obj.Data, d.Dim(), x)
}

// ContainsRealPoint is ContainsPoint's real-valued counterpart.
func (d DBM) ContainsRealPoint(x []float64) bool {
	return containsRealPointData(d.obj.Data, d.Dim(), x)
}

// ExtrapolateMax applies the k-bounds widening with a single bound vector
// m (len == Dim()).
func (d *DBM) ExtrapolateMax(m []int32) Status {
	return extrapolateMaxData(d.mutate(), d.Dim(), m)
}

// DiagonalExtrapolateMax is ExtrapolateMax's diagonal-aware variant.
func (d *DBM) DiagonalExtrapolateMax(m []int32) Status {
	return diagonalExtrapolateMaxData(d.mutate(), d.Dim(), m)
}

// ExtrapolateLU applies the LU-bounds widening with separate lower (l)
// and upper (u) bound vectors.
func (d *DBM) ExtrapolateLU(l, u []int32) Status {
	return extrapolateLUData(d.mutate(), d.Dim(), l, u)
}

// DiagonalExtrapolateLU is ExtrapolateLU's diagonal-aware variant.
func (d *DBM) DiagonalExtrapolateLU(l, u []int32) Status {
	return diagonalExtrapolateLUData(d.mutate(), d.Dim(), l, u)
}

// RelaxUp promotes every clock's strict upper bound to weak.
func (d *DBM) RelaxUp() { relaxUpData(d.mutate(), d.Dim()) }

// RelaxDown promotes every clock's strict lower bound to weak.
func (d *DBM) RelaxDown() { relaxDownData(d.mutate(), d.Dim()) }

// RelaxAll promotes every strict off-diagonal bound to weak.
func (d *DBM) RelaxAll() { relaxAllData(d.mutate(), d.Dim()) }

// Subtract enumerates the DBMs whose union is d \ other, invoking emit
// once per piece. Pieces are delivered as fresh DBM handles on d's
// Context, already in canonical form.
func (d DBM) Subtract(other DBM, emit func(DBM)) error {
	if d.Dim() != other.Dim() {
		return fmt.Errorf("dbm.DBM.Subtract: %d != %d: %w", d.Dim(), other.Dim(), ErrDimensionMismatch)
	}
	subtractData(d.obj.Data, other.obj.Data, d.Dim(), func(piece []bound.Bound) {
		obj := d.ctx.Alloc(d.Dim())
		copy(obj.Data, piece)
		emit(DBM{ctx: d.ctx, obj: obj})
	})
	return nil
}
