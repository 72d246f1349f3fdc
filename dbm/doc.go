// Package dbm implements Difference Bound Matrices: canonical-form
// maintenance (shortest-path closure) and the full set of constraint,
// delay, reset and widening operators over them, plus the DBM handle —
// a value-typed, reference-counted, copy-on-write wrapper that gives
// dense matrices value semantics.
//
// A DBM of dimension n represents the set of clock valuations satisfying
// a conjunction of difference constraints xi - xj ≼ b, stored as an n×n
// matrix of bound.Bound values. Index 0 is the fixed reference clock,
// always equal to zero.
//
// Raw operators (Close, Constrain, Intersect, ...) work directly on a
// borrowed matrix and assume/restore canonical form unless documented
// otherwise. DBM wraps a shared *udbmctx.MatrixObject and triggers
// copy-on-write through the owning Context before any such operator runs,
// so callers never observe a mutation through an aliased handle.
package dbm
