package dbm

import "errors"

// Sentinel errors for the dbm package, matching the "dbm: ..." prefix
// convention used across udbm and checked with errors.Is at call sites.
var (
	// ErrEmpty indicates an operation required a non-empty DBM but
	// received an empty one.
	ErrEmpty = errors.New("dbm: empty DBM")

	// ErrDimensionMismatch indicates two operands of an operation have
	// different dimensions.
	ErrDimensionMismatch = errors.New("dbm: dimension mismatch")

	// ErrInvalidBound indicates a caller-supplied bound value could not be
	// constructed (see bound.ErrInvalidBound).
	ErrInvalidBound = errors.New("dbm: invalid bound")

	// ErrInvalidIndex indicates a clock index outside [0, dim).
	ErrInvalidIndex = errors.New("dbm: invalid clock index")

	// ErrInternalInvariant indicates a closure or subtraction step
	// produced a matrix failing the invariants of a closed DBM. In
	// release builds this is surfaced as a typed error rather than a
	// panic; see reportInvariant for the debug-build variant.
	ErrInternalInvariant = errors.New("dbm: internal invariant violated")
)
