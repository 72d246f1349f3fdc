package priced

import "errors"

// Sentinel errors for the priced package, matching the "priced: ..."
// prefix convention used across udbm and checked with errors.Is.
var (
	// ErrEmpty indicates an operation required a non-empty priced DBM (or
	// federation) but received an empty one.
	ErrEmpty = errors.New("priced: empty priced DBM")

	// ErrDimensionMismatch indicates two operands of an operation have
	// different dimensions.
	ErrDimensionMismatch = errors.New("priced: dimension mismatch")

	// ErrRateLength indicates a rate vector's length did not match the
	// zone's dimension, or its first entry (the reference clock's rate)
	// was non-zero.
	ErrRateLength = errors.New("priced: invalid rate vector")

	// ErrInvalidIndex indicates a clock index outside [0, dim).
	ErrInvalidIndex = errors.New("priced: invalid clock index")

	// ErrUnbounded indicates a cost query has no finite answer: a clock
	// with non-zero rate lacks the bound the objective needs to reach an
	// optimum (infimum or supremum diverges).
	ErrUnbounded = errors.New("priced: unbounded cost")

	// ErrNotImplemented marks an operation spec.md leaves as an open gap:
	// priced zones have no intersection operator (§9's resolved Open
	// Question), since the intersection of two affine cost functions is
	// not in general itself affine over the intersected zone.
	ErrNotImplemented = errors.New("priced: not implemented")
)
