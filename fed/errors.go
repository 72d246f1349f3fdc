package fed

import "errors"

var (
	// ErrDimensionMismatch indicates an operation mixed federations (or a
	// federation and a DBM) of different dimensions.
	ErrDimensionMismatch = errors.New("fed: dimension mismatch")

	// ErrInvalidIndex indicates an iterator or index-based accessor was
	// used out of range.
	ErrInvalidIndex = errors.New("fed: invalid index")
)
