package partition

import "errors"

// ErrDimensionMismatch indicates Add was called with a federation whose
// dimension does not match the partition's.
var ErrDimensionMismatch = errors.New("partition: dimension mismatch")
