package bound

import (
	"fmt"
	"math"
)

// Bound is the raw encoding of a difference-bound constraint (b, ≼): the
// low bit carries strictness (0 = strict "<", 1 = weak "≤") and the
// remaining bits hold the signed integer bound shifted left by one.
//
// Signed-integer order on Bound agrees with the "tighter than" partial
// order on constraints: a smaller Bound is a tighter (more restrictive)
// upper bound on xi - xj.
type Bound int32

// maxFiniteValue bounds the finite magnitude a Bound can carry so that
// b<<1 never overflows int32 and stays well clear of LSInfinity.
const maxFiniteValue = (1 << 24) - 1

// LSInfinity is the designated sentinel larger than any finite raw value.
// It represents an unconstrained difference (no upper bound).
const LSInfinity Bound = math.MaxInt32

// LEZero is the canonical "≤ 0" bound: the numerically smallest non-empty
// bound found on a DBM diagonal, and the bound every diagonal cell of a
// closed, non-empty DBM must hold.
const LEZero Bound = 1 // Make(0, weak=true)

// Make encodes a finite bound b with the given strictness. strict=true
// produces "<", strict=false produces "≤". Returns ErrInvalidBound if b
// falls outside the representable range.
func Make(b int32, strict bool) (Bound, error) {
	if b > maxFiniteValue || b < -maxFiniteValue {
		return 0, fmt.Errorf("bound.Make(%d): %w", b, ErrInvalidBound)
	}
	raw := Bound(b) << 1
	if !strict {
		raw |= 1
	}
	return raw, nil
}

// MustMake is Make without an error return, for compile-time-known
// constants and tests. It panics on an out-of-range bound.
func MustMake(b int32, strict bool) Bound {
	r, err := Make(b, strict)
	if err != nil {
		panic(err)
	}
	return r
}

// Value extracts the finite integer bound b from a raw value. Calling it
// on LSInfinity returns math.MaxInt32>>1 and is meaningless; callers must
// check IsInfinity first.
func (r Bound) Value() int32 {
	return int32(r >> 1)
}

// IsStrict reports whether r encodes "<" (true) rather than "≤" (false).
func (r Bound) IsStrict() bool {
	return r&1 == 0
}

// IsInfinity reports whether r is the LSInfinity sentinel.
func (r Bound) IsInfinity() bool {
	return r == LSInfinity
}

// Add computes the raw sum of two bounds, saturating at LSInfinity.
// Add(x, y) = x + y - 1 on the underlying integers: this keeps weak⊕weak
// weak (1+1-1=1 contributes no extra strictness) and lets either strict
// operand (even valued) propagate its strictness to the sum.
func Add(x, y Bound) Bound {
	if x.IsInfinity() || y.IsInfinity() {
		return LSInfinity
	}
	sum := int64(x) + int64(y) - 1
	if sum >= int64(LSInfinity) {
		return LSInfinity
	}
	return Bound(sum)
}

// Negate flips the sign of the finite bound and its strictness, used when
// rewriting a constraint from xi-xj to xj-xi. Negating LSInfinity is
// undefined and returns LSInfinity unchanged (there is no finite negative
// counterpart to "no bound").
func Negate(r Bound) Bound {
	if r.IsInfinity() {
		return LSInfinity
	}
	// r = (b<<1)|s ; -r_raw should encode (-b, opposite strictness).
	b := r.Value()
	strict := r.IsStrict()
	neg, _ := Make(-b, !strict)
	return neg
}

// Compare returns -1, 0, or 1 as a is tighter-than, equal-to, or
// looser-than b, using plain signed order on the raw encoding.
func Compare(a, b Bound) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether a is strictly tighter than b.
func Less(a, b Bound) bool { return a < b }

// LessEqual reports whether a is at least as tight as b.
func LessEqual(a, b Bound) bool { return a <= b }

// String renders a bound in "op value" form for diagnostics, e.g. "<= 3"
// or "< 3"; infinity renders as "<inf".
func (r Bound) String() string {
	if r.IsInfinity() {
		return "<inf"
	}
	op := "<="
	if r.IsStrict() {
		op = "<"
	}
	return fmt.Sprintf("%s %d", op, r.Value())
}
