package support

import (
	"fmt"
	"strings"
)

// Number is the set of scalar kinds a Valuation may hold.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Valuation is a fixed-size vector of clock values. Index 0 is the
// reference clock and is always held at the zero value; callers must not
// rely on Set(0, ...) doing anything other than being a no-op guard.
type Valuation[S Number] struct {
	values []S
}

// NewValuation allocates a Valuation of the given dimension (including the
// reference clock at index 0), all components zero.
func NewValuation[S Number](dim int) Valuation[S] {
	return Valuation[S]{values: make([]S, dim)}
}

// Dim returns the number of components, including the reference clock.
func (v Valuation[S]) Dim() int { return len(v.values) }

// Get returns the value of clock i.
func (v Valuation[S]) Get(i int) S { return v.values[i] }

// Set assigns clock i's value; setting index 0 is a no-op, the reference
// clock is always zero.
func (v Valuation[S]) Set(i int, val S) {
	if i == 0 {
		return
	}
	v.values[i] = val
}

// Add returns the component-wise sum of v and w. Both must share the same
// dimension; mismatched dimensions panic, mirroring a programmer error
// rather than a user-triggerable one (valuations are always sized from a
// DBM's fixed dimension).
func (v Valuation[S]) Add(w Valuation[S]) Valuation[S] {
	if v.Dim() != w.Dim() {
		panic("support: Valuation.Add: dimension mismatch")
	}
	out := NewValuation[S](v.Dim())
	for i := 1; i < v.Dim(); i++ {
		out.values[i] = v.values[i] + w.values[i]
	}
	return out
}

// DelayTo advances every clock except the reference clock by d, modelling
// the passage of d time units.
func (v Valuation[S]) DelayTo(d S) Valuation[S] {
	out := NewValuation[S](v.Dim())
	copy(out.values, v.values)
	for i := 1; i < out.Dim(); i++ {
		out.values[i] += d
	}
	return out
}

// ClockAccessor maps a clock index to its display name. Names starting
// with '#' denote internal auxiliary clocks and are hidden from Format.
type ClockAccessor interface {
	Name(i int) string
}

// Format renders the valuation as "name=value, ..." pairs in index order,
// skipping the reference clock and any clock whose accessor name starts
// with '#'.
func (v Valuation[S]) Format(acc ClockAccessor) string {
	var parts []string
	for i := 1; i < v.Dim(); i++ {
		name := acc.Name(i)
		if strings.HasPrefix(name, "#") {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", name, v.values[i]))
	}
	return strings.Join(parts, ", ")
}
