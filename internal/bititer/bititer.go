// Package bititer provides small bit-set iteration helpers used by
// dbm/minigraph's bitmask walk — grounded on original_source's base/Enumerator (a bit-indexed
// enumerator used throughout the original allocator and minimal-graph
// code to walk "which slots are set" without a separate index list).
package bititer

import "math/bits"

// Set is a dense bitset over [0, n) backed by 64-bit words.
type Set struct {
	words []uint64
	n     int
}

// NewSet allocates a Set capable of holding n bits, all initially clear.
func NewSet(n int) Set {
	return Set{words: make([]uint64, (n+63)/64), n: n}
}

// Set marks bit i.
func (s Set) Set(i int) {
	s.words[i/64] |= 1 << uint(i%64)
}

// Clear unmarks bit i.
func (s Set) Clear(i int) {
	s.words[i/64] &^= 1 << uint(i%64)
}

// Test reports whether bit i is set.
func (s Set) Test(i int) bool {
	return s.words[i/64]&(1<<uint(i%64)) != 0
}

// Len returns the number of bits the Set was sized for.
func (s Set) Len() int { return s.n }

// Count returns the number of set bits.
func (s Set) Count() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// Each calls fn once for every set bit index, in ascending order.
func (s Set) Each(fn func(i int)) {
	for wordIdx, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			i := wordIdx*64 + tz
			if i >= s.n {
				return
			}
			fn(i)
			w &= w - 1 // clear lowest set bit
		}
	}
}

// Indices returns every set bit index in ascending order.
func (s Set) Indices() []int {
	out := make([]int, 0, s.Count())
	s.Each(func(i int) { out = append(out, i) })
	return out
}
