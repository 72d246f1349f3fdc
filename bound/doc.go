// Package bound implements the raw integer encoding of difference-bound
// constraints used throughout udbm: a single machine word packs a finite
// bound (or +∞) together with its strictness.
//
// Encoding: the least significant bit carries strictness (0 = strict,
// 1 = weak/non-strict); the remaining bits hold the signed bound shifted
// left by one. This makes "tighter than" agree with plain signed integer
// comparison and lets closure use additions without branching on
// strictness: Add(x, y) = x + y - 1 keeps weak⊕weak weak and lets a single
// strict operand propagate strictness.
package bound
