// Package minigraph computes the minimal graph of a closed, non-empty DBM
// — the smallest set of constraints equivalent to it — and encodes or
// decodes that minimal graph using the wire format of spec.md §6: a
// header word (dimension, flags), a bitmask marking surviving cells, the
// surviving bounds themselves (32-bit or packed 16-bit), and an optional
// priced tail.
package minigraph
