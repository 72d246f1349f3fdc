// Package udbm is a difference-bound-matrix engine for real-time
// verification: zones, federations, partitions and priced zones, built
// around the same copy-on-write handle discipline throughout.
//
// Subpackages:
//
//	bound/          — the raw (value, strictness) encoding of a single constraint
//	udbmctx/        — the ref-counted, hash-consing allocator every handle shares
//	dbm/            — the zone: a canonical, closed difference-bound matrix
//	dbm/minigraph/  — the minimal-graph wire encoding of a closed zone
//	fed/            — Federation: a ref-counted, copy-on-write list of zones
//	partition/      — a refinement table of disjoint federations keyed by caller ID
//	priced/         — zones augmented with an affine cost function
//	support/        — small generic helpers (pools, hashing, valuations) shared above
//
// cmd/udbmctl is a small CLI wrapping the minimal-graph codec and a
// canned federation demo.
package udbm
