// Package partition implements a refinement table mapping caller-chosen
// identifiers to disjoint federations, plus an "all" federation tracking
// their union (spec.md §4.6). Add enforces disjointness by subtracting
// the already-covered region before inserting, then reduces both the
// target entry and the union to bound list growth.
package partition
