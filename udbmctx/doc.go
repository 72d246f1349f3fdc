// Package udbmctx is the explicit library context that replaces udbm's
// global mutable singletons (the original source's process-wide
// DBMTable/DBMAllocator pattern — see DESIGN.md). A Context owns the
// hash-consing intern table and the per-dimension free lists that back
// dbm.DBM's copy-on-write matrices.
//
// A Context is thread-hostile: like the rest of udbm it assumes a single
// goroutine owns it at a time (spec.md §5). Library code threads a
// *Context explicitly rather than reaching for package-level state; a
// convenience default Context is opt-in via Default().
package udbmctx
