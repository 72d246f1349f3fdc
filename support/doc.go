// Package support collects the small cross-cutting utilities shared by the
// rest of udbm: a process-stable byte hash used for hash-consing, a typed bulk-reset pool allocator for hot-path
// allocation, a fixed-size clock valuation vector, and the ClockAccessor
// formatting contract.
//
// None of these types are specific to DBMs; they exist so dbm, fed and
// priced do not each reinvent hashing or pooling.
package support
