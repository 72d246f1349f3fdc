package fed

import "github.com/go-dbm/udbm/dbm"

// Iterator is the sole way to splice a federation's list in place:
// Extract, Remove, and Insert all act at the iterator's current position.
// Obtaining an iterator forces copy-on-write uniqueness on the federation
// up front, matching spec.md §4.5's "all operations that potentially
// mutate first force uniqueness of the federation record".
type Iterator struct {
	f    *Federation
	prev *node
	cur  *node
}

// Iterate returns a mutable iterator positioned at the federation's first
// zone.
func (f *Federation) Iterate() *Iterator {
	c := f.mutate()
	return &Iterator{f: f, cur: c.head}
}

// Valid reports whether the iterator is positioned at a zone.
func (it *Iterator) Valid() bool { return it.cur != nil }

// Value returns the zone at the iterator's current position.
func (it *Iterator) Value() dbm.DBM { return it.cur.d }

// Next advances the iterator to the following zone.
func (it *Iterator) Next() {
	if it.cur != nil {
		it.prev = it.cur
		it.cur = it.cur.next
	}
}

// Extract removes the current zone from the federation without releasing
// it, transferring ownership of the handle to the caller, and advances to
// the next zone.
func (it *Iterator) Extract() dbm.DBM {
	c := it.f.c
	d := it.cur.d
	next := it.cur.next
	if it.prev == nil {
		c.head = next
	} else {
		it.prev.next = next
	}
	c.size--
	it.cur = next
	return d
}

// Remove deletes the current zone outright, releasing its handle, and
// advances to the next zone.
func (it *Iterator) Remove() {
	it.Extract().Release()
}

// Insert splices d into the federation immediately before the iterator's
// current position, retaining its own handle to it; the iterator does
// not move.
func (it *Iterator) Insert(d dbm.DBM) {
	c := it.f.c
	nn := &node{d: d.Copy(), next: it.cur}
	if it.prev == nil {
		c.head = nn
	} else {
		it.prev.next = nn
	}
	it.prev = nn
	c.size++
}
