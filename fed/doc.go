// Package fed implements Federation, a finite union of same-dimension DBMs
// represented as a ref-counted, copy-on-write intrusive list (spec.md §4.5).
// Federations are the objects symbolic reachability actually manipulates:
// append, union, intersection, constrain, subtract, relation, reduction
// strategies, the timed-predecessor operator, and widenings all lift their
// per-DBM counterpart in package dbm over every zone in the list.
package fed
