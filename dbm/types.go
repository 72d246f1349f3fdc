package dbm

import "github.com/go-dbm/udbm/bound"

// Status reports the outcome of a constraint-tightening operation. It is
// returned instead of an error for legitimate "cannot satisfy" results,
// per spec.md §7's propagation policy: Empty is not a malformed-input
// failure.
type Status int

const (
	// Unchanged indicates the new constraint was already implied by the
	// matrix; nothing was modified.
	Unchanged Status = iota
	// Tightened indicates the constraint strictly reduced the represented
	// set; the matrix was modified and reclosed.
	Tightened
	// Empty indicates the new constraint made the represented set empty.
	Empty
)

// String renders a Status for diagnostics and test failure messages.
func (s Status) String() string {
	switch s {
	case Unchanged:
		return "Unchanged"
	case Tightened:
		return "Tightened"
	case Empty:
		return "Empty"
	default:
		return "Status(?)"
	}
}

// Relation is the four-valued lattice relation between two DBMs or
// federations under set inclusion.
type Relation int

const (
	// Different indicates neither operand is contained in the other.
	Different Relation = iota
	// Subset indicates the left operand is contained in the right.
	Subset
	// Superset indicates the right operand is contained in the left.
	Superset
	// Equal indicates both operands denote the same set.
	Equal
)

// String renders a Relation for diagnostics.
func (r Relation) String() string {
	switch r {
	case Subset:
		return "Subset"
	case Superset:
		return "Superset"
	case Equal:
		return "Equal"
	default:
		return "Different"
	}
}

// Constraint is a single difference-bound constraint xi - xj ≼ bound, used
// by the batch ConstrainAll operator and by federation Constrain.
type Constraint struct {
	I, J  int
	Bound bound.Bound
}

// idx computes the flat row-major offset for (i,j) in a dim×dim matrix.
func idx(dim, i, j int) int { return i*dim + j }

// emptyMarker is the finite magnitude used by the canonical empty
// marker written to D[0,0] once a DBM is found empty: LSInfinity - 1,
// per spec.md §4.2's close() contract.
var emptyMarker = bound.LSInfinity - 1

// isEmptyData reports whether a dim-sized row-major matrix is the
// canonical empty representation: D[0,0] holds the empty sentinel.
// LSInfinity-1 can never occur in a valid closed, non-empty DBM (whose
// D[0,0] is always exactly LEZero by invariant 1), so equality against
// the sentinel is unambiguous.
func isEmptyData(data []bound.Bound, dim int) bool {
	if dim == 0 {
		return false
	}
	return data[0] == emptyMarker
}
