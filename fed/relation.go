package fed

import "github.com/go-dbm/udbm/dbm"

// Relation computes the exact four-valued inclusion lattice between f and
// g under set inclusion (spec.md §9's resolved Open Question: this is
// never a volumetric "less than" reading). f is Subset of g iff every
// valuation f denotes is also denoted by g, decided exactly — though
// potentially expensively — via Subtract-emptiness: f ⊆ g iff f \ g is
// empty.
func (f Federation) Relation(g Federation) (dbm.Relation, error) {
	if err := checkDim(f, g, "Relation"); err != nil {
		return dbm.Different, err
	}
	fSubG := isSubset(f, g)
	gSubF := isSubset(g, f)
	switch {
	case fSubG && gSubF:
		return dbm.Equal, nil
	case fSubG:
		return dbm.Subset, nil
	case gSubF:
		return dbm.Superset, nil
	default:
		return dbm.Different, nil
	}
}

// isSubset reports whether a ⊆ b by subtracting b from a private copy of
// a and checking that nothing remains.
func isSubset(a, b Federation) bool {
	work := a.Copy()
	defer work.Release()
	if err := work.Subtract(b); err != nil {
		return false
	}
	return work.IsEmpty()
}

// PartialRelation is the cheap, approximate sibling of Relation: it only
// consults pairwise single-zone containment (dbm.DBM.Relation) and never
// claims a relation that single-zone checks cannot prove. It may return
// Different where Relation would prove Subset/Superset/Equal, but never
// the reverse.
func (f Federation) PartialRelation(g Federation) (dbm.Relation, error) {
	if err := checkDim(f, g, "PartialRelation"); err != nil {
		return dbm.Different, err
	}
	fSubG := partialSubset(f, g)
	gSubF := partialSubset(g, f)
	switch {
	case fSubG && gSubF:
		return dbm.Equal, nil
	case fSubG:
		return dbm.Subset, nil
	case gSubF:
		return dbm.Superset, nil
	default:
		return dbm.Different, nil
	}
}

// partialSubset reports whether every zone of a is contained in some
// single zone of b.
func partialSubset(a, b Federation) bool {
	bz := b.Zones()
	for _, z := range a.Zones() {
		contained := false
		for _, e := range bz {
			rel, err := z.Relation(e)
			if err != nil {
				continue
			}
			if rel == dbm.Equal || rel == dbm.Subset {
				contained = true
				break
			}
		}
		if !contained {
			return false
		}
	}
	return true
}
