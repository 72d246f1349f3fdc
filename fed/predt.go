package fed

// Predt computes the timed-predecessor federation predt(f, bad) =
// (f ↓) \ (bad ↓): the down-closure of f minus the down-closure of bad,
// used by backward reachability. Subtract's onion-peeling split keeps the
// pieces carved from any one zone of f↓ disjoint; no separate pass runs,
// so pieces coming from different, overlapping zones of f↓ may overlap.
func (f Federation) Predt(bad Federation) (Federation, error) {
	if err := checkDim(f, bad, "Predt"); err != nil {
		return Federation{}, err
	}

	selfDown := f.Copy()
	sc := selfDown.mutate()
	for n := sc.head; n != nil; n = n.next {
		n.d.Down()
	}

	badDown := bad.Copy()
	bc := badDown.mutate()
	for n := bc.head; n != nil; n = n.next {
		n.d.Down()
	}

	result := selfDown
	if err := result.Subtract(badDown); err != nil {
		badDown.Release()
		return Federation{}, err
	}
	badDown.Release()
	return result, nil
}
