package minigraph

import "errors"

var (
	// ErrEmpty indicates the minimal graph of an empty DBM was requested;
	// only closed, non-empty DBMs have a minimal graph.
	ErrEmpty = errors.New("minigraph: DBM is empty")

	// ErrInvalidFormat indicates a decoded byte stream failed a
	// structural check: a truncated buffer, an unknown flag bit, or (in
	// Decode) a cost tail after the bound payload.
	ErrInvalidFormat = errors.New("minigraph: invalid format")
)
