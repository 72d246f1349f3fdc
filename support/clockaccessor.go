package support

import "fmt"

// NamedClocks is a trivial ClockAccessor backed by a slice of display
// names, index 0 conventionally unused (the reference clock is never
// printed). It is the accessor most callers reach for when clock names are
// known statically, e.g. in tests and CLI output.
type NamedClocks []string

// Name returns the display name for clock i, or a positional fallback
// "x<i>" if i is out of range.
func (n NamedClocks) Name(i int) string {
	if i >= 0 && i < len(n) && n[i] != "" {
		return n[i]
	}
	return fmt.Sprintf("x%d", i)
}
