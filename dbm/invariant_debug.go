//go:build debug

package dbm

import "fmt"

// reportInvariant aborts in debug builds: an internal invariant violation
// indicates a bug in udbm itself, not a user-triggerable condition, and
// spec.md §7 mandates it be fatal when debug assertions are enabled.
func reportInvariant(site string, details string) error {
	panic(fmt.Sprintf("dbm: internal invariant violated at %s: %s", site, details))
}
