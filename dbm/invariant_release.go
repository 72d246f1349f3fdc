//go:build !debug

package dbm

import "fmt"

// reportInvariant surfaces an invariant violation as a typed error in
// release builds, per spec.md §7: InternalInvariant aborts in debug
// builds, but is a regular (if unusual) failure in release builds.
func reportInvariant(site string, details string) error {
	return fmt.Errorf("dbm: %s: %s: %w", site, details, ErrInternalInvariant)
}
