package bound

import "errors"

// Sentinel errors for the bound package. Every message is prefixed with
// "bound: ..." for consistent grepping, matching the convention used by the
// rest of this module's packages.
var (
	// ErrInvalidBound indicates a constructed bound would be -infinity, or
	// its finite magnitude falls outside the representable range.
	ErrInvalidBound = errors.New("bound: invalid bound")

	// ErrOverflow indicates bound arithmetic would leave the representable
	// range even after the saturate-at-infinity policy is applied (i.e. the
	// finite operands themselves overflow int32 before saturation can kick
	// in).
	ErrOverflow = errors.New("bound: arithmetic overflow")
)
