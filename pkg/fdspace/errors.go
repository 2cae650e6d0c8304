package fdspace

import (
	"errors"
	"fmt"
)

// Inconsistency is an expected runtime condition (a domain became
// empty) and never escapes as an error: it surfaces as Unsatisfiable
// status or a false return from Propagate (spec §7). These sentinels
// name those reasons; no function in this package returns or logs
// them.
var (
	// ErrDomainEmpty marks a domain collapsing to empty during an update.
	ErrDomainEmpty = errors.New("fdspace: domain became empty")
	// ErrAlreadyFrozen names the misuse of freezing a Space twice;
	// Space.Freeze reports that misuse by panicking through
	// contractViolation, not by returning this error.
	ErrAlreadyFrozen = errors.New("fdspace: space already frozen")
)

// contractViolation panics with a diagnostic identifying the misuse.
// Contract violations (branching a singleton/empty domain, a
// non-subset update, double-freezing, ...) are bugs, not recoverable
// failures, and must fail loudly at the call site (spec §7).
func contractViolation(format string, args ...any) {
	panic(fmt.Sprintf("fdspace: contract violation: "+format, args...))
}
