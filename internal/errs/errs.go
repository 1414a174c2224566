// Package errs carries this module's error taxonomy: the handful of
// programmer-error assertions that guard the tree's internal invariants,
// plus the Enabled switch the test suite consults to decide whether to
// re-verify the whole tree after every mutating call.
package errs

import (
	"os"

	"github.com/cockroachdb/errors"
)

// Enabled reports whether the test suite's expensive invariant checks (a
// full-tree Verify after every mutating call) should run. Off by default
// since a Verify walk is O(n) against an O(log n) mutation; set
// ADSSET_INVARIANTS to any non-empty value to turn it on. It does not gate
// Assertf/AssertTrue themselves — those guard conditions that indicate a
// bug regardless of how expensive they'd be to skip, so they always run.
var Enabled = os.Getenv("ADSSET_INVARIANTS") != ""

// Assertf panics with an AssertionFailedf-wrapped error. Reserved for
// conditions that indicate a bug in this package — a node left outside
// [N, 2N] after a structural operation should have rebalanced it, an
// iterator dereferenced past its end, a merge landing outside the bounds
// the protocol promises — never for ordinary protocol outcomes like a
// duplicate insert or a miss on erase, which are typed return values, not
// errors.
func Assertf(format string, args ...interface{}) {
	panic(errors.AssertionFailedf(format, args...))
}

// AssertTrue panics via Assertf if cond is false.
func AssertTrue(cond bool, format string, args ...interface{}) {
	if !cond {
		Assertf(format, args...)
	}
}
