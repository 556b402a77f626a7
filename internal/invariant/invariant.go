// Package invariant provides a single assertion helper used throughout the
// tree packages to guard conditions that must never be false if the rotation
// and join/split algorithms are implemented correctly.
//
// A failed invariant means a bug in this module, not bad caller input — it
// panics unconditionally rather than returning an error, mirroring the
// ASSERT macro the algorithms in this package were ported from.
package invariant

import "fmt"

// Check panics with a formatted message if cond is false.
func Check(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
