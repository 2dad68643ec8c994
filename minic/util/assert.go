package util

import "fmt"

// Assert panics with the formatted message if v is false. Used for
// invariants that only break on programmer error, never on user input.
func Assert(v bool, format string, args ...any) {
	if !v {
		panic(fmt.Sprintf("assertion failed: %s", fmt.Sprintf(format, args...)))
	}
}
