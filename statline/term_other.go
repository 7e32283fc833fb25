//go:build !windows

package statline

import "io"

// enableVirtualTerminal is a no-op outside Windows: POSIX terminals handle
// ANSI escape sequences natively.
func enableVirtualTerminal(io.Writer) bool { return true }
