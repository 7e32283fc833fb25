// Package statline renders build tool progress as a single in-place status
// line plus a stream of permanently retained output lines, and yields the
// terminal cleanly to child processes that temporarily own it.
package statline

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultTerminalWidth is the fallback width when the size query fails or
// the output is not a terminal.
const DefaultTerminalWidth = 80

// termInfo is the result of the one-time capability probe.
type termInfo struct {
	smart bool
	color bool
	fd    int // -1 when the output writer is not a file
}

// probeTerminal inspects the output writer once, at printer construction.
// Smart means interactive and not a degraded terminal type; color follows
// smartness unless forced. Every failure degrades to a safe default: not
// smart, no color, fallback width.
func probeTerminal(out io.Writer, forceColor bool) termInfo {
	info := termInfo{fd: -1}
	if f, ok := out.(*os.File); ok {
		info.fd = int(f.Fd())
		termType := os.Getenv("TERM")
		info.smart = term.IsTerminal(info.fd) && termType != "" && termType != "dumb"
	}
	info.color = info.smart || forceColor
	if info.color && !enableVirtualTerminal(out) {
		info.color = false
	}
	return info
}

// Columns reports the current terminal width, or fallback when unavailable.
// Queried per call rather than cached: the terminal may be resized between
// status updates.
func (ti termInfo) Columns(fallback int) int {
	if ti.fd < 0 {
		return fallback
	}
	width, _, err := term.GetSize(ti.fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
