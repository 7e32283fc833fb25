//go:build windows

package statline

import (
	"io"
	"os"

	"golang.org/x/sys/windows"
)

// enableVirtualTerminal switches the console into ANSI escape processing.
// Reports false when the mode cannot be set, in which case the caller falls
// back to colorless output.
func enableVirtualTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return true
	}
	handle := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		// Not a console (pipe or file); nothing to enable.
		return true
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
