package statline

import (
	"bytes"
	"io"
	"os"
	"strings"
)

// LineKind tells Print whether a line may be shortened to fit the terminal.
type LineKind int

const (
	// Full lines are never elided and always end on their own line.
	Full LineKind = iota
	// Elide lines are transient status output that may be truncated to the
	// terminal width and overwritten by the next status line.
	Elide
)

const (
	clearToEOL = "\x1b[K"
	// eraseLine returns to column 0, clears the line and returns again, so
	// a child process inherits a clean line.
	eraseLine = "\r\x1b[K\r"
)

// LinePrinter renders one frequently overwritten status line plus a stream
// of permanently retained lines on a single output writer.
//
// Callers must serialize access themselves: the printer has no internal
// locking. The console "lock" below is terminal ownership for a child
// process, not a concurrency primitive.
type LinePrinter struct {
	cfg      Config
	out      io.Writer
	term     termInfo
	reformat *Reformatter

	// hasBlankLine tracks whether the cursor sits at the start of an empty
	// line; it is kept accurate after every write.
	hasBlankLine  bool
	consoleLocked bool

	// Populated only while consoleLocked; drained exactly once on unlock.
	pendingLine  string
	pendingKind  LineKind
	havePending  bool
	outputBuffer bytes.Buffer
}

// NewLinePrinter probes out once and returns a printer over it. A nil out
// writes to os.Stdout.
func NewLinePrinter(cfg Config, out io.Writer) *LinePrinter {
	if out == nil {
		out = os.Stdout
	}
	p := &LinePrinter{
		cfg:          cfg,
		out:          out,
		term:         probeTerminal(out, cfg.ForceColor),
		hasBlankLine: true,
	}
	if cfg.Reformat == ReformatPretty {
		p.reformat = NewReformatter(cfg.Rules)
	}
	return p
}

// SmartTerminal reports whether the output is an interactive terminal
// capable of in-place line updates.
func (p *LinePrinter) SmartTerminal() bool { return p.term.smart }

// SupportsColor reports whether ANSI color output is usable.
func (p *LinePrinter) SupportsColor() bool { return p.term.color }

// TerminalColumns returns the current terminal width, or fallback when the
// output is not a terminal or the size query fails.
func (p *LinePrinter) TerminalColumns(fallback int) int {
	return p.term.Columns(fallback)
}

// Print renders a status line. Elide-kind lines overwrite the previous
// status line on smart terminals, truncated to the terminal width; Full
// lines and non-smart output are appended newline-terminated. While the
// console is locked the line is held as the pending status line instead.
func (p *LinePrinter) Print(text string, kind LineKind) {
	if p.reformat != nil {
		text = p.reformat.Reformat(text)
	}
	if p.consoleLocked {
		p.pendingLine = text
		p.pendingKind = kind
		p.havePending = true
		return
	}
	if p.cfg.StatusPrint == StatusMultiLine {
		p.write(text + "\n")
		p.hasBlankLine = true
		return
	}

	if p.term.smart {
		p.write("\r") // print over the previous status line, if any
	}

	if p.term.smart && kind == Elide {
		text = ElideMiddle(text, p.term.Columns(DefaultTerminalWidth))
		p.write(text)
		p.write(clearToEOL)
		p.flush()
		p.hasBlankLine = false
		return
	}

	p.write(text + "\n")
	p.hasBlankLine = true
}

// PrintWithoutNewLine writes retained output verbatim with no trailing
// newline appended.
func (p *LinePrinter) PrintWithoutNewLine(text string) {
	p.flushPendingStatus()
	if text != "" {
		p.printOrBuffer([]byte(text))
	}
	p.hasBlankLine = (text != "" && text[0] == '\n') ||
		(text == "" && p.hasBlankLine)
}

// PrintOnNewLine writes retained output starting at the beginning of a
// fresh line, inserting a newline first when the cursor is mid-line.
func (p *LinePrinter) PrintOnNewLine(text string) {
	p.flushPendingStatus()
	if !p.hasBlankLine {
		p.printOrBuffer([]byte("\n"))
	}
	if text != "" {
		p.printOrBuffer([]byte(text))
	}
	p.hasBlankLine = text == "" || strings.HasSuffix(text, "\n")
}

// SetConsoleLocked toggles terminal ownership. Locking erases the current
// status line so the child process starts on a clean one; from then on all
// writes land in the pending line or the output buffer. Unlocking replays
// the buffered output verbatim and re-renders the pending status line
// through the normal Print path, since the terminal state may have changed
// while the child owned it. Calls that do not change the state are no-ops.
func (p *LinePrinter) SetConsoleLocked(locked bool) {
	if locked == p.consoleLocked {
		return
	}

	if locked {
		p.write(eraseLine)
		p.flush()
	}

	p.consoleLocked = locked

	if !locked {
		buffered := p.outputBuffer.String()
		p.outputBuffer.Reset()
		p.PrintWithoutNewLine(buffered)
		if p.havePending {
			line, kind := p.pendingLine, p.pendingKind
			p.havePending = false
			p.pendingLine = ""
			p.Print(line, kind)
		}
	}
}

// flushPendingStatus moves a buffered status line into the output buffer so
// retained output written during the lock appears after it, in order.
func (p *LinePrinter) flushPendingStatus() {
	if !p.consoleLocked || !p.havePending {
		return
	}
	p.outputBuffer.WriteString(p.pendingLine)
	p.outputBuffer.WriteByte('\n')
	p.havePending = false
	p.pendingLine = ""
}

// printOrBuffer writes raw bytes, or appends them to the output buffer
// while the console is locked. This is a byte-level write, never a
// formatting call: child output may contain NUL bytes (UTF-16 tools).
func (p *LinePrinter) printOrBuffer(data []byte) {
	if p.consoleLocked {
		p.outputBuffer.Write(data)
		return
	}
	_, _ = p.out.Write(data)
}

func (p *LinePrinter) write(s string) {
	_, _ = io.WriteString(p.out, s)
}

// flush pushes buffered writers through. os.Stdout is unbuffered in Go, so
// this only matters for injected writers that buffer.
func (p *LinePrinter) flush() {
	if f, ok := p.out.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
