package statline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestProbeTerminal_DegradesOnNonFileWriter(t *testing.T) {
	info := probeTerminal(&bytes.Buffer{}, false)

	if info.smart {
		t.Error("buffers are not smart terminals")
	}
	if info.color {
		t.Error("color must follow smartness when not forced")
	}
	if info.fd != -1 {
		t.Errorf("fd = %d, want -1", info.fd)
	}
}

func TestProbeTerminal_HonorsForceColor(t *testing.T) {
	info := probeTerminal(&bytes.Buffer{}, true)

	if info.smart {
		t.Error("forcing color must not make the output smart")
	}
	if !info.color {
		t.Error("forced color must survive a non-terminal probe")
	}
}

func TestProbeTerminal_RegularFileIsNotSmart(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	info := probeTerminal(f, false)
	if info.smart {
		t.Error("a regular file is not a smart terminal, whatever TERM says")
	}
}

func TestColumns_FallsBackWhenUnavailable(t *testing.T) {
	if got := (termInfo{fd: -1}).Columns(77); got != 77 {
		t.Errorf("Columns on non-file = %d, want 77", got)
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	info := termInfo{fd: int(f.Fd())}
	if got := info.Columns(66); got != 66 {
		t.Errorf("Columns on regular file = %d, want 66", got)
	}
}
