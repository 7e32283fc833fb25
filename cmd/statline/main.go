// statline renders build tool progress as a single in-place status line.
//
// Usage:
//
//	ninja | statline
//	make 2>&1 | statline -summary
//	statline exec -- ccmake ..
//
// Filter mode (default) reads build output on stdin: lines carrying a [n/m]
// progress counter become the transient status line, everything else is
// retained verbatim. Exec mode runs a command that owns the terminal,
// suspending status rendering around it.
//
// Environment:
//
//	STATLINE_REFORMAT_MODE=pretty     rewrite known build messages
//	STATLINE_STATUS_PRINT_MODE=...    singleline (default), multiline, scrolling
//	STATLINE_RULES=path.yaml          replace the pretty rule table
//	CLICOLOR_FORCE=1                  force color on non-terminals
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/statline/internal/version"
	"github.com/dkoosis/statline/statline"
)

// statusLinePattern recognizes transient progress lines by their leading
// [n/m] counter.
var statusLinePattern = regexp.MustCompile(`^\[ *[0-9]+/ *[0-9]+\]`)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "version" {
		fmt.Fprintf(stdout, "statline %s (%s, %s)\n",
			version.Version, version.CommitHash, version.BuildDate)
		return 0
	}
	if len(args) > 0 && args[0] == "exec" {
		return runExec(args[1:], stdout, stderr)
	}

	fs := flag.NewFlagSet("statline", flag.ContinueOnError)
	fs.SetOutput(stderr)
	reformatFlag := fs.String("reformat", "", `Reformat mode: "pretty" or "none" (default: environment)`)
	modeFlag := fs.String("mode", "", `Status mode: "singleline", "multiline" or "scrolling" (default: environment)`)
	summaryFlag := fs.Bool("summary", false, "Print a summary footer when the build finishes")
	debugFlag := fs.Bool("debug", false, "Diagnostic output on stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := statline.ConfigFromEnv()
	cfg.Debug = *debugFlag
	if code := applyModeFlags(&cfg, *reformatFlag, *modeFlag, stderr); code != 0 {
		return code
	}
	if path := os.Getenv(statline.EnvRulesFile); path != "" {
		rules, err := loadRuleFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "statline: %v\n", err)
			return 2
		}
		cfg.Rules = rules
	}

	printer := statline.NewLinePrinter(cfg, stdout)
	return runFilter(printer, stdin, *summaryFlag, cfg.Debug, stderr)
}

// applyModeFlags lets explicit flags win over the environment.
func applyModeFlags(cfg *statline.Config, reformat, mode string, stderr io.Writer) int {
	switch reformat {
	case "":
	case "pretty":
		cfg.Reformat = statline.ReformatPretty
	case "none":
		cfg.Reformat = statline.ReformatNone
	default:
		fmt.Fprintf(stderr, "statline: unknown -reformat value %q\n", reformat)
		return 2
	}
	switch mode {
	case "":
	case "singleline":
		cfg.StatusPrint = statline.StatusSingleLine
	case "multiline":
		cfg.StatusPrint = statline.StatusMultiLine
	case "scrolling":
		cfg.StatusPrint = statline.StatusScrolling
	default:
		fmt.Fprintf(stderr, "statline: unknown -mode value %q\n", mode)
		return 2
	}
	return 0
}

func loadRuleFile(path string) ([]statline.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rule table: %w", err)
	}
	defer f.Close()
	return statline.LoadRules(f)
}

// runFilter is the default mode: classify each line of build output as a
// transient status line or retained output.
func runFilter(printer *statline.LinePrinter, stdin io.Reader, summary, debug bool, stderr io.Writer) int {
	start := time.Now()
	statusCount, retainedCount := 0, 0

	scanner := bufio.NewScanner(statline.NewOutputReader(stdin))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if statusLinePattern.MatchString(line) {
			printer.Print(line, statline.Elide)
			statusCount++
			continue
		}
		printer.PrintOnNewLine(line + "\n")
		retainedCount++
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "statline: reading input: %v\n", err)
		return 1
	}

	// Leave the cursor on a fresh line rather than mid-status-line.
	printer.PrintOnNewLine("")

	if debug {
		fmt.Fprintf(stderr, "statline: %d status lines, %d retained lines\n",
			statusCount, retainedCount)
	}
	if summary {
		printSummary(printer, statusCount, retainedCount, time.Since(start))
	}
	return 0
}

// printSummary renders a faint one-line footer. Skipped on non-terminals so
// piped output stays machine-readable.
func printSummary(printer *statline.LinePrinter, statusCount, retainedCount int, elapsed time.Duration) {
	if !printer.SmartTerminal() {
		return
	}
	label := fmt.Sprintf("%d steps, %d lines kept, %s",
		statusCount, retainedCount, elapsed.Round(time.Millisecond))
	width := printer.TerminalColumns(statline.DefaultTerminalWidth)
	if statline.VisualWidth(label) > width {
		label = statline.ElideMiddle(label, width)
	}
	if printer.SupportsColor() {
		label = lipgloss.NewStyle().Faint(true).Render(label)
	}
	printer.PrintOnNewLine(label + "\n")
}

// runExec brackets a terminal-owning child command with the console lock so
// in-flight status output is suspended and replayed around it.
func runExec(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		fmt.Fprintln(stderr, "statline: exec requires a command, e.g. statline exec -- ccmake ..")
		return 2
	}

	printer := statline.NewLinePrinter(statline.ConfigFromEnv(), stdout)
	printer.SetConsoleLocked(true)

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()

	printer.SetConsoleLocked(false)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "statline: %v\n", err)
		return 1
	}
	return 0
}
