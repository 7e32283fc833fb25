package statline

import "os"

// ReformatMode selects whether status text is cosmetically rewritten before
// it is printed.
type ReformatMode int

const (
	ReformatNone ReformatMode = iota
	ReformatPretty
)

// StatusPrintMode selects how status lines are dispatched to the terminal.
type StatusPrintMode int

const (
	// StatusSingleLine overwrites one status line in place on smart terminals.
	StatusSingleLine StatusPrintMode = iota
	// StatusMultiLine appends every status line with a trailing newline.
	StatusMultiLine
	// StatusScrolling is reserved for a future rendering variant; it
	// currently behaves exactly like StatusSingleLine.
	StatusScrolling
)

// Environment variables consulted by ConfigFromEnv.
const (
	EnvReformatMode    = "STATLINE_REFORMAT_MODE"
	EnvStatusPrintMode = "STATLINE_STATUS_PRINT_MODE"
	EnvRulesFile       = "STATLINE_RULES"
	EnvForceColor      = "CLICOLOR_FORCE"
)

// Config carries the rendering configuration for a LinePrinter. Build it
// once at startup (usually via ConfigFromEnv) and pass it to NewLinePrinter;
// it is plain data and is never mutated afterwards.
type Config struct {
	Reformat    ReformatMode
	StatusPrint StatusPrintMode

	// Rules replaces the built-in pretty-mode rule table when non-nil.
	Rules []Rule

	// ForceColor enables color output even when the output is not a smart
	// terminal. CLICOLOR_FORCE sets this.
	ForceColor bool

	// Debug enables diagnostic output on stderr in the CLI driver. The
	// printer itself never logs.
	Debug bool
}

// ConfigFromEnv derives a Config from the environment. Unknown or unset
// values fall back to ReformatNone and StatusSingleLine.
func ConfigFromEnv() Config {
	var cfg Config
	if os.Getenv(EnvReformatMode) == "pretty" {
		cfg.Reformat = ReformatPretty
	}
	switch os.Getenv(EnvStatusPrintMode) {
	case "multiline":
		cfg.StatusPrint = StatusMultiLine
	case "scrolling":
		cfg.StatusPrint = StatusScrolling
	}
	if v, ok := os.LookupEnv(EnvForceColor); ok && v != "0" {
		cfg.ForceColor = true
	}
	return cfg
}
