package statline

import (
	"fmt"
	"regexp"
)

// ANSI fragments used by the rule tables. Raw escape strings rather than a
// color library: replacement templates interleave capture references with
// color codes and must stay byte-exact, gated only on the printer's own
// capability probe.
const (
	ansiReset      = "\x1b[0m"
	ansiCyan       = "\x1b[36m"
	ansiGreen      = "\x1b[32m"
	ansiBlue       = "\x1b[34m"
	ansiBoldBlue   = "\x1b[34;1m"
	ansiBoldYellow = "\x1b[33;1m"
	ansiWhite      = "\x1b[37m"
	ansiBoldWhite  = "\x1b[37;1m"
)

// Rule is one find/replace step of the pretty reformatter. Replace uses
// regexp expansion syntax ($1, $2) and may embed ANSI escapes.
type Rule struct {
	pattern *regexp.Regexp
	replace string
}

// NewRule compiles a reformatting rule.
func NewRule(pattern, replace string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("compiling rule pattern %q: %w", pattern, err)
	}
	return Rule{pattern: re, replace: replace}, nil
}

// mustRule builds the entries of the built-in table.
func mustRule(pattern, replace string) Rule {
	rule, err := NewRule(pattern, replace)
	if err != nil {
		panic(err)
	}
	return rule
}

// Reformatter applies an ordered rule table to status text.
type Reformatter struct {
	rules []Rule
}

// NewReformatter returns a reformatter over the given rules, or over the
// built-in table when rules is nil.
func NewReformatter(rules []Rule) *Reformatter {
	if rules == nil {
		rules = BuiltinRules()
	}
	return &Reformatter{rules: rules}
}

// Reformat runs every rule in order. Each rule sees the output of the
// previous one, so rules compose rather than compete: a single line may be
// rewritten by several of them.
func (r *Reformatter) Reformat(text string) string {
	for _, rule := range r.rules {
		text = rule.pattern.ReplaceAllString(text, rule.replace)
	}
	return text
}
