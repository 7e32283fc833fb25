package statline

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// BuiltinRules returns the default pretty-mode rule table. The rules
// recognize CMake-driven build messages, abbreviate and colorize them,
// strip intermediate build-directory noise from paths, and colorize [n/m]
// progress counters. Ordering matters: path normalization runs after the
// message rewrites, and counter colorization runs last.
func BuiltinRules() []Rule {
	return []Rule{
		mustRule(`building rds definition (.*)`,
			ansiCyan+"building rds script"+ansiReset+" "+ansiBlue+"$1"+ansiReset),
		mustRule(`Building CXX(.*) ([^ ]+)`,
			ansiGreen+"building c++$1 "+ansiBlue+"$2"+ansiReset),
		mustRule(`Linking CXX static library(.*) ([^ ]+)`,
			ansiBoldYellow+"linking: c++ static$1 "+ansiBoldBlue+"$2"+ansiReset),
		mustRule(`Building C(.*) ([^ ]+)`,
			ansiGreen+"building c  $1 "+ansiBlue+"$2"+ansiReset),
		mustRule(`Linking CXX executable(.*) ([^ ]+)`,
			ansiBoldYellow+"linking: c++ binary$1 "+ansiBoldBlue+"$2"+ansiReset),
		mustRule(`Linking C static library(.*) ([^ ]+)`,
			ansiBoldYellow+"linking: c   static$1 "+ansiBoldBlue+"$2"+ansiReset),
		mustRule(`Linking C(.*) ([^ ]+)`,
			ansiBoldYellow+"linking: c  $1 "+ansiBoldBlue+"$2"+ansiReset),
		// foo/xyz.dir/bar -> foo/bar
		mustRule(`[^/ ]+\.dir/`, ""),
		// foo/CMakeFiles/bar -> foo/bar
		mustRule(`CMakeFiles/`, ""),
		// foo.cpp.o -> foo.cpp
		mustRule(`\.cpp\.o`, ".cpp"),
		// Color the progress counters, e.g. [37/120].
		mustRule(`\[([ 0-9]+)/([ 0-9]+)\]`,
			"["+ansiBoldWhite+"$1"+ansiReset+"/"+ansiWhite+"$2"+ansiReset+"]"),
	}
}

// ruleFileVersion is the rule table format accepted by LoadRules.
const ruleFileVersion = 1

// ruleFile is the on-disk shape of a rule table.
type ruleFile struct {
	Version int `yaml:"version"`
	Rules   []struct {
		Pattern string `yaml:"pattern"`
		Replace string `yaml:"replace"`
	} `yaml:"rules"`
}

// LoadRules reads a YAML rule table. The file carries a version field and
// an ordered list of {pattern, replace} entries; replacements use regexp
// expansion syntax and may embed ANSI escapes.
func LoadRules(r io.Reader) ([]Rule, error) {
	var file ruleFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding rule table: %w", err)
	}
	if file.Version != ruleFileVersion {
		return nil, fmt.Errorf("unsupported rule table version %d", file.Version)
	}
	rules := make([]Rule, 0, len(file.Rules))
	for _, entry := range file.Rules {
		rule, err := NewRule(entry.Pattern, entry.Replace)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
