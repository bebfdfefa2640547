package rules

import (
	"strings"

	"github.com/arthur-debert/cgrc/pkg/colors"
	"github.com/dlclark/regexp2"
)

// CountMode controls how repeated matches of one rule on a line are handled
type CountMode int

const (
	// CountMore applies every match (default)
	CountMore CountMode = iota
	// CountOnce applies only the first match
	CountOnce
	// CountStop stops evaluating later rules once this rule matched
	CountStop
	// CountPrevious is accepted but has no effect on matching
	CountPrevious
	// CountBlock is accepted but has no effect on matching
	CountBlock
	// CountUnblock is accepted but has no effect on matching
	CountUnblock
)

var countModeNames = map[CountMode]string{
	CountMore:     "more",
	CountOnce:     "once",
	CountStop:     "stop",
	CountPrevious: "previous",
	CountBlock:    "block",
	CountUnblock:  "unblock",
}

// String returns the rule-file spelling of the mode
func (c CountMode) String() string {
	if name, ok := countModeNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCountMode parses a count= value, ignoring case
func ParseCountMode(s string) (CountMode, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for mode, name := range countModeNames {
		if name == lower {
			return mode, true
		}
	}
	return CountMore, false
}

// Rule is one regexp with its per-group colors and modifiers
type Rule struct {
	pattern string
	regex   *regexp2.Regexp
	colors  []colors.ColorSpec
	skip    bool
	count   CountMode
}

// Pattern returns the regexp source as written in the rule file
func (r *Rule) Pattern() string { return r.pattern }

// Regexp returns the compiled pattern
func (r *Rule) Regexp() *regexp2.Regexp { return r.regex }

// Colors returns a copy of the color list; index i belongs to capture group i
func (r *Rule) Colors() []colors.ColorSpec {
	out := make([]colors.ColorSpec, len(r.colors))
	copy(out, r.colors)
	return out
}

// NumColors returns the number of color specs
func (r *Rule) NumColors() int { return len(r.colors) }

// Color returns the spec for capture group i
func (r *Rule) Color(i int) (colors.ColorSpec, bool) {
	if i < 0 || i >= len(r.colors) {
		return colors.ColorSpec{}, false
	}
	return r.colors[i], true
}

// Skip reports whether a match suppresses the whole line
func (r *Rule) Skip() bool { return r.skip }

// Count returns the rule's count mode
func (r *Rule) Count() CountMode { return r.count }

// RuleSet is the ordered, immutable result of parsing one rule file
type RuleSet struct {
	rules          []*Rule
	description    string
	hasDescription bool
	source         string
}

// Len returns the number of rules
func (s *RuleSet) Len() int { return len(s.rules) }

// Rule returns the i-th rule in file order
func (s *RuleSet) Rule(i int) *Rule { return s.rules[i] }

// Rules returns the rules in file order
func (s *RuleSet) Rules() []*Rule {
	out := make([]*Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Description returns the desc= text, if any
func (s *RuleSet) Description() (string, bool) {
	return s.description, s.hasDescription
}

// Source names where the rule file came from (file path or embedded name)
func (s *RuleSet) Source() string { return s.source }

// Patterns returns every rule's pattern in file order
func (s *RuleSet) Patterns() []string {
	out := make([]string, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.pattern
	}
	return out
}
