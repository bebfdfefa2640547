// Package rules parses cgrc rule files into an ordered RuleSet.
//
// # File Format
//
// A rule file is read line by line. Keywords are matched case-insensitively;
// everything after the first '=' is the value:
//
//	desc=Colorize ping output
//	regexp=(\d+) bytes from ([\d.]+)
//	colours=default,bold yellow,green
//	count=more
//
//	regexp=^PING.*
//	colours=bold
//
// Recognized keywords:
//
//   - desc=     description of the whole file; the last one wins
//   - regexp=   pattern for the current rule, compiled with regexp2 so
//     look-around and backreferences are available; the pattern text keeps
//     its case
//   - colours=  comma-separated color specs, one per capture group starting
//     with group 0 (colors= is accepted too)
//   - skip=     yes suppresses every line the rule matches
//   - count=    once, more, stop, previous, block or unblock
//
// Any other line, blank lines included, closes the current rule block. A
// block that set colours, skip or count without a regexp is an error, as is
// an invalid regexp or count value.
//
// # Rule Order
//
// Rules keep file order. The colorizer evaluates them first to last and a
// later rule overwrites the colors an earlier rule assigned.
package rules
