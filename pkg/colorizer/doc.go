// Package colorizer applies a parsed RuleSet to single lines of text.
//
// Every rune of the line gets a slot holding either "no color" or a handle
// (rule index, color index) into the RuleSet. Rules are evaluated in file
// order and every capture group span overwrites the slots it covers, so the
// last write wins. Rendering merges equal neighbouring slots into runs and
// wraps each run in the activate/deactivate sequences of its ColorSpec;
// uncolored runs are prefixed with a plain reset. A final reset always
// closes the line.
//
// A match of a skip=yes rule suppresses the whole line. count=once keeps
// only the first match of a rule and count=stop ends rule evaluation after
// a rule that matched. The previous, block and unblock modes are accepted by
// the parser but behave like more.
package colorizer
