// Package colors maps the symbolic color and attribute names used in rule
// files to ANSI SGR codes.
//
// A colours= line in a rule file is a comma-separated list of token groups,
// one per capture group:
//
//	colours=default,bold red,on_blue bright_yellow,none
//
// Each token in a group is looked up in three tables, in order: attributes,
// backgrounds, foregrounds. The first table that knows the token wins and
// unknown tokens are dropped. Every group becomes one ColorSpec, which
// carries the two escape strings used when rendering a colored run:
//
//	Activate()   ESC[<fg>;<bg>;<attrs...>m
//	Deactivate() ESC[39;49;<attr resets...>m
//
// The "none" (alias "unchanged") attribute marks a spec that never paints,
// leaving whatever an earlier rule or group assigned in place.
package colors
