package colors

import (
	"sort"
	"strconv"
	"strings"
)

// ColorSpec is the color decision for one capture group. It is immutable
// once built; the escape strings are computed in NewColorSpec.
type ColorSpec struct {
	attrs      []Attribute
	fg         Foreground
	bg         Background
	activate   string
	deactivate string
}

// NewColorSpec builds a spec from its parts. Duplicate attributes are
// collapsed and attributes are kept in ascending code order.
func NewColorSpec(attrs []Attribute, fg Foreground, bg Background) ColorSpec {
	if fg == 0 {
		fg = FgDefault
	}
	if bg == 0 {
		bg = BgDefault
	}

	seen := make(map[Attribute]bool, len(attrs))
	uniq := make([]Attribute, 0, len(attrs))
	for _, a := range attrs {
		if seen[a] {
			continue
		}
		seen[a] = true
		uniq = append(uniq, a)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })

	spec := ColorSpec{attrs: uniq, fg: fg, bg: bg}
	spec.activate = spec.buildActivate()
	spec.deactivate = spec.buildDeactivate()
	return spec
}

// Attributes returns a copy of the spec's attributes.
func (s ColorSpec) Attributes() []Attribute {
	out := make([]Attribute, len(s.attrs))
	copy(out, s.attrs)
	return out
}

// Foreground returns the foreground color.
func (s ColorSpec) Foreground() Foreground { return s.fg }

// Background returns the background color.
func (s ColorSpec) Background() Background { return s.bg }

// Activate returns the escape sequence that turns the spec on.
func (s ColorSpec) Activate() string { return s.activate }

// Deactivate returns the escape sequence that turns the spec off.
func (s ColorSpec) Deactivate() string { return s.deactivate }

// IsNone reports whether the spec carries the "none" attribute and must
// never overwrite existing coloring.
func (s ColorSpec) IsNone() bool {
	for _, a := range s.attrs {
		if a == AttrNone {
			return true
		}
	}
	return false
}

// HasAttribute reports whether the spec carries the attribute.
func (s ColorSpec) HasAttribute(attr Attribute) bool {
	for _, a := range s.attrs {
		if a == attr {
			return true
		}
	}
	return false
}

// String returns the spec as rule-file tokens: attributes, then foreground,
// then background. Default colors are omitted, so a plain spec is "".
func (s ColorSpec) String() string {
	tokens := make([]string, 0, len(s.attrs)+2)
	for _, a := range s.attrs {
		tokens = append(tokens, a.String())
	}
	if name := s.fg.String(); name != "" {
		tokens = append(tokens, name)
	}
	if name := s.bg.String(); name != "" {
		tokens = append(tokens, name)
	}
	return strings.Join(tokens, " ")
}

// Tokens is String split into its tokens.
func (s ColorSpec) Tokens() []string {
	str := s.String()
	if str == "" {
		return []string{}
	}
	return strings.Split(str, " ")
}

// buildActivate emits fg;bg;attrs, except that the "default" reset (0) goes
// first: placed after the colors it would cancel them.
func (s ColorSpec) buildActivate() string {
	params := make([]string, 0, len(s.attrs)+3)
	if s.HasAttribute(AttrReset) {
		params = append(params, "0")
	}
	params = append(params, strconv.Itoa(int(s.fg)), strconv.Itoa(int(s.bg)))
	for _, a := range s.attrs {
		if a == AttrNone || a == AttrReset {
			continue
		}
		params = append(params, strconv.Itoa(int(a)))
	}
	return sgr(params)
}

func (s ColorSpec) buildDeactivate() string {
	params := []string{strconv.Itoa(int(FgDefault)), strconv.Itoa(int(BgDefault))}
	for _, a := range s.attrs {
		if code := a.ResetCode(); code != 0 {
			params = append(params, strconv.Itoa(code))
		}
	}
	return sgr(params)
}

func sgr(params []string) string {
	return Escape + "[" + strings.Join(params, ";") + "m"
}
