package colors

import "strings"

// ParseSpec builds a ColorSpec from one whitespace-separated token group.
// Tokens are resolved against the attribute, background and foreground
// tables in that order; the first table that knows a token wins. Unknown
// tokens are ignored.
func ParseSpec(group string) ColorSpec {
	var (
		attrs []Attribute
		fg    = FgDefault
		bg    = BgDefault
	)

	for _, token := range strings.Fields(group) {
		if a, ok := ResolveAttribute(token); ok {
			attrs = append(attrs, a)
			continue
		}
		if b, ok := ResolveBackground(token); ok {
			bg = b
			continue
		}
		if f, ok := ResolveForeground(token); ok {
			fg = f
		}
	}

	return NewColorSpec(attrs, fg, bg)
}

// ParseSpecList splits a colours= value on commas and parses each group.
// Empty groups produce a default spec so group indices stay aligned.
func ParseSpecList(list string) []ColorSpec {
	groups := strings.Split(list, ",")
	specs := make([]ColorSpec, 0, len(groups))
	for _, group := range groups {
		specs = append(specs, ParseSpec(group))
	}
	return specs
}

// FormatSpecList is the inverse of ParseSpecList.
func FormatSpecList(specs []ColorSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}
