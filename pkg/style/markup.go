package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type markupTag struct {
	pattern *regexp.Regexp
	style   lipgloss.Style
}

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles
type MarkupParser struct {
	tags map[string]markupTag
}

// NewMarkupParser creates a parser with the default tags
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{tags: map[string]markupTag{}}
	for tag, s := range map[string]lipgloss.Style{
		"title":     TitleStyle,
		"success":   SuccessStyle,
		"error":     ErrorStyle,
		"warning":   WarningStyle,
		"info":      InfoStyle,
		"code":      CodeStyle,
		"path":      PathStyle,
		"muted":     MutedStyle,
		"bold":      lipgloss.NewStyle().Bold(true),
		"underline": lipgloss.NewStyle().Underline(true),

		// Locations
		"embedded": EmbeddedStyle,
		"user":     UserStyle,
		"extra":    ExtraStyle,
		"system":   SystemStyle,
	} {
		p.AddStyle(tag, s)
	}
	return p
}

// AddStyle registers or replaces a tag
func (p *MarkupParser) AddStyle(tag string, s lipgloss.Style) {
	p.tags[tag] = markupTag{
		pattern: regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`),
		style:   s,
	}
}

// Render replaces every tag pair with its styled content. Nested tags are
// resolved by repeating until nothing changes.
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		before := result
		for _, tag := range p.tags {
			result = tag.pattern.ReplaceAllStringFunc(result, func(match string) string {
				sub := tag.pattern.FindStringSubmatch(match)
				return tag.style.Render(sub[1])
			})
		}
		if result == before {
			return result
		}
	}
}

// Strip removes tags without styling
func (p *MarkupParser) Strip(text string) string {
	result := text
	for {
		before := result
		for _, tag := range p.tags {
			result = tag.pattern.ReplaceAllString(result, "$1")
		}
		if result == before {
			return result
		}
	}
}

// RenderTemplate substitutes {{key}} placeholders, then renders markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	return p.Render(Expand(template, vars))
}

// Format renders markup when color is true and strips it otherwise
func (p *MarkupParser) Format(text string, color bool) string {
	if color {
		return p.Render(text)
	}
	return p.Strip(text)
}

// Expand substitutes {{key}} placeholders and leaves markup in place
func Expand(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}

// Format is a convenience function using the default parser
func Format(text string, color bool) string {
	return defaultParser.Format(text, color)
}

// RenderTemplate is a convenience function using the default parser
func RenderTemplate(template string, vars map[string]string) string {
	return defaultParser.RenderTemplate(template, vars)
}
