package colorizer

import (
	"strings"

	"github.com/arthur-debert/cgrc/pkg/colors"
	"github.com/arthur-debert/cgrc/pkg/logging"
	"github.com/arthur-debert/cgrc/pkg/rules"
	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
)

// handle points at a ColorSpec inside the RuleSet
type handle struct {
	rule  int
	color int
}

var noColor = handle{rule: -1, color: -1}

func (h handle) isSet() bool { return h.rule >= 0 }

// Colorizer renders lines against one RuleSet. It holds no per-line state
// and is safe for concurrent use.
type Colorizer struct {
	rules  *rules.RuleSet
	debug  bool
	plain  bool
	logger zerolog.Logger
}

// Option configures a Colorizer
type Option func(*Colorizer)

// WithDebug reports tested rules, matches and assigned spans on the logger
func WithDebug(debug bool) Option {
	return func(c *Colorizer) { c.debug = debug }
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Colorizer) { c.logger = logger }
}

// WithoutEscapes evaluates rules (skip still suppresses lines) but returns
// matched lines as they came in.
func WithoutEscapes() Option {
	return func(c *Colorizer) { c.plain = true }
}

// New returns a Colorizer for rs
func New(rs *rules.RuleSet, opts ...Option) *Colorizer {
	c := &Colorizer{
		rules:  rs,
		logger: logging.GetLogger("colorizer"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Colorize renders line with rs. The boolean is false when a skip rule
// matched and the line must not be written.
func Colorize(rs *rules.RuleSet, line string, debug bool) (string, bool) {
	return New(rs, WithDebug(debug)).Line(line)
}

// Rules returns the RuleSet the colorizer was built with
func (c *Colorizer) Rules() *rules.RuleSet { return c.rules }

// Line renders one input line
func (c *Colorizer) Line(line string) (string, bool) {
	text := []rune(line)
	slots, keep := c.resolve(line, len(text))
	if !keep {
		return "", false
	}
	if c.plain {
		return line, true
	}
	return c.render(text, slots), true
}

// resolve fills one slot per rune of line
func (c *Colorizer) resolve(line string, size int) ([]handle, bool) {
	slots := make([]handle, size)
	for i := range slots {
		slots[i] = noColor
	}
	if c.rules == nil {
		return slots, true
	}

	if c.debug {
		c.logger.Debug().Str("line", line).Msg("Processing line")
	}

	for ri := 0; ri < c.rules.Len(); ri++ {
		rule := c.rules.Rule(ri)
		matched := false
		m := c.firstMatch(rule, line)

		if c.debug {
			c.logger.Debug().
				Int("rule", ri).
				Str("pattern", rule.Pattern()).
				Bool("matched", m != nil).
				Msg("Rule tested")
		}

		for m != nil {
			if !matched && rule.Skip() {
				if c.debug {
					c.logger.Debug().Int("rule", ri).Msg("Line skipped")
				}
				return nil, false
			}
			matched = true

			c.apply(slots, ri, rule, m)

			if rule.Count() == rules.CountOnce {
				break
			}
			m = c.nextMatch(rule, m)
		}

		if matched && rule.Count() == rules.CountStop {
			if c.debug {
				c.logger.Debug().Int("rule", ri).Msg("Stop processing")
			}
			break
		}
	}

	return slots, true
}

// apply paints every participating group that has a color
func (c *Colorizer) apply(slots []handle, ri int, rule *rules.Rule, m *regexp2.Match) {
	for gi := 0; gi < rule.NumColors(); gi++ {
		group := m.GroupByNumber(gi)
		if group == nil || len(group.Captures) == 0 {
			continue
		}
		spec, _ := rule.Color(gi)
		if spec.IsNone() {
			continue
		}

		start, end := group.Index, group.Index+group.Length
		for j := start; j < end && j < len(slots); j++ {
			slots[j] = handle{rule: ri, color: gi}
		}

		if c.debug {
			c.logger.Debug().
				Int("rule", ri).
				Int("group", gi).
				Int("start", start).
				Int("end", end).
				Str("text", group.String()).
				Str("color", spec.String()).
				Msg("Color assigned")
		}
	}
}

func (c *Colorizer) firstMatch(rule *rules.Rule, line string) *regexp2.Match {
	m, err := rule.Regexp().FindStringMatch(line)
	if err != nil {
		c.logger.Warn().Err(err).Str("pattern", rule.Pattern()).Msg("Regexp evaluation failed")
		return nil
	}
	return m
}

func (c *Colorizer) nextMatch(rule *rules.Rule, m *regexp2.Match) *regexp2.Match {
	next, err := rule.Regexp().FindNextMatch(m)
	if err != nil {
		c.logger.Warn().Err(err).Str("pattern", rule.Pattern()).Msg("Regexp evaluation failed")
		return nil
	}
	return next
}

// render merges equal neighbouring slots into runs and wraps each run
func (c *Colorizer) render(text []rune, slots []handle) string {
	var b strings.Builder
	b.Grow(len(text) + 16*4)

	start := 0
	for i := 1; i <= len(slots); i++ {
		if i < len(slots) && slots[i] == slots[start] {
			continue
		}
		c.writeRun(&b, slots[start], string(text[start:i]))
		start = i
	}

	b.WriteString(colors.Reset)
	return b.String()
}

func (c *Colorizer) writeRun(b *strings.Builder, h handle, text string) {
	if !h.isSet() {
		b.WriteString(colors.Reset)
		b.WriteString(text)
		return
	}
	spec, _ := c.rules.Rule(h.rule).Color(h.color)
	b.WriteString(spec.Activate())
	b.WriteString(text)
	b.WriteString(spec.Deactivate())
}
