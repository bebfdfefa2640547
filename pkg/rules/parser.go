package rules

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/cgrc/pkg/colors"
	"github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/arthur-debert/cgrc/pkg/logging"
	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
)

// Options tunes parsing
type Options struct {
	// Source is recorded on the RuleSet and used in error messages
	Source string

	// MatchTimeout bounds a single regexp evaluation; zero means no limit
	MatchTimeout time.Duration
}

// Parse parses rule definitions from a string
func Parse(text string) (*RuleSet, error) {
	return ParseWithOptions(strings.NewReader(text), Options{})
}

// ParseReader parses rule definitions from r
func ParseReader(r io.Reader) (*RuleSet, error) {
	return ParseWithOptions(r, Options{})
}

// ParseWithOptions parses rule definitions from r
func ParseWithOptions(r io.Reader, opts Options) (*RuleSet, error) {
	p := &parser{
		opts:   opts,
		set:    &RuleSet{source: opts.Source},
		logger: logging.GetLogger("rules.parser"),
	}

	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to read rule definitions from %s", p.sourceName())
		}
		if line != "" {
			lineNo++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if perr := p.parseLine(lineNo, line); perr != nil {
				return nil, perr
			}
		}
		if err == io.EOF {
			break
		}
	}

	if err := p.endBlock(); err != nil {
		return nil, err
	}

	p.logger.Debug().
		Str("source", p.sourceName()).
		Int("rules", len(p.set.rules)).
		Int("lines", lineNo).
		Msg("Parsed rule definitions")

	return p.set, nil
}

type parser struct {
	opts    Options
	set     *RuleSet
	current pending
	logger  zerolog.Logger
}

// pending is the rule block under construction
type pending struct {
	rule      Rule
	hasRegexp bool
	// touched is set once colours, skip or count appear in the block
	touched   bool
	startLine int
}

func (p *parser) parseLine(lineNo int, line string) error {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return p.endBlock()
	}

	switch strings.ToLower(key) {
	case "desc":
		p.set.description = value
		p.set.hasDescription = true

	case "regexp":
		re, err := regexp2.Compile(value, regexp2.None)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse,
				"%s:%d: invalid regexp %q", p.sourceName(), lineNo, line).
				WithDetail("line", lineNo).
				WithDetail("text", line)
		}
		if p.opts.MatchTimeout > 0 {
			re.MatchTimeout = p.opts.MatchTimeout
		}
		p.mark(lineNo)
		p.current.rule.pattern = value
		p.current.rule.regex = re
		p.current.hasRegexp = true

	case "colours", "colors":
		p.mark(lineNo)
		p.current.touched = true
		p.current.rule.colors = append(p.current.rule.colors, colors.ParseSpecList(value)...)

	case "skip":
		p.mark(lineNo)
		p.current.touched = true
		p.current.rule.skip = strings.EqualFold(strings.TrimSpace(value), "yes")

	case "count":
		mode, ok := ParseCountMode(value)
		if !ok {
			return errors.Newf(errors.ErrConfigParse,
				"%s:%d: invalid count mode %q", p.sourceName(), lineNo, value).
				WithDetail("line", lineNo).
				WithDetail("text", line)
		}
		p.mark(lineNo)
		p.current.touched = true
		p.current.rule.count = mode

	default:
		return p.endBlock()
	}

	return nil
}

// mark records the first line of the block for error reporting
func (p *parser) mark(lineNo int) {
	if p.current.startLine == 0 {
		p.current.startLine = lineNo
	}
}

// endBlock finalizes the rule under construction
func (p *parser) endBlock() error {
	cur := p.current
	p.current = pending{}

	if cur.hasRegexp {
		rule := cur.rule
		p.set.rules = append(p.set.rules, &rule)
		p.logger.Trace().
			Int("index", len(p.set.rules)-1).
			Str("pattern", rule.pattern).
			Int("colors", len(rule.colors)).
			Bool("skip", rule.skip).
			Str("count", rule.count.String()).
			Msg("Rule added")
		return nil
	}

	if cur.touched {
		return errors.Newf(errors.ErrConfigParse,
			"%s:%d: rule block has no regexp", p.sourceName(), cur.startLine).
			WithDetail("line", cur.startLine)
	}

	return nil
}

func (p *parser) sourceName() string {
	if p.opts.Source == "" {
		return "<input>"
	}
	return p.opts.Source
}
