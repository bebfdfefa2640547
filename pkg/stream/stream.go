// Package stream pumps lines from a reader through a colorizer into a writer.
package stream

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/cgrc/pkg/colorizer"
	"github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/arthur-debert/cgrc/pkg/logging"
	"github.com/arthur-debert/cgrc/pkg/rules"
)

// LineColorizer turns one input line into one output line. A false result
// drops the line.
type LineColorizer interface {
	Line(line string) (string, bool)
}

// Stats counts what happened to the input
type Stats struct {
	Lines      int // lines read
	Written    int // lines written
	Suppressed int // lines dropped by skip rules
	Skipped    int // lines dropped because they were not valid UTF-8
}

// Passthrough honours skip rules but writes lines without escape sequences
func Passthrough(rs *rules.RuleSet, opts ...colorizer.Option) LineColorizer {
	return colorizer.New(rs, append(opts, colorizer.WithoutEscapes())...)
}

// Run reads r line by line until EOF. Every line is written, followed by a
// newline, before the next one is read. A last line without a newline is
// still processed.
func Run(r io.Reader, w io.Writer, c LineColorizer) (Stats, error) {
	logger := logging.GetLogger("stream")
	reader := bufio.NewReader(r)

	var stats Stats
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return stats, errors.Wrapf(err, errors.ErrInputRead,
				"failed to read input after %d lines", stats.Lines)
		}

		if line != "" {
			stats.Lines++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if !utf8.ValidString(line) {
				stats.Skipped++
				logger.Warn().Int("line", stats.Lines).Msg("Skipping line with invalid UTF-8")
			} else if out, ok := c.Line(line); !ok {
				stats.Suppressed++
			} else {
				if _, werr := io.WriteString(w, out+"\n"); werr != nil {
					return stats, errors.Wrap(werr, errors.ErrFileWrite, "failed to write output")
				}
				stats.Written++
			}
		}

		if err == io.EOF {
			break
		}
	}

	logger.Debug().
		Int("lines", stats.Lines).
		Int("written", stats.Written).
		Int("suppressed", stats.Suppressed).
		Int("skipped", stats.Skipped).
		Msg("Input drained")

	return stats, nil
}
