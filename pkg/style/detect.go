package style

import (
	"os"

	"github.com/arthur-debert/cgrc/pkg/config"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled decides whether escape sequences should be written to f for
// an output.color mode. Unknown modes behave like auto.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return IsColorTerminal(f)
}

// IsColorTerminal reports whether f is a terminal that shows colors
func IsColorTerminal(f *os.File) bool {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check if we're being piped or redirected
	if f == nil || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return false
	}

	// Check terminal color support
	return termenv.ColorProfile() != termenv.Ascii
}
