package cgrc

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/cgrc/pkg/colorizer"
	"github.com/arthur-debert/cgrc/pkg/confstore"
	"github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/arthur-debert/cgrc/pkg/logging"
	"github.com/arthur-debert/cgrc/pkg/rules"
	"github.com/arthur-debert/cgrc/pkg/signals"
	"github.com/arthur-debert/cgrc/pkg/stream"
	"github.com/arthur-debert/cgrc/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runRoot(cmd *cobra.Command, a *app, opts *rootOptions, args []string) error {
	out := cmd.OutOrStdout()
	renderer := style.NewRenderer(style.IsColorTerminal(outputFile(out)))

	switch {
	case opts.listLocations:
		_, err := fmt.Fprintln(out, renderer.RenderLocations(a.store.Dirs()))
		return err
	case opts.locationUser:
		return printLocation(out, a.store, confstore.LocationUser)
	case opts.locationSystem:
		return printLocation(out, a.store, confstore.LocationSystem)
	case opts.listConfigurations:
		entries, err := a.store.List()
		if err != nil {
			// Unreadable files are still listed
			log.Warn().Err(err).Msg("Some configurations could not be read")
		}
		_, err = fmt.Fprintln(out, renderer.RenderConfList(entries))
		return err
	}

	if len(args) == 0 {
		return errors.New(errors.ErrInvalidInput, MsgErrNoConf)
	}

	rs, entry, err := a.store.LoadRuleSet(args[0], opts.confPath, a.settings.Regex.MatchTimeout)
	if err != nil {
		return err
	}
	log.Info().
		Str("name", entry.Name).
		Str("location", string(entry.Location)).
		Str("path", entry.Path).
		Int("rules", rs.Len()).
		Msg("Configuration loaded")

	color := style.ColorEnabled(a.settings.Output.Color, outputFile(out))
	_, err = colorize(cmd.Context(), cmd.InOrStdin(), out, rs, opts.debug, color)
	return err
}

// colorize streams in to out through rs. SIGINT is ignored for the whole
// run; with debug on, received interrupts are also logged.
func colorize(ctx context.Context, in io.Reader, out io.Writer, rs *rules.RuleSet, debug, color bool) (stream.Stats, error) {
	logger := logging.GetLogger("cgrc")
	signals.IgnoreInterrupt()

	if debug {
		stop := signals.WatchInterrupts(ctx, nil)
		defer stop()
	}

	colorOpts := []colorizer.Option{colorizer.WithDebug(debug)}
	var c stream.LineColorizer
	if color {
		c = colorizer.New(rs, colorOpts...)
	} else {
		c = stream.Passthrough(rs, colorOpts...)
	}

	done := logging.LogOperationStart(logger, "colorize")
	stats, err := stream.Run(in, out, c)
	done()

	logger.Info().
		Int("lines", stats.Lines).
		Int("written", stats.Written).
		Int("suppressed", stats.Suppressed).
		Int("skipped", stats.Skipped).
		Msg("Input finished")
	return stats, err
}

func printLocation(out io.Writer, store *confstore.Store, loc confstore.Location) error {
	dir, ok := store.Dir(loc)
	if !ok {
		return errors.Newf(errors.ErrNotFound, MsgErrNoLocation, loc)
	}
	_, err := fmt.Fprintln(out, dir)
	return err
}
