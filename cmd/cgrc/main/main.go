package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cgrc/cmd/cgrc"
	"github.com/arthur-debert/cgrc/pkg/signals"
	"github.com/arthur-debert/cgrc/pkg/style"
)

func main() {
	// cgrc outlives the producer of its input
	signals.IgnoreInterrupt()

	rootCmd := cgrc.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewRenderer(style.IsColorTerminal(os.Stderr))
		_, _ = fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
