package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cgrc/cmd/cgrc"
	"github.com/arthur-debert/cgrc/internal/version"
)

func main() {
	rootCmd := cgrc.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CGRC",
		Section: "1",
		Source:  "cgrc " + version.Version,
		Manual:  "cgrc manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
