package cgrc

import (
	"github.com/arthur-debert/cgrc/pkg/export"
	"github.com/arthur-debert/cgrc/pkg/style"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app, opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:               "show <conf>",
		Short:             MsgShowShort,
		Long:              MsgShowLong,
		Example:           MsgShowExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: confNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(output)
			if err != nil {
				return err
			}

			rs, _, err := a.store.LoadRuleSet(args[0], opts.confPath, a.settings.Regex.MatchTimeout)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return export.Write(out, rs, format, export.Options{
				Color: style.IsColorTerminal(outputFile(out)),
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(export.FormatConf), MsgFlagOutput)
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(export.Formats))
		for i, f := range export.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
