package cgrc

import (
	"fmt"

	"github.com/arthur-debert/cgrc/pkg/confstore"
	"github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/arthur-debert/cgrc/pkg/installer"
	"github.com/arthur-debert/cgrc/pkg/style"
	"github.com/spf13/cobra"
)

func newInstallCmd(a *app) *cobra.Command {
	var (
		force  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "install [names...]",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return confstore.Embedded(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, ok := a.store.Dir(confstore.LocationUser)
			if !ok {
				return errors.Newf(errors.ErrNotFound, MsgErrNoLocation, confstore.LocationUser)
			}

			results, err := installer.Install(cmd.Context(), args, installer.Options{
				Dir:    dir,
				Force:  force,
				DryRun: dryRun,
			})

			out := cmd.OutOrStdout()
			color := style.IsColorTerminal(outputFile(out))
			if len(results) > 0 {
				renderer := style.NewRenderer(color)
				if _, werr := fmt.Fprintln(out, renderer.RenderInstall(results)); werr != nil {
					return werr
				}
			}
			if err != nil {
				return err
			}
			if dryRun {
				_, _ = fmt.Fprintln(out, style.Format(MsgDryRunNotice, color))
			}

			failed := 0
			for _, res := range results {
				if res.Status == installer.StatusFailed {
					failed++
				}
			}
			if failed > 0 {
				return errors.Newf(errors.ErrInstall, MsgErrInstallFailed, failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}
