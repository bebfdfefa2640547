package cgrc

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/cgrc/internal/version"
	"github.com/arthur-debert/cgrc/pkg/cobrax/topics"
	"github.com/arthur-debert/cgrc/pkg/config"
	"github.com/arthur-debert/cgrc/pkg/confstore"
	"github.com/arthur-debert/cgrc/pkg/logging"
	"github.com/arthur-debert/cgrc/pkg/paths"
	"github.com/arthur-debert/cgrc/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help/*.md
var helpFiles embed.FS

// rootOptions holds the flags shared by the commands
type rootOptions struct {
	verbosity          int
	debug              bool
	confPath           bool
	color              string
	listLocations      bool
	locationUser       bool
	locationSystem     bool
	listConfigurations bool
}

// app is what every command needs once settings are loaded
type app struct {
	paths    paths.Paths
	settings *config.Settings
	store    *confstore.Store
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "cgrc [flags] <conf>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd, opts); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, a, opts, args)
		},
		ValidArgsFunction: confNamesCompletion,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, MsgFlagDebug)
	rootCmd.PersistentFlags().BoolVar(&opts.confPath, "conf-path", false, MsgFlagConfPath)
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", config.ColorAlways, MsgFlagColor)
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ColorAlways, config.ColorAuto, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp
	})

	// Listing flags
	rootCmd.Flags().BoolVar(&opts.listLocations, "list-locations", false, MsgFlagListLocations)
	rootCmd.Flags().BoolVar(&opts.locationUser, "location-user", false, MsgFlagLocationUser)
	rootCmd.Flags().BoolVar(&opts.locationSystem, "location-system", false, MsgFlagLocationSystem)
	rootCmd.Flags().BoolVar(&opts.listConfigurations, "list-configurations", false, MsgFlagListConfigurations)
	rootCmd.MarkFlagsMutuallyExclusive("list-locations", "location-user", "location-system", "list-configurations")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newShowCmd(a, opts))
	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if style.IsColorTerminal(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}
	if _, err := topics.InitializeWithOptions(rootCmd, helpTopics(), topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func helpTopics() fs.FS {
	sub, err := fs.Sub(helpFiles, "help")
	if err != nil {
		return nil
	}
	return sub
}

// load reads settings, sets up logging and builds the rule file store
func (a *app) load(cmd *cobra.Command, opts *rootOptions) error {
	a.paths = paths.New()

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("color") {
		overrides["output.color"] = opts.color
	}
	settings, err := config.LoadFrom(a.paths.SettingsFile(), overrides)
	if err != nil {
		return err
	}
	a.settings = settings

	verbosity := opts.verbosity
	if opts.debug && verbosity < 2 {
		verbosity = 2
	}
	logOpts := logging.Options{
		Verbosity: verbosity,
		LogFile:   settings.Logging.File,
		LogPath:   a.paths.LogFilePath(),
	}
	if w := cmd.ErrOrStderr(); w != io.Writer(os.Stderr) {
		logOpts.Writer = w
	}
	logging.SetupLoggerWithOptions(logOpts)

	a.store = newStore(a.paths, settings)
	return nil
}

// newStore applies the locations settings on top of the resolved paths
func newStore(p paths.Paths, settings *config.Settings) *confstore.Store {
	userDir := p.UserDir()
	if settings.Locations.User != "" {
		userDir = paths.ExpandHome(settings.Locations.User)
	}
	systemDir := p.SystemDir()
	if settings.Locations.System != "" {
		systemDir = paths.ExpandHome(settings.Locations.System)
	}
	extra := make([]string, 0, len(settings.Locations.Extra))
	for _, dir := range settings.Locations.Extra {
		extra = append(extra, paths.ExpandHome(dir))
	}

	return confstore.New(confstore.Options{
		UserDir:   userDir,
		ExtraDirs: extra,
		SystemDir: systemDir,
	})
}

// confNamesCompletion completes configuration names. It runs without the
// pre-run hook, so it loads settings itself and falls back to defaults.
func confNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if confPath, _ := cmd.Flags().GetBool("conf-path"); confPath {
		return nil, cobra.ShellCompDirectiveDefault
	}

	p := paths.New()
	settings, err := config.LoadFrom(p.SettingsFile(), nil)
	if err != nil {
		if settings, err = config.Default(); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}

	entries, _ := newStore(p, settings).List()
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		names = append(names, fmt.Sprintf("%s\t%s", e.Name, e.Description))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// outputFile returns w as a file when it is one, for terminal detection
func outputFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		PersistentPreRun:      func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// GenCompletion writes the completion script of rootCmd for shell
func GenCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unknown shell %q (supported: bash, zsh, fish, powershell)", shell)
	}
}
