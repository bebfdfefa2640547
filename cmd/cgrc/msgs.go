package cgrc

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Colorize command output with rule files"
	MsgShowShort       = "Print the parsed rules of a configuration"
	MsgInstallShort    = "Copy built-in configurations into the user location"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages, in style markup
	MsgDryRunNotice = "\n[warning]DRY RUN MODE[/warning] - No changes were made"

	// Error messages
	MsgErrNoConf        = "no configuration given (see --list-configurations)"
	MsgErrInstallFailed = "%d of %d rule files could not be installed"
	MsgErrNoLocation    = "no %s location configured"

	// Flag descriptions
	MsgFlagVerbose            = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDebug              = "Report how every line is matched on stderr"
	MsgFlagConfPath           = "Treat the configuration argument as a file path"
	MsgFlagColor              = "When to write colors: always, auto or never"
	MsgFlagListLocations      = "Show the locations searched for configurations"
	MsgFlagLocationUser       = "Print the user location"
	MsgFlagLocationSystem     = "Print the system location"
	MsgFlagListConfigurations = "List available configurations"
	MsgFlagOutput             = "Output format: conf, yaml, json, toml or xml"
	MsgFlagForce              = "Overwrite configurations that already exist"
	MsgFlagDryRun             = "Preview changes without executing them"

	// Version output
	MsgVersionFormat = "cgrc version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
