package commands

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Link a dotfiles tree into your home directory"
	MsgInstallShort     = "Create links, copies and run install scripts"
	MsgUninstallShort   = "Remove what install created"
	MsgWatchShort       = "Install, then re-install whenever the source tree changes"
	MsgConfigShort      = "Print the effective configuration"
	MsgConventionsShort = "Explain the source tree layout conventions"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate man pages"

	// Flag descriptions
	MsgFlagVerbose       = "Increase log verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Config file (default $XDG_CONFIG_HOME/dotlink/config.toml)"
	MsgFlagSource        = "Dotfiles source directory (default: current directory)"
	MsgFlagHome          = "Destination directory (default: your home directory)"
	MsgFlagDryRun        = "Report what would change without changing anything"
	MsgFlagForce         = "Replace existing entries on install, remove them on uninstall"
	MsgFlagShowCommands  = "Print the shell equivalent of every change"
	MsgFlagOutput        = "Output format: text, json or yaml"
	MsgFlagIncludeHidden = "Also visit names starting with a dot"
	MsgFlagIgnore        = "Skip entries whose name matches this pattern (repeatable)"
	MsgFlagDebounce      = "Quiet period before re-running after a change"
	MsgFlagTemplate      = "Print a commented config file template instead"
	MsgFlagManDir        = "Directory to write man pages to"

	// Status messages
	MsgWatchStarted = "Watching %s for changes (Ctrl-C to stop)\n"
)

const (
	MsgRootLong = `dotlink reconciles a tree of dotfiles against your home directory.

Every top-level entry of the source tree maps to a dot-prefixed path in your
home: tmux.conf becomes ~/.tmux.conf and rbenv/default-gems becomes
~/.rbenv/default-gems. Runs are stateless and idempotent: each one looks at
what is on disk and only changes what differs.

See "dotlink help conventions" for the layout rules.`

	MsgInstallLong = `Install walks the source tree and, for every entry:

  - links it when the destination is absent
  - leaves it alone when something already exists (unless --force)
  - copies files named *._no-link instead of linking them
  - runs executable _install.sh scripts after the files next to them

Use --dry-run to see what would happen and --show-commands to see how.`

	MsgUninstallLong = `Uninstall walks the same tree and removes what install created:

  - any symlink at a destination is removed
  - copies are removed when they still match their source
  - real files and directories are left alone unless --force

Install scripts are never run or undone.`

	MsgWatchLong = `Watch runs install once, then keeps watching the source tree and runs it
again after every burst of changes. Runs never overlap. A failing run is
logged and watching continues.`

	MsgConfigLong = `Config prints the configuration dotlink would use, after merging the
built-in defaults, the config file, DOTLINK_* environment variables and
the flags given on the command line.`
)
