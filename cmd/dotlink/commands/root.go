package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/dotlink/internal/version"
	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// flagKeys maps persistent flags to the config keys they override.
var flagKeys = map[string]string{
	"source":         "source_root",
	"home":           "home",
	"dry-run":        "dry_run",
	"force":          "force",
	"show-commands":  "verbose",
	"output":         "output",
	"include-hidden": "walk.include_hidden",
	"ignore":         "walk.ignore",
}

// renderedError marks an error that was already written to the output
// stream by a structured reporter.
type renderedError struct {
	err error
}

func (e *renderedError) Error() string { return e.err.Error() }
func (e *renderedError) Unwrap() error { return e.err }

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	var rendered *renderedError
	if stderrors.As(err, &rendered) {
		return
	}
	reporter, rerr := ui.NewReporter(ui.FormatAuto, w, "")
	if rerr != nil {
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	_ = reporter.RenderError(err)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "dotlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetUsageTemplate(usageTemplate)

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	flags.String("config", "", MsgFlagConfig)
	flags.StringP("source", "s", "", MsgFlagSource)
	flags.String("home", "", MsgFlagHome)
	flags.BoolP("dry-run", "n", false, MsgFlagDryRun)
	flags.BoolP("force", "f", false, MsgFlagForce)
	flags.BoolP("show-commands", "c", false, MsgFlagShowCommands)
	flags.StringP("output", "o", config.OutputText, MsgFlagOutput)
	flags.Bool("include-hidden", false, MsgFlagIncludeHidden)
	flags.StringSlice("ignore", nil, MsgFlagIgnore)

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputJSON, config.OutputYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Commands:"},
		&cobra.Group{ID: "misc", Title: "Other Commands:"},
	)

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newConventionsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if tm, err := newTopicManager(); err == nil {
		tm.Install(rootCmd)
	} else {
		log.Debug().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadConfig builds the effective configuration for cmd. Only flags the
// user actually set override the file and the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	overrides := make(map[string]interface{})
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		switch name {
		case "ignore":
			values, err := flags.GetStringSlice(name)
			if err != nil {
				return nil, err
			}
			overrides[key] = values
		case "dry-run", "force", "show-commands", "include-hidden":
			value, err := flags.GetBool(name)
			if err != nil {
				return nil, err
			}
			overrides[key] = value
		default:
			overrides[key] = flag.Value.String()
		}
	}

	configFile, _ := flags.GetString("config")
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("source_root", cfg.SourceRoot).
		Str("home", cfg.Home).
		Bool("dry_run", cfg.DryRun).
		Bool("force", cfg.Force).
		Str("config_file", cfg.File).
		Msg("Configuration loaded")
	return cfg, nil
}

// resolveDirs returns the absolute source root and home directory cfg names.
func resolveDirs(cfg *config.Config) (sourceRoot, homeDir string, err error) {
	realHome, err := paths.GetHomeDirectory()
	if err != nil {
		return "", "", err
	}
	homeDir = realHome
	if cfg.Home != "" {
		if homeDir, err = paths.Resolve(cfg.Home, realHome); err != nil {
			return "", "", err
		}
	}
	if sourceRoot, err = paths.Resolve(cfg.SourceRoot, realHome); err != nil {
		return "", "", err
	}
	return sourceRoot, homeDir, nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
