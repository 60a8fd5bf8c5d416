package commands

import (
	"context"
	"io"

	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/core"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/arthur-debert/dotlink/pkg/ui"
	"github.com/spf13/cobra"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		Example: `  dotlink install
  dotlink install -s ~/dotfiles --dry-run --show-commands
  dotlink install --force -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcileCmd(cmd, types.CommandInstall)
		},
	}
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   MsgUninstallShort,
		Long:    MsgUninstallLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		Example: `  dotlink uninstall --dry-run
  dotlink uninstall --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcileCmd(cmd, types.CommandUninstall)
		},
	}
}

func runReconcileCmd(cmd *cobra.Command, mode types.CommandMode) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return reconcile(cmd.Context(), cfg, mode, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// reconcile performs one run and renders it to out. Errors rendered by a
// structured reporter come back as *renderedError.
func reconcile(ctx context.Context, cfg *config.Config, mode types.CommandMode, out, errOut io.Writer) error {
	logger := logging.GetLogger("cmd." + string(mode))
	done := logging.LogOperationStart(logger, string(mode))
	defer done()

	sourceRoot, homeDir, err := resolveDirs(cfg)
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	reporter, err := ui.NewReporter(format, out, homeDir)
	if err != nil {
		return err
	}
	structured := format.Structured()

	opts := core.RunOptions{
		SourceRoot:    sourceRoot,
		HomeDir:       homeDir,
		Mode:          mode,
		RunMode:       cfg.RunMode(),
		Reporter:      reporter,
		Ignore:        cfg.Walk.Ignore,
		IncludeHidden: cfg.Walk.IncludeHidden,
	}
	if structured {
		// Keep stdout parseable.
		opts.ScriptStdout = errOut
	}

	logger.Info().
		Str("source", sourceRoot).
		Str("home", homeDir).
		Bool("dry_run", cfg.DryRun).
		Bool("force", cfg.Force).
		Msg("Starting run")

	result, err := core.Run(ctx, opts)
	if err != nil {
		if structured {
			_ = reporter.RenderError(err)
			return &renderedError{err: err}
		}
		return err
	}

	logger.Info().
		Str("run_id", result.RunID).
		Int("actions", len(result.Actions)).
		Int("changed", result.Changed()).
		Msg("Run completed")
	return reporter.Finish(result)
}
