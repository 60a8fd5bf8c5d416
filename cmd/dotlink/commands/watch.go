package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/arthur-debert/dotlink/pkg/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			sourceRoot, _, err := resolveDirs(cfg)
			if err != nil {
				return err
			}

			w, err := watch.New(watch.Options{
				Root:          sourceRoot,
				Debounce:      debounce,
				IncludeHidden: cfg.Walk.IncludeHidden,
				Ignore:        cfg.Walk.Ignore,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgWatchStarted, sourceRoot)
			return w.Run(cmd.Context(), func(ctx context.Context) error {
				return reconcile(ctx, cfg, types.CommandInstall, cmd.OutOrStdout(), cmd.ErrOrStderr())
			})
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, MsgFlagDebounce)
	return cmd
}
