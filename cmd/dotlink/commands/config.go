package commands

import (
	"fmt"

	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if template {
				return writeString(out, config.Template())
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			content, err := config.Dump(cfg)
			if err != nil {
				return err
			}
			if cfg.File != "" {
				if _, err := fmt.Fprintf(out, "# loaded from %s\n", cfg.File); err != nil {
					return err
				}
			}
			return writeString(out, content)
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	return cmd
}
