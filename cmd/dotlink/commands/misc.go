package commands

import (
	"github.com/arthur-debert/dotlink/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeString(cmd.OutOrStdout(), version.Info())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "completion [bash|zsh|fish|powershell]",
		Short:   MsgCompletionShort,
		GroupID: "misc",
		Long: `To load completions:

Bash:
  $ source <(dotlink completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ dotlink completion bash > /etc/bash_completion.d/dotlink
  # macOS:
  $ dotlink completion bash > /usr/local/etc/bash_completion.d/dotlink

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ dotlink completion zsh > "${fpath[1]}/_dotlink"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ dotlink completion fish | source
  # To load completions for each session, execute once:
  $ dotlink completion fish > ~/.config/fish/completions/dotlink.fish

PowerShell:
  PS> dotlink completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doc.GenManTree(cmd.Root(), ManHeader(), dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)
	return cmd
}

// ManHeader is the header shared by every generated man page.
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "DOTLINK",
		Section: "1",
		Source:  "dotlink " + version.Version,
		Manual:  "dotlink manual",
	}
}
