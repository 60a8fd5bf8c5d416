package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// GenCompletion writes the completion script for shell.
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
