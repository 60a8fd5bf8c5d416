// Command dotlink-completions writes a shell completion script to stdout.
// Release packaging runs it once per supported shell.
package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotlink/cmd/dotlink/commands"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell>\n", os.Args[0])
		os.Exit(1)
	}

	shell := os.Args[1]
	if err := commands.GenCompletion(commands.NewRootCmd(), shell, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
		os.Exit(1)
	}
}
