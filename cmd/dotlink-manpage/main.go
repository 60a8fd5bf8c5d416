// Command dotlink-manpage writes the dotlink(1) man page to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotlink/cmd/dotlink/commands"
)

func main() {
	if err := doc.GenMan(commands.NewRootCmd(), commands.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
