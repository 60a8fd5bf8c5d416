package main

import (
	"os"

	"github.com/arthur-debert/dotlink/cmd/dotlink/commands"
)

func main() {
	os.Exit(commands.Execute())
}
