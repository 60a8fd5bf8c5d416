package types

import "fmt"

// RunMode holds the process-wide flags of one invocation. It is passed by
// value to every component that needs it and never mutated.
type RunMode struct {
	// DryRun suppresses every mutation. Decisions are still computed and
	// reported.
	DryRun bool
	// Force allows overwriting or removing existing non-matching state.
	Force bool
	// Verbose asks mutators to echo the literal commands they run.
	Verbose bool
}

// CommandMode selects the state machine the resolver runs.
type CommandMode string

const (
	CommandInstall   CommandMode = "install"
	CommandUninstall CommandMode = "uninstall"
)

// ParseCommandMode validates a command mode name.
func ParseCommandMode(s string) (CommandMode, error) {
	switch CommandMode(s) {
	case CommandInstall, CommandUninstall:
		return CommandMode(s), nil
	}
	return "", fmt.Errorf("unknown command mode %q", s)
}
