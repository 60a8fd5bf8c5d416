package handlers

import (
	"context"
	"fmt"

	"github.com/arthur-debert/dotlink/pkg/mutate"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Target bundles what a handler needs to know about one entry.
type Target struct {
	Entry       types.SourceEntry
	Mode        types.HandlingMode
	Destination string
	State       types.DestinationState
}

// ModeHandler is the per-command strategy the tree walker holds.
type ModeHandler interface {
	// Command is the command mode this handler implements.
	Command() types.CommandMode

	// Resolve decides what to do with target. When ok is false the entry is
	// silently skipped: nothing is reported and nothing is applied.
	Resolve(target Target) (action types.Action, ok bool, err error)

	// Apply performs the mutations behind action. It must only be called
	// with an action returned by Resolve for the same target.
	Apply(ctx context.Context, target Target, action types.Action) error
}

// Options configures a handler.
type Options struct {
	FS         types.FS
	RunMode    types.RunMode
	SourceRoot string
	HomeDir    string
	Mutator    *mutate.Mutator
}

// New returns the handler for command.
func New(command types.CommandMode, opts Options) (ModeHandler, error) {
	switch command {
	case types.CommandInstall:
		return NewInstallHandler(opts), nil
	case types.CommandUninstall:
		return NewUninstallHandler(opts), nil
	}
	return nil, fmt.Errorf("no handler for command %q", command)
}

func newAction(category types.Category, detail types.Detail, target Target) types.Action {
	return types.Action{
		Category:    category,
		Detail:      detail,
		Source:      target.Entry.Path,
		Destination: target.Destination,
	}
}

func unexpected(action types.Action, target Target) error {
	return fmt.Errorf("cannot apply %s to %s (%s)", action.Key(), target.Entry.Path, target.Mode)
}
