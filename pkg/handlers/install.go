package handlers

import (
	"context"

	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/rs/zerolog"
)

// InstallHandler creates links and copies and runs install scripts.
type InstallHandler struct {
	opts   Options
	logger zerolog.Logger
}

// NewInstallHandler creates an InstallHandler.
func NewInstallHandler(opts Options) *InstallHandler {
	return &InstallHandler{
		opts:   opts,
		logger: logging.GetLogger("handlers.install"),
	}
}

func (h *InstallHandler) Command() types.CommandMode {
	return types.CommandInstall
}

func (h *InstallHandler) Resolve(target Target) (types.Action, bool, error) {
	force := h.opts.RunMode.Force

	switch target.Mode {
	case types.ModeInstallScript:
		if !target.Entry.Executable {
			h.logger.Debug().Str("script", target.Entry.Path).Msg("Install script is not executable, skipping")
			return types.Action{}, false, nil
		}
		return types.Action{
			Category: types.CategoryCommand,
			Detail:   types.DetailRun,
			Source:   target.Entry.Path,
		}, true, nil

	case types.ModeCopyOnInstall:
		switch {
		case !target.State.Exists():
			return newAction(types.CategoryNonLink, types.DetailCreate, target), true, nil
		case force:
			return newAction(types.CategoryNonLink, types.DetailOverwrite, target), true, nil
		default:
			return newAction(types.CategoryEntry, types.DetailExists, target), true, nil
		}

	case types.ModeLink, types.ModeOpaqueDirectory:
		switch {
		case !target.State.Exists():
			return newAction(types.CategoryLink, types.DetailCreate, target), true, nil
		case force:
			return newAction(types.CategoryLink, types.DetailOverwrite, target), true, nil
		default:
			return newAction(types.CategoryLink, types.DetailExists, target), true, nil
		}
	}

	// Recurse entries are descended by the walker, never resolved.
	return types.Action{}, false, nil
}

func (h *InstallHandler) Apply(ctx context.Context, target Target, action types.Action) error {
	m := h.opts.Mutator
	src, dest := target.Entry.Path, target.Destination

	switch action.Key() {
	case "command/run":
		return m.RunScript(ctx, src)
	case "non-link/create":
		return m.CopyFile(src, dest)
	case "non-link/overwrite":
		// Remove first so a symlink or directory at dest is replaced rather
		// than written through.
		if err := m.RemovePath(dest); err != nil {
			return err
		}
		return m.CopyFile(src, dest)
	case "link/create":
		return m.CreateSymlink(src, dest)
	case "link/overwrite":
		if err := m.RemovePath(dest); err != nil {
			return err
		}
		return m.CreateSymlink(src, dest)
	case "link/exists", "entry/exists":
		return nil
	}
	return unexpected(action, target)
}

var _ ModeHandler = (*InstallHandler)(nil)
