package handlers

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/probe"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/rs/zerolog"
)

// UninstallHandler removes what install created. Install scripts have no
// undo and never reach it.
type UninstallHandler struct {
	opts   Options
	logger zerolog.Logger
}

// NewUninstallHandler creates an UninstallHandler.
func NewUninstallHandler(opts Options) *UninstallHandler {
	return &UninstallHandler{
		opts:   opts,
		logger: logging.GetLogger("handlers.uninstall"),
	}
}

func (h *UninstallHandler) Command() types.CommandMode {
	return types.CommandUninstall
}

func (h *UninstallHandler) Resolve(target Target) (types.Action, bool, error) {
	force := h.opts.RunMode.Force
	state := target.State

	switch target.Mode {
	case types.ModeCopyOnInstall:
		if !state.Exists() {
			return newAction(types.CategoryNonLink, types.DetailAbsent, target), true, nil
		}
		if force {
			return newAction(types.CategoryNonLink, types.DetailDelete, target), true, nil
		}
		if state.Kind == types.StateRegularFile {
			equal, err := probe.ContentEqual(h.opts.FS, target.Entry.Path, target.Destination)
			if err != nil {
				return types.Action{}, false, err
			}
			if equal {
				return newAction(types.CategoryNonLink, types.DetailDelete, target), true, nil
			}
		}
		return newAction(types.CategoryNonLink, types.DetailDifferent, target), true, nil

	case types.ModeLink, types.ModeOpaqueDirectory:
		switch {
		case state.IsSymlink():
			// Any symlink is removed, wherever it points.
			h.noteForeignLink(target)
			return newAction(types.CategoryLink, types.DetailDelete, target), true, nil
		case !state.Exists():
			return types.Action{}, false, nil
		case force:
			return newAction(types.CategoryEntry, types.DetailPurge, target), true, nil
		default:
			return newAction(types.CategoryEntry, types.DetailUnlinked, target), true, nil
		}
	}

	return types.Action{}, false, nil
}

func (h *UninstallHandler) Apply(_ context.Context, target Target, action types.Action) error {
	switch action.Key() {
	case "non-link/delete", "link/delete", "entry/purge":
		return h.opts.Mutator.RemovePath(target.Destination)
	case "non-link/absent", "non-link/different", "entry/unlinked":
		return nil
	}
	return unexpected(action, target)
}

func (h *UninstallHandler) noteForeignLink(target Target) {
	linkTarget := target.State.Target
	if !filepath.IsAbs(linkTarget) {
		linkTarget = filepath.Join(filepath.Dir(target.Destination), linkTarget)
	}
	if linkTarget == target.Entry.Path {
		return
	}
	h.logger.Debug().
		Str("destination", target.Destination).
		Str("linkTarget", target.State.Target).
		Bool("insideSource", paths.ContainsPath(h.opts.SourceRoot, linkTarget)).
		Msg("Removing symlink that does not point at its source entry")
}

var _ ModeHandler = (*UninstallHandler)(nil)
