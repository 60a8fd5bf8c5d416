package core

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/classify"
	"github.com/arthur-debert/dotlink/pkg/constants"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/handlers"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/probe"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/rs/zerolog"
)

// Walker visits a source tree and feeds every entry through a handler.
type Walker struct {
	FS         types.FS
	SourceRoot string
	HomeDir    string
	Handler    handlers.ModeHandler
	Reporter   types.Reporter

	// IncludeHidden makes dot-prefixed names visible to the walk. The
	// no-recurse marker is never visited.
	IncludeHidden bool

	// Ignore holds base-name patterns (filepath.Match syntax) that are
	// skipped wherever they appear.
	Ignore []string

	logger zerolog.Logger
}

// Walk processes every entry directly inside dir, recursing into
// directories that do not carry the no-recurse marker.
func (w *Walker) Walk(ctx context.Context, dir string) error {
	files, script, dirs, err := w.list(dir)
	if err != nil {
		return err
	}

	w.logger.Debug().
		Str("dir", dir).
		Int("files", len(files)).
		Int("dirs", len(dirs)).
		Bool("script", script != "").
		Msg("Walking directory")

	for _, path := range files {
		if err := w.visit(ctx, path); err != nil {
			return err
		}
	}
	if script != "" {
		if err := w.visit(ctx, script); err != nil {
			return err
		}
	}
	for _, path := range dirs {
		if err := w.visit(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

// list reads dir and splits the visible entries into sorted non-directories,
// the install script (empty when absent or not applicable) and sorted
// directories.
func (w *Walker) list(dir string) (files []string, script string, dirs []string, err error) {
	entries, err := w.FS.ReadDir(dir)
	if err != nil {
		return nil, "", nil, errors.IOError(err, "read directory", dir)
	}

	for _, e := range entries {
		name := e.Name()
		if w.skip(name) {
			continue
		}
		path := filepath.Join(dir, name)

		isDir, err := w.isDir(path)
		if err != nil {
			return nil, "", nil, err
		}

		switch {
		case isDir:
			dirs = append(dirs, path)
		case name == constants.InstallScriptName:
			if w.Handler.Command() == types.CommandInstall {
				script = path
			}
		default:
			files = append(files, path)
		}
	}

	sort.Strings(files)
	sort.Strings(dirs)
	return files, script, dirs, nil
}

// isDir follows symlinks, so a link to a directory inside the source tree is
// grouped (and classified) as a directory.
func (w *Walker) isDir(path string) (bool, error) {
	info, err := w.FS.Stat(path)
	if err != nil {
		return false, errors.IOError(err, "stat", path)
	}
	return info.IsDir(), nil
}

func (w *Walker) skip(name string) bool {
	if name == constants.NoRecurseMarker {
		return true
	}
	if !w.IncludeHidden && strings.HasPrefix(name, ".") {
		return true
	}
	return paths.MatchAny(w.Ignore, name)
}

func (w *Walker) visit(ctx context.Context, path string) error {
	entry, err := classify.NewSourceEntry(w.FS, w.SourceRoot, path)
	if err != nil {
		return err
	}
	mode := classify.Classify(entry)

	if mode == types.ModeRecurse {
		return w.Walk(ctx, path)
	}

	target := handlers.Target{Entry: entry, Mode: mode}
	if mode != types.ModeInstallScript {
		dest, err := paths.DestinationForEntry(entry, mode, w.SourceRoot, w.HomeDir)
		if err != nil {
			return err
		}
		state, err := probe.Probe(w.FS, dest)
		if err != nil {
			return err
		}
		target.Destination = dest
		target.State = state
	}

	action, ok, err := w.Handler.Resolve(target)
	if err != nil {
		return err
	}
	if !ok {
		w.logger.Trace().Str("entry", entry.RelPath).Str("mode", mode.String()).Msg("Nothing to do")
		return nil
	}

	w.logger.Debug().
		Str("entry", entry.RelPath).
		Str("mode", mode.String()).
		Str("state", target.State.String()).
		Str("action", action.Key()).
		Msg("Resolved entry")

	w.Reporter.Report(action)
	return w.Handler.Apply(ctx, target, action)
}
