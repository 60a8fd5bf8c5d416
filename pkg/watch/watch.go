// Package watch re-runs a reconciliation whenever the source tree changes.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/dotlink/pkg/constants"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long the tree must stay quiet before a re-run.
const DefaultDebounce = 300 * time.Millisecond

// RunFunc performs one reconciliation.
type RunFunc func(ctx context.Context) error

// Options configures a Watcher.
type Options struct {
	Root     string
	Debounce time.Duration

	// IncludeHidden and Ignore mirror the walk settings, so changes to
	// entries the run would skip do not trigger it.
	IncludeHidden bool
	Ignore        []string
}

// Watcher watches every directory of a source tree.
type Watcher struct {
	opts   Options
	fw     *fsnotify.Watcher
	logger zerolog.Logger
}

// New creates a watcher for opts.Root.
func New(opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid source root %s", opts.Root)
	}
	opts.Root = root
	if err := paths.ValidatePatterns(opts.Ignore); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create watcher")
	}

	return &Watcher{
		opts:   opts,
		fw:     fw,
		logger: logging.GetLogger("watch"),
	}, nil
}

// Run calls run once, then again after every burst of changes, until ctx is
// done. Calls never overlap: events arriving during a run are coalesced into
// the next one. A failing run is logged and watching continues.
func (w *Watcher) Run(ctx context.Context, run RunFunc) error {
	defer func() {
		_ = w.fw.Close()
	}()

	if err := w.addRecursive(w.opts.Root); err != nil {
		return err
	}
	w.logger.Info().Str("root", w.opts.Root).Msg("Watching source tree")

	w.runOnce(ctx, run)

	timer := time.NewTimer(w.opts.Debounce)
	timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info().Msg("Watcher stopping")
			return nil

		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				w.watchIfDir(event.Name)
			}
			if !w.relevant(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}
			w.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("Source changed")
			timer.Reset(w.opts.Debounce)
			pending = true

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("Watcher error")

		case <-timer.C:
			if pending {
				pending = false
				w.runOnce(ctx, run)
			}
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context, run RunFunc) {
	if err := run(ctx); err != nil {
		w.logger.Error().Err(err).Msg("Run failed, waiting for further changes")
	}
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.IOError(err, "watch", path)
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && !w.relevant(path) {
			return filepath.SkipDir
		}
		if err := w.fw.Add(path); err != nil {
			return errors.IOError(err, "watch", path)
		}
		return nil
	})
}

// watchIfDir starts watching a directory created after the watch began.
func (w *Watcher) watchIfDir(path string) {
	if !w.relevant(path) {
		return
	}
	if err := w.addRecursive(path); err != nil {
		// Already gone again, or not a directory.
		w.logger.Trace().Err(err).Str("path", path).Msg("Not watching new path")
	}
}

// relevant reports whether a change at path can affect a run. The
// no-recurse marker is relevant even though it is hidden.
func (w *Watcher) relevant(path string) bool {
	rel, err := filepath.Rel(w.opts.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	if rel == "." {
		return true
	}

	parts := strings.Split(rel, string(filepath.Separator))
	for i, name := range parts {
		last := i == len(parts)-1
		if last && name == constants.NoRecurseMarker {
			return true
		}
		if !w.opts.IncludeHidden && strings.HasPrefix(name, ".") {
			return false
		}
		if paths.MatchAny(w.opts.Ignore, name) {
			return false
		}
	}
	return true
}
