package core

import (
	"context"
	"io"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/handlers"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/mutate"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/google/uuid"
)

// RunOptions contains everything a single install or uninstall run needs.
type RunOptions struct {
	SourceRoot string
	HomeDir    string
	Mode       types.CommandMode
	RunMode    types.RunMode
	Reporter   types.Reporter

	// FS defaults to the OS filesystem, read-only under dry-run.
	FS types.FS

	Ignore        []string
	IncludeHidden bool

	// ScriptStdout and ScriptStderr receive install script output. Nil
	// means the process streams.
	ScriptStdout io.Writer
	ScriptStderr io.Writer
}

// RunResult describes what a run reported, in order.
type RunResult struct {
	RunID   string
	Mode    types.CommandMode
	RunMode types.RunMode
	Actions []types.Action

	// Counts is keyed by Action.Key().
	Counts map[string]int
}

// Count returns how many actions of the given category and detail were
// reported.
func (r *RunResult) Count(category types.Category, detail types.Detail) int {
	return r.Counts[types.Action{Category: category, Detail: detail}.Key()]
}

// Changed is the number of reported actions that mutate (or under dry-run
// would mutate) the filesystem.
func (r *RunResult) Changed() int {
	n := 0
	for _, a := range r.Actions {
		if a.Mutates() {
			n++
		}
	}
	return n
}

// recorder collects reported actions into the result and forwards them.
type recorder struct {
	next   types.Reporter
	result *RunResult
}

func (r *recorder) Report(action types.Action) {
	r.result.Actions = append(r.result.Actions, action)
	r.result.Counts[action.Key()]++
	r.next.Report(action)
}

func (r *recorder) Command(line string) {
	r.next.Command(line)
}

// Run reconciles the home directory against the source tree. The returned
// result is never nil; when err is non-nil it holds what was reported before
// the failure.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	runID := uuid.NewString()
	logger := logging.ForRun("core.run", runID)

	result := &RunResult{
		RunID:   runID,
		Mode:    opts.Mode,
		RunMode: opts.RunMode,
		Counts:  make(map[string]int),
	}

	sourceRoot, homeDir, err := resolveRoots(opts)
	if err != nil {
		return result, err
	}

	if err := paths.ValidatePatterns(opts.Ignore); err != nil {
		return result, err
	}

	fsys := opts.FS
	if fsys == nil {
		if opts.RunMode.DryRun {
			fsys = filesystem.NewReadOnlyOS()
		} else {
			fsys = filesystem.NewOS()
		}
	}

	info, err := fsys.Stat(sourceRoot)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrInvalidInput, "source root %s", sourceRoot).
			WithDetail(errors.DetailPath, sourceRoot)
	}
	if !info.IsDir() {
		return result, errors.Newf(errors.ErrInvalidInput, "source root %s is not a directory", sourceRoot).
			WithDetail(errors.DetailPath, sourceRoot)
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = types.NopReporter{}
	}
	rec := &recorder{next: reporter, result: result}

	mutator := mutate.New(fsys, opts.RunMode, sourceRoot, homeDir, rec.Command)
	if opts.ScriptStdout != nil {
		mutator.Stdout = opts.ScriptStdout
	}
	if opts.ScriptStderr != nil {
		mutator.Stderr = opts.ScriptStderr
	}

	handler, err := handlers.New(opts.Mode, handlers.Options{
		FS:         fsys,
		RunMode:    opts.RunMode,
		SourceRoot: sourceRoot,
		HomeDir:    homeDir,
		Mutator:    mutator,
	})
	if err != nil {
		return result, errors.Wrap(err, errors.ErrInvalidInput, "unknown command mode")
	}

	logger.Info().
		Str("mode", string(opts.Mode)).
		Str("sourceRoot", sourceRoot).
		Str("home", homeDir).
		Bool("dryRun", opts.RunMode.DryRun).
		Bool("force", opts.RunMode.Force).
		Msg("Starting run")
	done := logging.LogOperationStart(logger, string(opts.Mode))
	defer done()

	walker := &Walker{
		FS:            fsys,
		SourceRoot:    sourceRoot,
		HomeDir:       homeDir,
		Handler:       handler,
		Reporter:      rec,
		IncludeHidden: opts.IncludeHidden,
		Ignore:        opts.Ignore,
		logger:        logger,
	}

	if err := walker.Walk(ctx, sourceRoot); err != nil {
		logger.Error().Err(err).Int("reported", len(result.Actions)).Msg("Run aborted")
		return result, err
	}

	logger.Info().
		Int("reported", len(result.Actions)).
		Int("changed", result.Changed()).
		Msg("Run finished")
	return result, nil
}

func resolveRoots(opts RunOptions) (string, string, error) {
	homeDir := opts.HomeDir
	if homeDir == "" {
		var err error
		homeDir, err = paths.GetHomeDirectory()
		if err != nil {
			return "", "", errors.Wrap(err, errors.ErrInvalidInput, "cannot determine home directory")
		}
	}
	homeDir, err := filepath.Abs(homeDir)
	if err != nil {
		return "", "", errors.Wrap(err, errors.ErrInvalidInput, "invalid home directory")
	}

	if opts.SourceRoot == "" {
		return "", "", errors.New(errors.ErrInvalidInput, "source root is required")
	}
	sourceRoot, err := paths.Resolve(opts.SourceRoot, homeDir)
	if err != nil {
		return "", "", errors.Wrap(err, errors.ErrInvalidInput, "invalid source root")
	}
	return sourceRoot, homeDir, nil
}
