// Package mutate holds the four effectful primitives of the engine. Every
// primitive honours dry-run by doing nothing and returning nil, so the
// decision and reporting pipeline is identical with and without it.
package mutate

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/constants"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultDirMode is used for parent directories created on demand.
const DefaultDirMode = 0755

// Mutator applies changes to the destination tree.
type Mutator struct {
	FS      types.FS
	RunMode types.RunMode
	// Echo receives the shell equivalent of each mutation when
	// RunMode.Verbose is set. May be nil.
	Echo func(line string)

	// SourceRoot and HomeDir are exported to install scripts and used to
	// shorten paths in diagnostics.
	SourceRoot string
	HomeDir    string

	// Stdout and Stderr receive install script output. They default to the
	// process streams.
	Stdout io.Writer
	Stderr io.Writer

	logger zerolog.Logger
}

// New creates a Mutator bound to fsys and runMode.
func New(fsys types.FS, runMode types.RunMode, sourceRoot, homeDir string, echo func(string)) *Mutator {
	return &Mutator{
		FS:         fsys,
		RunMode:    runMode,
		Echo:       echo,
		SourceRoot: sourceRoot,
		HomeDir:    homeDir,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		logger:     logging.GetLogger("mutate"),
	}
}

func (m *Mutator) echo(format string, args ...interface{}) {
	if !m.RunMode.Verbose || m.Echo == nil {
		return
	}
	m.Echo(fmt.Sprintf(format, args...))
}

// CreateSymlink creates missing parents of dest, then a symlink at dest
// pointing at the absolute source path.
func (m *Mutator) CreateSymlink(source, dest string) error {
	parent := filepath.Dir(dest)
	m.echo("mkdir -p %s", quote(parent))
	m.echo("ln -s %s %s", quote(source), quote(dest))
	if m.RunMode.DryRun {
		return nil
	}

	if err := m.FS.MkdirAll(parent, DefaultDirMode); err != nil {
		return errors.IOError(err, "create directory", parent)
	}
	if err := m.FS.Symlink(source, dest); err != nil {
		return errors.IOError(err, "create symlink", dest)
	}
	m.logger.Debug().Str("source", source).Str("dest", dest).Msg("Created symlink")
	return nil
}

// RemovePath removes a file, a symlink, or a directory tree.
func (m *Mutator) RemovePath(path string) error {
	m.echo("rm -rf %s", quote(path))
	if m.RunMode.DryRun {
		return nil
	}

	if err := m.FS.RemoveAll(path); err != nil {
		return errors.IOError(err, "remove", path)
	}
	m.logger.Debug().Str("path", path).Msg("Removed path")
	return nil
}

// CopyFile creates missing parents of dest and copies source byte for byte,
// keeping its permission bits. An existing regular file at dest is
// truncated.
func (m *Mutator) CopyFile(source, dest string) error {
	parent := filepath.Dir(dest)
	m.echo("mkdir -p %s", quote(parent))
	m.echo("cp -p %s %s", quote(source), quote(dest))
	if m.RunMode.DryRun {
		return nil
	}

	info, err := m.FS.Stat(source)
	if err != nil {
		return errors.IOError(err, "stat", source)
	}
	if err := m.FS.MkdirAll(parent, DefaultDirMode); err != nil {
		return errors.IOError(err, "create directory", parent)
	}

	in, err := m.FS.Open(source)
	if err != nil {
		return errors.IOError(err, "open", source)
	}
	defer func() {
		_ = in.Close()
	}()

	perm := info.Mode().Perm()
	out, err := m.FS.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.IOError(err, "open", dest)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.IOError(err, "copy", dest)
	}
	if err := out.Close(); err != nil {
		return errors.IOError(err, "close", dest)
	}
	// OpenFile only applies perm on creation and is subject to the umask.
	if err := m.FS.Chmod(dest, perm); err != nil {
		return errors.IOError(err, "chmod", dest)
	}
	m.logger.Debug().Str("source", source).Str("dest", dest).Msg("Copied file")
	return nil
}

// RunScript executes an install script and waits for it. The child inherits
// the environment, runs in the script's directory, and its output is
// streamed through. There is no timeout: a script that never exits blocks
// the run. A non-zero exit is returned as a ScriptFailure.
func (m *Mutator) RunScript(ctx context.Context, path string) error {
	m.echo("%s", quote(path))
	if m.RunMode.DryRun {
		return nil
	}

	logging.LogCommand(path, nil)
	cmd := exec.CommandContext(ctx, path)
	cmd.Dir = filepath.Dir(path)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("%s=%s", constants.EnvScriptSourceRoot, m.SourceRoot),
		fmt.Sprintf("%s=%s", constants.EnvScriptHome, m.HomeDir),
	)
	cmd.Stdout = m.Stdout
	cmd.Stderr = m.Stderr

	err := cmd.Run()
	if err == nil {
		m.logger.Info().Str("script", path).Msg("Install script finished")
		return nil
	}

	display := paths.FormatPath(path, m.HomeDir)
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		m.logger.Error().
			Str("script", path).
			Int("exitCode", exitErr.ExitCode()).
			Msg("Install script failed")
		return errors.ScriptFailure(err, display, exitErr.ExitCode())
	}
	// The script could not be started at all.
	return errors.IOError(err, "execute", path)
}

// quote renders a path the way a shell would need it.
func quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`*?[]{}()<>|&;#~!") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
