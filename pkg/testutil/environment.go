package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// TestEnvironment provides a dotfiles root and a home directory on the real
// filesystem, both inside a per-test temporary directory.
type TestEnvironment struct {
	DotfilesRoot string
	HomeDir      string
	StateDir     string

	FS types.FS

	t *testing.T
}

// NewTestEnvironment creates the directories and points HOME, XDG_STATE_HOME
// and XDG_CONFIG_HOME inside them so nothing leaks into the developer's home.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	base := t.TempDir()
	// Resolve so paths compare equal on systems where the temp dir is itself
	// behind a symlink.
	if resolved, err := filepath.EvalSymlinks(base); err == nil {
		base = resolved
	}

	env := &TestEnvironment{
		DotfilesRoot: filepath.Join(base, "dotfiles"),
		HomeDir:      filepath.Join(base, "home"),
		StateDir:     filepath.Join(base, "state"),
		FS:           filesystem.NewOS(),
		t:            t,
	}

	for _, dir := range []string{env.DotfilesRoot, env.HomeDir, env.StateDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))

	return env
}

// WithFileTree creates tree under the dotfiles root.
func (env *TestEnvironment) WithFileTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	CreateFileTree(env.t, env.DotfilesRoot, tree)
	return env
}

// WithHomeTree creates tree under the home directory.
func (env *TestEnvironment) WithHomeTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	CreateFileTree(env.t, env.HomeDir, tree)
	return env
}

// Source returns the absolute path of rel inside the dotfiles root.
func (env *TestEnvironment) Source(rel string) string {
	return filepath.Join(env.DotfilesRoot, filepath.FromSlash(rel))
}

// Home returns the absolute path of rel inside the home directory.
func (env *TestEnvironment) Home(rel string) string {
	return filepath.Join(env.HomeDir, filepath.FromSlash(rel))
}
