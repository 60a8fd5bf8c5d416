package mutate_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/mutate"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMutator(t *testing.T, mode types.RunMode) (*mutate.Mutator, *[]string) {
	t.Helper()
	var lines []string
	m := mutate.New(filesystem.NewOS(), mode, "/src", "/home/test", func(line string) {
		lines = append(lines, line)
	})
	return m, &lines
}

func TestCreateSymlink(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src", "default-gems")
	require.NoError(t, os.MkdirAll(filepath.Dir(source), 0755))
	require.NoError(t, os.WriteFile(source, []byte("bundler\n"), 0644))
	dest := filepath.Join(dir, "home", ".rbenv", "default-gems")

	m, lines := newMutator(t, types.RunMode{})
	require.NoError(t, m.CreateSymlink(source, dest))

	target, err := os.Readlink(dest)
	require.NoError(t, err)
	assert.Equal(t, source, target)
	assert.Empty(t, *lines, "commands are only echoed in verbose mode")
}

func TestCreateSymlinkFailsWhenOccupied(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(dest, nil, 0644))

	m, _ := newMutator(t, types.RunMode{})
	err := m.CreateSymlink(filepath.Join(dir, "src"), dest)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.Contains(t, err.Error(), dest)
}

func TestVerboseEchoesCommands(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "my file")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0644))
	dest := filepath.Join(dir, "out", "dest")

	m, lines := newMutator(t, types.RunMode{Verbose: true})
	require.NoError(t, m.CreateSymlink(source, dest))
	require.NoError(t, m.RemovePath(dest))

	assert.Equal(t, []string{
		"mkdir -p " + filepath.Join(dir, "out"),
		"ln -s '" + source + "' " + dest,
		"rm -rf " + dest,
	}, *lines)
}

func TestDryRunHasNoSideEffects(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0644))
	victim := filepath.Join(dir, "victim")
	require.NoError(t, os.MkdirAll(filepath.Join(victim, "nested"), 0755))
	script := filepath.Join(dir, "_install.sh")
	marker := filepath.Join(dir, "ran")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\ntouch "+marker+"\n"), 0755))

	m, lines := newMutator(t, types.RunMode{DryRun: true, Verbose: true})

	assert.NoError(t, m.CreateSymlink(source, filepath.Join(dir, "new", "link")))
	assert.NoError(t, m.RemovePath(victim))
	assert.NoError(t, m.CopyFile(source, filepath.Join(dir, "copy")))
	assert.NoError(t, m.RunScript(context.Background(), script))

	assert.NoDirExists(t, filepath.Join(dir, "new"))
	assert.DirExists(t, filepath.Join(victim, "nested"))
	assert.NoFileExists(t, filepath.Join(dir, "copy"))
	assert.NoFileExists(t, marker)
	assert.Len(t, *lines, 6, "dry run still echoes every command")
}

func TestRemovePath(t *testing.T) {
	dir := t.TempDir()
	m, _ := newMutator(t, types.RunMode{})

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	require.NoError(t, m.RemovePath(file))
	assert.NoFileExists(t, file)

	tree := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(tree, "a", "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tree, "a", "b", "c"), nil, 0644))
	require.NoError(t, m.RemovePath(tree))
	assert.NoDirExists(t, tree)

	// Removing a symlink to a directory leaves the directory alone.
	target := filepath.Join(dir, "target")
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0644))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))
	require.NoError(t, m.RemovePath(link))
	_, err := os.Lstat(link)
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, filepath.Join(target, "keep"))
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "gitconfig._no-link")
	require.NoError(t, os.WriteFile(source, []byte("[user]\n"), 0600))
	require.NoError(t, os.Chmod(source, 0750))
	dest := filepath.Join(dir, "home", ".gitconfig")

	m, _ := newMutator(t, types.RunMode{})
	require.NoError(t, m.CopyFile(source, dest))

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "[user]\n", string(content))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0750), info.Mode().Perm())

	// Overwriting truncates longer existing content.
	require.NoError(t, os.WriteFile(dest, []byte("a much longer previous content\n"), 0644))
	require.NoError(t, m.CopyFile(source, dest))
	content, err = os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "[user]\n", string(content))
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	m, _ := newMutator(t, types.RunMode{})

	err := m.CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "dest"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}

func TestRunScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "_install.sh")
	body := "#!/bin/sh\necho \"$DOTLINK_SOURCE_ROOT $DOTLINK_HOME\"\necho oops >&2\ntouch created\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0755))

	m, _ := newMutator(t, types.RunMode{})
	var stdout, stderr bytes.Buffer
	m.Stdout = &stdout
	m.Stderr = &stderr

	require.NoError(t, m.RunScript(context.Background(), script))

	assert.Equal(t, "/src /home/test\n", stdout.String())
	assert.FileExists(t, filepath.Join(dir, "created"), "scripts run in their own directory")
	assert.Equal(t, "oops\n", stderr.String())
}

func TestRunScriptFailure(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "_install.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 7\n"), 0755))

	m, _ := newMutator(t, types.RunMode{})
	m.Stdout = &bytes.Buffer{}

	err := m.RunScript(context.Background(), script)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptFailure))
	assert.Equal(t, 7, errors.GetErrorDetails(err)[errors.DetailExitCode])
	assert.Contains(t, err.Error(), "_install.sh")
}

func TestRunScriptNotExecutable(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "_install.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0644))

	m, _ := newMutator(t, types.RunMode{})
	err := m.RunScript(context.Background(), script)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}
