package commands

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func dotfiles(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{
		"tmux.conf": "set -g mouse on",
		"rbenv": testutil.FileTree{
			"default-gems": "bundler",
		},
	})
	return env
}

func TestCommandStructure(t *testing.T) {
	root := NewRootCmd()

	tests := []struct {
		name    string
		groupID string
	}{
		{"install", "core"},
		{"uninstall", "core"},
		{"watch", "core"},
		{"config", "misc"},
		{"conventions", "misc"},
		{"version", "misc"},
		{"completion", "misc"},
		{"man", "misc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var found *cobra.Command
			for _, c := range root.Commands() {
				if c.Name() == tt.name {
					found = c
					break
				}
			}
			require.NotNil(t, found, "%s command should exist", tt.name)
			assert.Equal(t, tt.groupID, found.GroupID)
			assert.NotEmpty(t, found.Short)
		})
	}

	for _, name := range []string{"source", "home", "dry-run", "force", "show-commands", "output", "include-hidden", "ignore", "config", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
}

func TestInstallCommand(t *testing.T) {
	env := dotfiles(t)

	out, err := execute(t, "install", "-s", env.DotfilesRoot)
	require.NoError(t, err)

	testutil.AssertSymlink(t, env.Home(".tmux.conf"), env.Source("tmux.conf"))
	testutil.AssertSymlink(t, env.Home(".rbenv/default-gems"), env.Source("rbenv/default-gems"))
	assert.Contains(t, out, "~/.tmux.conf -> "+env.Source("tmux.conf"))
	assert.Contains(t, out, "install: 2 link/create")
}

func TestInstallThenUninstallCommand(t *testing.T) {
	env := dotfiles(t)

	_, err := execute(t, "install", "--source", env.DotfilesRoot)
	require.NoError(t, err)

	out, err := execute(t, "uninstall", "--source", env.DotfilesRoot)
	require.NoError(t, err)

	testutil.AssertAbsent(t, env.Home(".tmux.conf"))
	testutil.AssertAbsent(t, env.Home(".rbenv/default-gems"))
	assert.Contains(t, out, "uninstall: 2 link/delete")
}

func TestDryRunFlagLeavesHomeUntouched(t *testing.T) {
	env := dotfiles(t)
	before := testutil.Snapshot(t, env.HomeDir)

	out, err := execute(t, "install", "-s", env.DotfilesRoot, "--dry-run", "--show-commands")
	require.NoError(t, err)

	assert.Equal(t, before, testutil.Snapshot(t, env.HomeDir))
	assert.Contains(t, out, "$ ln -s "+env.Source("tmux.conf")+" "+env.Home(".tmux.conf"))
	assert.Contains(t, out, "(dry run)")
}

func TestConfigFromEnvironment(t *testing.T) {
	env := dotfiles(t)
	t.Setenv("DOTLINK_SOURCE_ROOT", env.DotfilesRoot)
	t.Setenv("DOTLINK_DRY_RUN", "true")

	out, err := execute(t, "install")
	require.NoError(t, err)

	testutil.AssertAbsent(t, env.Home(".tmux.conf"))
	assert.Contains(t, out, "(dry run)")
}

func TestUnsetFlagsDoNotOverrideEnvironment(t *testing.T) {
	env := dotfiles(t)
	env.WithHomeTree(testutil.FileTree{".tmux.conf": "local edits"})
	t.Setenv("DOTLINK_FORCE", "true")

	_, err := execute(t, "install", "-s", env.DotfilesRoot)
	require.NoError(t, err)

	testutil.AssertSymlink(t, env.Home(".tmux.conf"), env.Source("tmux.conf"))
}

func TestJSONOutput(t *testing.T) {
	env := dotfiles(t)

	out, err := execute(t, "install", "-s", env.DotfilesRoot, "-o", "json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var records []map[string]interface{}
	for _, line := range lines {
		var rec map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		records = append(records, rec)
	}

	assert.Equal(t, "action", records[0]["type"])
	assert.Equal(t, "link", records[0]["category"])
	assert.Equal(t, "create", records[0]["detail"])
	assert.Equal(t, env.Home(".tmux.conf"), records[0]["destination"])

	summary := records[2]
	assert.Equal(t, "summary", summary["type"])
	assert.Equal(t, "install", summary["mode"])
	assert.NotEmpty(t, summary["run_id"])
}

func TestJSONOutputRendersErrors(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	out, err := execute(t, "install", "-s", env.Source("missing"), "-o", "json")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	var rendered *renderedError
	assert.ErrorAs(t, err, &rendered)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &rec))
	assert.Equal(t, "error", rec["type"])
	assert.Equal(t, string(errors.ErrInvalidInput), rec["code"])
}

func TestTextOutputReturnsErrors(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	out, err := execute(t, "uninstall", "-s", env.Source("missing"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	var rendered *renderedError
	assert.False(t, stderrors.As(err, &rendered))
	assert.Empty(t, out)
}

func TestInvalidOutputFormat(t *testing.T) {
	env := dotfiles(t)

	_, err := execute(t, "install", "-s", env.DotfilesRoot, "-o", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestIgnoreFlag(t *testing.T) {
	env := dotfiles(t)
	env.WithFileTree(testutil.FileTree{"README.md": "docs"})

	_, err := execute(t, "install", "-s", env.DotfilesRoot, "--ignore", "README*")
	require.NoError(t, err)

	testutil.AssertAbsent(t, env.Home(".README.md"))
	testutil.AssertSymlink(t, env.Home(".tmux.conf"), env.Source("tmux.conf"))
}

func TestConfigCommand(t *testing.T) {
	env := dotfiles(t)

	out, err := execute(t, "config", "-s", env.DotfilesRoot, "--force")
	require.NoError(t, err)
	assert.Contains(t, out, env.DotfilesRoot)
	assert.Contains(t, out, "force = true")
	assert.Contains(t, out, "[walk]")

	out, err = execute(t, "config", "--template")
	require.NoError(t, err)
	assert.Contains(t, out, "# dry_run = false")
}

func TestConventionsCommand(t *testing.T) {
	out, err := execute(t, "conventions")
	require.NoError(t, err)
	assert.Contains(t, out, "Source tree conventions")
	assert.Contains(t, out, "_install.sh")
}

func TestHelpTopics(t *testing.T) {
	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	for _, topic := range []string{"conventions", "option-dry-run", "option-force", "option-show-commands"} {
		assert.Contains(t, out, topic)
	}

	out, err = execute(t, "help", "force")
	require.NoError(t, err)
	assert.Contains(t, out, "# --force")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dotlink version")
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "dotlink")
		})
	}

	_, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestManCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "man", "--dir", dir)
	require.NoError(t, err)
	assert.FileExists(t, dir+"/dotlink.1")
	assert.FileExists(t, dir+"/dotlink-install.1")
}
