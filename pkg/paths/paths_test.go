package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationFor(t *testing.T) {
	root := "/src/dotfiles"
	home := "/home/ana"

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"top_level_file", "/src/dotfiles/tmux.conf", "/home/ana/.tmux.conf"},
		{"top_level_dir", "/src/dotfiles/zsh", "/home/ana/.zsh"},
		{"nested_only_dots_first_segment", "/src/dotfiles/rbenv/default-gems", "/home/ana/.rbenv/default-gems"},
		{"deeply_nested", "/src/dotfiles/config/nvim/lua/init.lua", "/home/ana/.config/nvim/lua/init.lua"},
		{"unclean_source", "/src/dotfiles/./vim//vimrc", "/home/ana/.vim/vimrc"},
		{"already_dotted_name", "/src/dotfiles/.hidden", "/home/ana/..hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := paths.DestinationFor(tt.source, root, home)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDestinationForRejectsPathsOutsideRoot(t *testing.T) {
	for _, source := range []string{"/src/dotfiles", "/src/other/file", "/elsewhere"} {
		_, err := paths.DestinationFor(source, "/src/dotfiles", "/home/ana")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), source)
	}
}

func TestDestinationForEntry(t *testing.T) {
	entry := types.SourceEntry{Path: "/src/dotfiles/gitconfig._no-link", Name: "gitconfig._no-link"}

	got, err := paths.DestinationForEntry(entry, types.ModeCopyOnInstall, "/src/dotfiles", "/home/ana")
	require.NoError(t, err)
	assert.Equal(t, "/home/ana/.gitconfig", got)

	nested := types.SourceEntry{Path: "/src/dotfiles/ssh/config._no-link", Name: "config._no-link"}
	got, err = paths.DestinationForEntry(nested, types.ModeCopyOnInstall, "/src/dotfiles", "/home/ana")
	require.NoError(t, err)
	assert.Equal(t, "/home/ana/.ssh/config", got)

	// The suffix only matters for copy-on-install entries.
	got, err = paths.DestinationForEntry(entry, types.ModeLink, "/src/dotfiles", "/home/ana")
	require.NoError(t, err)
	assert.Equal(t, "/home/ana/.gitconfig._no-link", got)
}

func TestDestinationForEntryRejectsBareSuffix(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"nested", "/src/dotfiles/foo/._no-link"},
		{"top_level", "/src/dotfiles/._no-link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := types.SourceEntry{Path: tt.path, Name: filepath.Base(tt.path)}
			got, err := paths.DestinationForEntry(entry, types.ModeCopyOnInstall, "/src/dotfiles", "/home/ana")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Empty(t, got)
		})
	}
}

func TestContainsPath(t *testing.T) {
	assert.True(t, paths.ContainsPath("/a/b", "/a/b/c"))
	assert.True(t, paths.ContainsPath("/a/b", "/a/b"))
	assert.True(t, paths.ContainsPath("/a/b", "/a/b/..c"))
	assert.False(t, paths.ContainsPath("/a/b", "/a/bc"))
	assert.False(t, paths.ContainsPath("/a/b", "/a"))
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "~/.vimrc", paths.FormatPath("/home/ana/.vimrc", "/home/ana"))
	assert.Equal(t, "~", paths.FormatPath("/home/ana", "/home/ana"))
	assert.Equal(t, "/etc/hosts", paths.FormatPath("/etc/hosts", "/home/ana"))
	assert.Equal(t, "/etc/hosts", paths.FormatPath("/etc/hosts", ""))
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/ana", paths.ExpandHome("~", "/home/ana"))
	assert.Equal(t, "/home/ana/dotfiles", paths.ExpandHome("~/dotfiles", "/home/ana"))
	assert.Equal(t, "~bob/x", paths.ExpandHome("~bob/x", "/home/ana"))
	assert.Equal(t, "/abs", paths.ExpandHome("/abs", "/home/ana"))
}

func TestResolve(t *testing.T) {
	t.Setenv("DOTLINK_TEST_DIR", "conf")

	got, err := paths.Resolve("~/$DOTLINK_TEST_DIR", "/home/ana")
	require.NoError(t, err)
	assert.Equal(t, "/home/ana/conf", got)

	got, err = paths.Resolve("relative", "/home/ana")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestGetHomeDirectory(t *testing.T) {
	t.Setenv("HOME", "/tmp/fake-home")
	home, err := paths.GetHomeDirectory()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fake-home", home)
}

func TestValidatePatterns(t *testing.T) {
	assert.NoError(t, paths.ValidatePatterns(nil))
	assert.NoError(t, paths.ValidatePatterns([]string{"*.swp", "README*", "[abc]rc"}))

	for _, bad := range []string{"[", "[a-", "\\"} {
		t.Run(bad, func(t *testing.T) {
			err := paths.ValidatePatterns([]string{"ok", bad})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

func TestMatchAny(t *testing.T) {
	patterns := []string{"*.swp", "README.md"}
	assert.True(t, paths.MatchAny(patterns, "vimrc.swp"))
	assert.True(t, paths.MatchAny(patterns, "README.md"))
	assert.False(t, paths.MatchAny(patterns, "vimrc"))
	assert.False(t, paths.MatchAny(nil, "vimrc"))
}
