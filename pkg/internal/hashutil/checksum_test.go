package hashutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFileChecksum(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()
	path := filepath.Join(dir, "gitconfig")
	require.NoError(t, os.WriteFile(path, []byte("Hello, World!\n"), 0644))

	checksum, err := CalculateFileChecksum(fs, path)
	require.NoError(t, err)
	assert.Contains(t, checksum, "sha256:")
	assert.Len(t, checksum, 71) // "sha256:" + 64 hex chars

	again, err := CalculateFileChecksum(fs, path)
	require.NoError(t, err)
	assert.Equal(t, checksum, again)

	other := filepath.Join(dir, "other")
	require.NoError(t, os.WriteFile(other, []byte("Hello, World?\n"), 0644))
	otherSum, err := CalculateFileChecksum(fs, other)
	require.NoError(t, err)
	assert.NotEqual(t, checksum, otherSum)

	_, err = CalculateFileChecksum(fs, filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
