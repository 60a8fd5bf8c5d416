package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FileTree represents a directory structure for testing. Values are file
// contents (string), Executable contents, Symlink targets, or nested trees.
type FileTree map[string]interface{}

// Executable is file content written with mode 0755.
type Executable string

// Symlink is the target of a symbolic link.
type Symlink string

// CreateFileTree recursively creates tree under basePath.
func CreateFileTree(t *testing.T, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			CreateFile(t, basePath, name, v)
		case Executable:
			CreateFile(t, basePath, name, string(v))
			if err := os.Chmod(fullPath, 0755); err != nil {
				t.Fatalf("Failed to chmod %s: %v", fullPath, err)
			}
		case Symlink:
			CreateSymlink(t, string(v), fullPath)
		case FileTree:
			if err := os.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			CreateFileTree(t, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// CreateFile creates a file with the given content in the specified directory.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateSymlink creates a symbolic link pointing to target.
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for symlink %s: %v", link, err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}
}
