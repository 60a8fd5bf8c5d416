package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// AssertSymlink fails unless path is a symlink whose target is target.
func AssertSymlink(t *testing.T, path, target string) {
	t.Helper()

	got, err := os.Readlink(path)
	if err != nil {
		t.Errorf("Expected %s to be a symlink: %v", path, err)
		return
	}
	if got != target {
		t.Errorf("Symlink %s points to %s, expected %s", path, got, target)
	}
}

// AssertRegularFile fails unless path is a regular file holding content.
func AssertRegularFile(t *testing.T, path, content string) {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("Expected %s to exist: %v", path, err)
		return
	}
	if !info.Mode().IsRegular() {
		t.Errorf("Expected %s to be a regular file, got mode %s", path, info.Mode())
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("Failed to read %s: %v", path, err)
		return
	}
	if string(data) != content {
		t.Errorf("File %s contains %q, expected %q", path, data, content)
	}
}

// AssertAbsent fails if anything, including a dangling symlink, is at path.
func AssertAbsent(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Lstat(path); err == nil {
		t.Errorf("Expected nothing at %s", path)
	} else if !os.IsNotExist(err) {
		t.Errorf("Failed to lstat %s: %v", path, err)
	}
}

// Snapshot lists every path under root with its type, mode, and symlink
// target or size. Two equal snapshots mean nothing observable changed.
func Snapshot(t *testing.T, root string) []string {
	t.Helper()

	var entries []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		line := rel + " " + info.Mode().String()
		switch {
		case info.Mode()&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			line += " -> " + target
		case info.Mode().IsRegular():
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			line += " " + string(data)
		}
		entries = append(entries, line)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", root, err)
	}
	sort.Strings(entries)
	return entries
}
