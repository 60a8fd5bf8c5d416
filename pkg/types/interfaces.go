package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for dotlink operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	Open(name string) (io.ReadCloser, error)
	OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error)
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Removal
	Remove(name string) error
	RemoveAll(path string) error
}

// Reporter receives every resolved Action. It is the only channel through
// which the engine talks to the presentation layer.
type Reporter interface {
	Report(action Action)

	// Command receives the literal shell equivalent of a mutation when the
	// run mode asks for it. It is called before the mutation happens, and
	// also under dry-run.
	Command(line string)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Action)  {}
func (NopReporter) Command(string) {}
