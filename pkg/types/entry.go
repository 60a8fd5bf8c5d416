package types

import "fmt"

// EntryKind tells files and directories apart.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

func (k EntryKind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// SourceEntry is a path under the source root, read fresh on every run.
type SourceEntry struct {
	Path    string // absolute
	Name    string
	RelPath string // relative to the source root
	Kind    EntryKind
	// Executable is true when any execute bit is set on a file.
	Executable bool

	IsNoLink           bool
	HasNoRecurseMarker bool
	IsInstallScript    bool
}

// IsDir reports whether the entry is a directory.
func (e SourceEntry) IsDir() bool {
	return e.Kind == KindDirectory
}

// HandlingMode is how a source entry is reconciled.
type HandlingMode int

const (
	// ModeLink symlinks the entry. This is the default.
	ModeLink HandlingMode = iota
	// ModeRecurse descends into a directory instead of linking it.
	ModeRecurse
	// ModeOpaqueDirectory links a directory carrying the no-recurse marker
	// as a single unit.
	ModeOpaqueDirectory
	// ModeInstallScript executes the entry during install.
	ModeInstallScript
	// ModeCopyOnInstall copies the entry instead of linking it.
	ModeCopyOnInstall
)

var handlingModeNames = map[HandlingMode]string{
	ModeLink:            "link",
	ModeRecurse:         "recurse",
	ModeOpaqueDirectory: "opaque-directory",
	ModeInstallScript:   "install-script",
	ModeCopyOnInstall:   "copy-on-install",
}

func (m HandlingMode) String() string {
	if name, ok := handlingModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("HandlingMode(%d)", int(m))
}

// IsLinkable is true for the modes reconciled through a symlink.
func (m HandlingMode) IsLinkable() bool {
	return m == ModeLink || m == ModeOpaqueDirectory
}
