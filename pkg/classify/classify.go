// Package classify decides how each source entry is reconciled.
package classify

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/constants"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// NewSourceEntry reads the metadata of path, which lives under sourceRoot,
// and fills in the derived tags. Symlinks inside the source tree are
// followed, so a linked directory is still a directory.
func NewSourceEntry(fsys types.FS, sourceRoot, path string) (types.SourceEntry, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return types.SourceEntry{}, errors.IOError(err, "stat", path)
	}

	rel, err := filepath.Rel(sourceRoot, path)
	if err != nil {
		return types.SourceEntry{}, errors.Wrapf(err, errors.ErrInvalidInput, "%s is not below %s", path, sourceRoot)
	}

	entry := types.SourceEntry{
		Path:    path,
		Name:    filepath.Base(path),
		RelPath: rel,
		Kind:    types.KindFile,
	}

	if info.IsDir() {
		entry.Kind = types.KindDirectory
		marker, err := hasMarker(fsys, path)
		if err != nil {
			return types.SourceEntry{}, err
		}
		entry.HasNoRecurseMarker = marker
		return entry, nil
	}

	entry.Executable = info.Mode().Perm()&0111 != 0
	entry.IsInstallScript = entry.Name == constants.InstallScriptName
	entry.IsNoLink = !entry.IsInstallScript && isNoLinkName(entry.Name)
	return entry, nil
}

// Classify returns the handling mode of entry. Rules apply in priority order
// so exactly one mode matches:
//
//  1. directory without the no-recurse marker: Recurse
//  2. directory with the marker: OpaqueDirectory
//  3. file named _install.sh: InstallScript
//  4. file ending in ._no-link, with something before the suffix: CopyOnInstall
//  5. anything else: Link
func Classify(entry types.SourceEntry) types.HandlingMode {
	switch {
	case entry.IsDir() && !entry.HasNoRecurseMarker:
		return types.ModeRecurse
	case entry.IsDir():
		return types.ModeOpaqueDirectory
	case entry.Name == constants.InstallScriptName:
		return types.ModeInstallScript
	case isNoLinkName(entry.Name):
		return types.ModeCopyOnInstall
	default:
		return types.ModeLink
	}
}

// isNoLinkName requires a stem: a file named just "._no-link" would map onto
// its parent directory.
func isNoLinkName(name string) bool {
	return len(name) > len(constants.NoLinkSuffix) && strings.HasSuffix(name, constants.NoLinkSuffix)
}

func hasMarker(fsys types.FS, dir string) (bool, error) {
	marker := filepath.Join(dir, constants.NoRecurseMarker)
	_, err := fsys.Lstat(marker)
	switch {
	case err == nil:
		return true, nil
	case stderrors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, errors.IOError(err, "stat", marker)
	}
}
