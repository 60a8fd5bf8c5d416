// Package probe inspects destination paths without modifying them.
package probe

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/internal/hashutil"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Probe reports what currently sits at path. The final path component is
// not followed, so a symlink is reported as such together with its recorded
// target, whether or not that target exists.
func Probe(fsys types.FS, path string) (types.DestinationState, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return types.Absent, nil
		}
		return types.DestinationState{}, errors.IOError(err, "stat", path)
	}

	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		target, err := fsys.Readlink(path)
		if err != nil {
			return types.DestinationState{}, errors.IOError(err, "readlink", path)
		}
		return types.SymlinkTo(target), nil
	case mode.IsRegular():
		return types.DestinationState{Kind: types.StateRegularFile}, nil
	case mode.IsDir():
		return types.DestinationState{Kind: types.StateDirectory}, nil
	default:
		return types.DestinationState{Kind: types.StateOther}, nil
	}
}

// ContentEqual compares the sha256 digests of two files.
func ContentEqual(fsys types.FS, a, b string) (bool, error) {
	sumA, err := hashutil.CalculateFileChecksum(fsys, a)
	if err != nil {
		return false, errors.IOError(err, "read", a)
	}
	sumB, err := hashutil.CalculateFileChecksum(fsys, b)
	if err != nil {
		return false, errors.IOError(err, "read", b)
	}
	return sumA == sumB, nil
}
