package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/constants"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// DestinationFor maps sourcePath, which must live under sourceRoot, onto
// homeDir by dot-prefixing its first path segment. It never touches the
// filesystem.
func DestinationFor(sourcePath, sourceRoot, homeDir string) (string, error) {
	rel, err := RelativePath(sourceRoot, sourcePath)
	if err != nil {
		return "", err
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is not below source root %s", sourcePath, sourceRoot)
	}
	return filepath.Join(homeDir, dotFirstSegment(rel)), nil
}

// DestinationForEntry is DestinationFor plus the copy-on-install rule: the
// no-link suffix is dropped from the basename. A basename that is nothing
// but the suffix has no destination.
func DestinationForEntry(entry types.SourceEntry, mode types.HandlingMode, sourceRoot, homeDir string) (string, error) {
	dest, err := DestinationFor(entry.Path, sourceRoot, homeDir)
	if err != nil {
		return "", err
	}
	if mode != types.ModeCopyOnInstall {
		return dest, nil
	}
	stem := strings.TrimSuffix(filepath.Base(dest), constants.NoLinkSuffix)
	if stem == "" || stem == constants.DestinationPrefix {
		return "", errors.Newf(errors.ErrInvalidInput, "%s has no name before %s", entry.Path, constants.NoLinkSuffix).
			WithDetail(errors.DetailPath, entry.Path)
	}
	return filepath.Join(filepath.Dir(dest), stem), nil
}

func dotFirstSegment(rel string) string {
	parts := strings.SplitN(rel, string(filepath.Separator), 2)
	parts[0] = constants.DestinationPrefix + parts[0]
	return filepath.Join(parts...)
}

// RelativePath returns the relative path from base to target.
// Returns an error if the paths cannot be made relative.
func RelativePath(base, target string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(base), filepath.Clean(target))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput,
			"cannot determine relative path from %s to %s", base, target)
	}
	return rel, nil
}

// ContainsPath checks if child is contained within parent.
// Both paths are normalized before comparison.
func ContainsPath(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// FormatPath shortens path for display by replacing the home directory
// prefix with ~.
func FormatPath(path, homeDir string) string {
	if homeDir == "" {
		return path
	}
	if path == homeDir {
		return "~"
	}
	if ContainsPath(homeDir, path) {
		rel, err := filepath.Rel(homeDir, path)
		if err == nil {
			return "~" + string(filepath.Separator) + rel
		}
	}
	return path
}
