package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome expands a leading ~ or ~/ using homeDir. Other ~user forms are
// returned unchanged.
func ExpandHome(path, homeDir string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// Resolve expands ~ and environment variables and returns an absolute, clean
// path.
func Resolve(path, homeDir string) (string, error) {
	expanded := ExpandHome(os.ExpandEnv(path), homeDir)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %s", path)
	}
	return abs, nil
}
