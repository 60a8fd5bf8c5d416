package paths

import (
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

// ValidatePatterns rejects ignore patterns filepath.Match cannot parse.
// Callers validate once up front so MatchAny never meets a bad pattern.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "invalid ignore pattern %q", pattern).
				WithDetail("key", "walk.ignore").
				WithDetail("pattern", pattern)
		}
	}
	return nil
}

// MatchAny reports whether the base name matches one of patterns.
func MatchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}
