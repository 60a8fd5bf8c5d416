package config

import (
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Dump renders cfg as TOML.
func Dump(cfg *Config) (string, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}

// Template returns the defaults with every value commented out, ready to be
// saved as a user config file.
func Template() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			// Section headers stay so uncommenting a value keeps it in place.
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
