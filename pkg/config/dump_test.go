package config

import (
	"strings"
	"testing"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpRoundTripsThroughTOML(t *testing.T) {
	cfg := &Config{
		SourceRoot: "/srv/dotfiles",
		Force:      true,
		Output:     OutputYAML,
		Walk:       WalkConfig{IncludeHidden: true, Ignore: []string{"*.swp"}},
		File:       "/etc/dotlink.toml",
	}

	out, err := Dump(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "source_root = ")
	assert.Contains(t, out, "/srv/dotfiles")
	assert.Contains(t, out, "[walk]")
	assert.NotContains(t, out, "/etc/dotlink.toml")

	var back Config
	require.NoError(t, gotoml.Unmarshal([]byte(out), &back))
	back.File = cfg.File
	assert.Equal(t, *cfg, back)
}

func TestTemplate(t *testing.T) {
	tmpl := Template()

	assert.Contains(t, tmpl, "# force = false")
	assert.Contains(t, tmpl, "\n[walk]\n")
	for _, line := range strings.Split(tmpl, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line %q is not commented out", line)
	}
}
