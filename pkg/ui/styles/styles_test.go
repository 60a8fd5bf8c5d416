package styles

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return r
}

func TestEmbeddedStyles(t *testing.T) {
	reg, err := New(colorRenderer())
	require.NoError(t, err)

	for _, name := range []string{
		"Link", "NonLink", "Entry", "Command",
		"Create", "Overwrite", "Exists", "Delete", "Absent", "Different", "Purge", "Unlinked", "Run",
		"Path", "Arrow", "Shell", "Summary", "DryRun", "Error",
	} {
		assert.True(t, reg.Has(name), "missing style %s", name)
	}

	styled := reg.Render("Create", "create")
	assert.Contains(t, styled, "create")
	assert.NotEqual(t, "create", styled)
	assert.Equal(t, "text", reg.Render("NoSuchStyle", "text"))
}

func TestPlain(t *testing.T) {
	reg := Plain()
	assert.Equal(t, "create", reg.Render("Create", "create"))
}

func TestFromDataRejectsUnknownColor(t *testing.T) {
	_, err := FromData(colorRenderer(), []byte("styles:\n  Bad:\n    foreground: nope\n"))
	assert.Error(t, err)

	_, err = FromData(colorRenderer(), []byte("styles: [unclosed"))
	assert.Error(t, err)
}
