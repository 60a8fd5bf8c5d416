package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"conventions.md":   {Data: []byte("# Conventions\n\nUse `.no-recurse`.\n")},
		"option-force.txt": {Data: []byte("Force replaces existing entries.\n")},
		"nested/layout.md": {Data: []byte("# Layout\n")},
		"ignored.json":     {Data: []byte("{}")},
		"notes.txxt":       {Data: []byte("custom")},
	}
}

func TestScanTopics(t *testing.T) {
	tm, err := New(testFS(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"conventions", "layout", "option-force"}, tm.ListTopics())

	topic, ok := tm.GetTopic("conventions")
	require.True(t, ok)
	assert.Equal(t, "conventions.md", topic.FilePath)

	_, ok = tm.GetTopic("--force")
	assert.True(t, ok, "flag-style names resolve to option topics")

	_, ok = tm.GetTopic("ignored")
	assert.False(t, ok)
}

func TestCustomExtensions(t *testing.T) {
	tm, err := New(testFS(), Options{Extensions: []string{".txxt"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, tm.ListTopics())
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string { return format + ":" + content }

func TestPrintTopicUsesRenderer(t *testing.T) {
	tm, err := New(testFS(), Options{Renderer: upperRenderer{}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tm.PrintTopic(&buf, "force"))
	assert.Equal(t, ".txt:Force replaces existing entries.\n", buf.String())

	assert.Error(t, tm.PrintTopic(&buf, "missing"))
}

func TestGlamourRendererPassesThroughNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain", r.Render("plain", ".txt"))

	r = &GlamourRenderer{Style: "notty", Width: 60}
	out := r.Render("# Title\n\nbody text\n", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
}

func TestInstall(t *testing.T) {
	root := &cobra.Command{Use: "app"}
	root.AddCommand(&cobra.Command{Use: "install", Short: "Install things", Run: func(*cobra.Command, []string) {}})

	tm, err := New(testFS(), Options{})
	require.NoError(t, err)
	tm.Install(root)

	run := func(args ...string) string {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return buf.String()
	}

	out := run("help", "topics")
	assert.Contains(t, out, "General topics:")
	assert.Contains(t, out, "  conventions")
	assert.Contains(t, out, "  --force")

	assert.Equal(t, "# Conventions\n\nUse `.no-recurse`.\n", run("help", "conventions"))
	assert.Contains(t, run("help", "install"), "Install things")
}
