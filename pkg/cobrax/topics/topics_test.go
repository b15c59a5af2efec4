package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"alpha.md":  {Data: []byte("# Alpha\n\nFirst topic.\n")},
		"beta.txt":  {Data: []byte("Beta topic, plain text.\n")},
		"skip.json": {Data: []byte("{}")},
	}
}

func TestNewFromFSDiscoversTopics(t *testing.T) {
	m, err := NewFromFS(testFS(), &PlainRenderer{})
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, m.List())

	alpha, ok := m.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, ".md", alpha.Ext)
	assert.Contains(t, alpha.Content, "First topic.")

	_, ok = m.Get("skip")
	assert.False(t, ok, "non-doc files must not become topics")
}

func TestNewFromFSNilRendererDefaultsToPlain(t *testing.T) {
	m, err := NewFromFS(testFS(), nil)
	require.NoError(t, err)
	require.NotNil(t, m.renderer)
}

func TestCommandListsTopics(t *testing.T) {
	m, err := NewFromFS(testFS(), &PlainRenderer{})
	require.NoError(t, err)

	cmd := m.NewCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
}

func TestCommandRendersTopic(t *testing.T) {
	m, err := NewFromFS(testFS(), &PlainRenderer{})
	require.NoError(t, err)

	cmd := m.NewCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"beta"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Beta topic, plain text.")
}

func TestCommandUnknownTopic(t *testing.T) {
	m, err := NewFromFS(testFS(), &PlainRenderer{})
	require.NoError(t, err)

	cmd := m.NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"gamma"})
	assert.Error(t, cmd.Execute())
}

func TestCommandNoTopics(t *testing.T) {
	m, err := NewFromFS(fstest.MapFS{}, &PlainRenderer{})
	require.NoError(t, err)

	cmd := m.NewCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "No help topics available.")
}

func TestGlamourRendererPassesThroughNonMarkdown(t *testing.T) {
	r := &GlamourRenderer{}
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRendererKeepsMarkdownText(t *testing.T) {
	r := &GlamourRenderer{Width: 60}
	out := r.Render("# Heading\n\nSome body text.\n", ".md")
	assert.Contains(t, out, "Some body text.")
}
