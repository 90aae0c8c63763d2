package dom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFixture = `{
	"tag": "div",
	"attrs": {"id": "root"},
	"classes": ["container"],
	"styles": {"display": "block", "color": "red"},
	"children": [
		{
			"tag": "p",
			"text": "  Hello  ",
			"styles": {"display": "none"}
		},
		{
			"tag": "img",
			"attrs": {"src": "logo.png", "alt": "Logo"}
		}
	]
}`

func TestParseFixture_BuildsTree(t *testing.T) {
	root, err := ParseFixture([]byte(sampleFixture))
	require.NoError(t, err)

	assert.Equal(t, "div", root.Tag())
	assert.Equal(t, "root", root.ID())
	assert.True(t, root.HasClass("container"))
	assert.Equal(t, "red", root.ComputedStyle("color"))

	children := root.Children()
	require.Len(t, children, 2)

	p := children[0]
	assert.Equal(t, "p", p.Tag())
	assert.Equal(t, "Hello", p.TrimmedText())
	assert.False(t, p.Visible())
	assert.Same(t, root, p.Parent())

	img := children[1]
	alt, ok := img.Attr("alt")
	require.True(t, ok)
	assert.Equal(t, "Logo", alt)
}

func TestParseFixture_StyleOrderFollowsDocument(t *testing.T) {
	root, err := ParseFixture([]byte(
		`{"tag":"div","styles":{"z-index":"1","color":"red","display":"flex"}}`,
	))
	require.NoError(t, err)

	// Order must match the JSON document, not lexical order.
	entries := root.Styles().Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "z-index", entries[0].Name)
	assert.Equal(t, "color", entries[1].Name)
	assert.Equal(t, "display", entries[2].Name)
}

func TestParseFixture_InvalidJSON(t *testing.T) {
	_, err := ParseFixture([]byte("{not json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestParseFixture_MissingTag(t *testing.T) {
	_, err := ParseFixture([]byte(
		`{"tag":"div","children":[{"text":"orphan"}]}`,
	))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a tag")
	assert.Contains(t, err.Error(), "children[0]")
}

func TestLoadFixture_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")
	require.NoError(
		t, os.WriteFile(path, []byte(sampleFixture), 0644),
	)

	root, err := LoadFixture(path)
	require.NoError(t, err)
	assert.Equal(t, "root", root.ID())
}

func TestLoadFixture_MissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read fixture")
}
