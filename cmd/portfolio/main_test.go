package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jortwiebrens/portfolio/markup"
	"github.com/jortwiebrens/portfolio/site/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(buildInfo{Version: "v1.2.3", Commit: "abc", Date: "today"})
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRenderDefaultsToJSON(t *testing.T) {
	out, err := execute(t, "# Title\nSome **bold** text", "render")
	require.NoError(t, err)

	var nodes []markup.Node
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	assert.Equal(t, []markup.Node{
		markup.NewHeading(1, markup.PlainText("Title")),
		markup.NewParagraph(markup.PlainText("Some "), markup.BoldText("bold"), markup.PlainText(" text")),
	}, nodes)
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.md")
	require.NoError(t, os.WriteFile(path, []byte("- a\n- b"), 0o644))

	out, err := execute(t, "", "render", "--format", "json", path)
	require.NoError(t, err)

	var nodes []markup.Node
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	assert.Len(t, nodes, 2)
}

func TestRenderMissingFile(t *testing.T) {
	_, err := execute(t, "", "render", filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

func TestRenderReflow(t *testing.T) {
	out, err := execute(t, "one\ntwo", "render", "--reflow", "-")
	require.NoError(t, err)

	var nodes []markup.Node
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, "one two", nodes[0].Text())
}

func TestRenderTerm(t *testing.T) {
	in := strings.Join([]string{
		"# Title",
		"Intro **bold**",
		"3. first",
		"7. second",
		"- x",
	}, "\n")

	out, err := execute(t, in, "render", "--format", "term")
	require.NoError(t, err)

	want := strings.Join([]string{
		"Title",
		"",
		"Intro bold",
		"",
		"1. first",
		"2. second",
		"",
		"• x",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRenderHTML(t *testing.T) {
	out, err := execute(t, "## Sub\n1. **a**", "render", "-f", "html")
	require.NoError(t, err)

	assert.Contains(t, out, "<h2>Sub</h2>")
	assert.Contains(t, out, "<ol><li><strong>a</strong></li></ol>")
	assert.NotContains(t, out, "<html")
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := execute(t, "x", "render", "--format", "pdf")
	assert.ErrorContains(t, err, "unknown format")
}

func TestEssay(t *testing.T) {
	out, err := execute(t, "", "essay", "product-development")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "The Art of Product Decisions", lines[0])
	assert.Contains(t, lines[1], "Product Development")
	assert.Contains(t, out, "The Decision Framework")
}

func TestEssayNotFound(t *testing.T) {
	_, err := execute(t, "", "essay", "nope")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "portfolio v1.2.3 (commit abc, built today)\n", out)
}
