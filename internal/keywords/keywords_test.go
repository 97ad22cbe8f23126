package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/cliscope/internal/cst"
)

func ptr(s string) *string { return &s }

func testTree() *cst.Node {
	remote := &cst.Node{Name: "remote", Children: cst.NewChildren()}
	remote.Children.Flags = []cst.Flag{{Short: ptr("-v"), Long: ptr("--verbose")}}

	add := &cst.Node{Name: "add", Children: cst.NewChildren()}
	remote.Children.Commands["add"] = add

	serve := &cst.Node{Name: "serve", Children: cst.NewChildren()}
	serve.Children.Flags = []cst.Flag{
		{Short: ptr("-p"), Long: ptr("--port")},
		{Long: ptr("--verbose")},
	}

	root := &cst.Node{Name: "app", Children: cst.NewChildren()}
	root.Children.Commands["remote"] = remote
	root.Children.Commands["serve"] = serve
	root.Children.Flags = []cst.Flag{{Short: ptr("-h"), Long: ptr("--help")}}
	return root
}

func TestExtract(t *testing.T) {
	kw := Extract(testTree())

	assert.Equal(t, "app", kw.BaseProgram)
	assert.Equal(t, []string{"remote", "serve"}, kw.Commands)
	assert.Equal(t, []string{"add"}, kw.Subcommands)
	assert.Equal(t, []string{"-p", "-v"}, kw.ShortFlags)
	assert.Equal(t, []string{"--port", "--verbose"}, kw.LongFlags)
}

func TestExtractExcludesRootFlags(t *testing.T) {
	kw := Extract(testTree())

	assert.NotContains(t, kw.ShortFlags, "-h")
	assert.NotContains(t, kw.LongFlags, "--help")
}

func TestExtractEmptyTree(t *testing.T) {
	kw := Extract(&cst.Node{Name: "bare", Children: cst.NewChildren()})

	assert.Equal(t, "bare", kw.BaseProgram)
	assert.Empty(t, kw.Commands)
	assert.Empty(t, kw.Subcommands)
	assert.Empty(t, kw.ShortFlags)
	assert.Empty(t, kw.LongFlags)
}

func TestRenderCSV(t *testing.T) {
	out := Extract(testTree()).RenderCSV()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "type,value", lines[0])
	assert.Contains(t, lines, "base_program,app")
	assert.Contains(t, lines, "command,serve")
	assert.Contains(t, lines, "subcommand,add")
	assert.Contains(t, lines, "short_flag,-p")
	assert.Contains(t, lines, "long_flag,--verbose")
}

func TestRenderMarkdown(t *testing.T) {
	out := Extract(testTree()).RenderMarkdown()

	assert.True(t, strings.HasPrefix(out, "# `app`\n"))
	assert.Contains(t, out, "## First level commands")
	assert.Contains(t, out, "## All subcommands")
	assert.Contains(t, out, "-p -v")
	assert.Contains(t, out, "--port --verbose")
}

func TestRenderText(t *testing.T) {
	out := Extract(testTree()).RenderText()

	assert.True(t, strings.HasPrefix(out, "app:\n"))
	assert.Contains(t, out, "First level commands:")
	assert.Contains(t, out, "Short flags:\n-p -v")
}
