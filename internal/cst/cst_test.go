package cst

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The serialized tree is consumed by external tooling that
// pattern-matches on exact key names and null-vs-absent conventions,
// so the envelope shape is contract, not implementation detail.
func TestNodeSerializedShape(t *testing.T) {
	long := "--port"
	dt := "int"
	node := &Node{
		Name:        "serve",
		Description: "Start the server",
		Depth:       1,
		CommandPath: "app serve",
		Outputs: &Outputs{
			HelpPage: HelpPage{Stdout: "help text", Status: 0},
		},
		Children: NewChildren(),
	}
	node.Children.Flags = append(node.Children.Flags, Flag{
		Long:     &long,
		DataType: &dt,
	})

	raw, err := json.Marshal(node)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "serve", got["name"])
	assert.Equal(t, float64(1), got["depth"])
	assert.Equal(t, "app serve", got["command_path"])

	outputs, ok := got["outputs"].(map[string]any)
	require.True(t, ok)
	page, ok := outputs["help_page"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "help text", page["stdout"])
	assert.Equal(t, "", page["stderr"])
	assert.Equal(t, float64(0), page["status"])

	children, ok := got["children"].(map[string]any)
	require.True(t, ok)
	// Empty collections serialize as {} and [], never null.
	assert.Equal(t, map[string]any{}, children["COMMAND"])
	assert.Equal(t, []any{}, children["USAGE"])
	assert.Equal(t, []any{}, children["OTHER"])

	flags, ok := children["FLAG"].([]any)
	require.True(t, ok)
	require.Len(t, flags, 1)
	flag := flags[0].(map[string]any)
	// Unset optionals are explicit nulls.
	assert.Contains(t, flag, "short")
	assert.Nil(t, flag["short"])
	assert.Equal(t, "--port", flag["long"])
	assert.Equal(t, "int", flag["data_type"])
}

func TestNodeOmitsOutputsWhenNil(t *testing.T) {
	node := &Node{Name: "leaf", Children: NewChildren()}
	raw, err := json.Marshal(node)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.NotContains(t, got, "outputs")
}
