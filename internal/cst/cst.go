// Package cst defines the CLI Structure Tree: the recursive record of a
// program's commands, flags, and usage syntax produced by the crawler.
//
// The serialized field names are a contract. External renderers (keyword
// extraction, summaries, web serving, diffing) pattern-match on the exact
// keys COMMAND/FLAG/USAGE/OTHER and outputs.help_page, so renaming anything
// here is a breaking change.
package cst

// ComponentType classifies one node of a parsed usage line.
type ComponentType string

const (
	ComponentFlag             ComponentType = "Flag"
	ComponentArgument         ComponentType = "Argument"
	ComponentKeyword          ComponentType = "Keyword"
	ComponentGroup            ComponentType = "Group"
	ComponentAlternativeGroup ComponentType = "AlternativeGroup"
	ComponentKeyValuePair     ComponentType = "KeyValuePair"
)

// Component is one node of the usage-grammar tree. Exactly one of
// Alternatives (paren groups) and Children (bracket groups) may be
// populated; plain tokens carry neither.
type Component struct {
	Type       ComponentType `json:"component_type"`
	Name       string        `json:"name"`
	Required   bool          `json:"required"`
	Repeatable bool          `json:"repeatable"`
	KeyValue   bool          `json:"key_value"`

	// Alternatives holds one flattened component list per `|`-separated
	// side of a paren group. Populated only for AlternativeGroup.
	Alternatives [][]Component `json:"alternatives"`

	// Children holds the parsed contents of a bracket group.
	// Populated only for Group.
	Children []Component `json:"children"`
}

// Flag is one flag definition extracted from an indented help line.
// At least one of Short and Long is always set. Optional fields are
// pointers so that absent serializes as null, distinct from empty.
type Flag struct {
	Short        *string `json:"short"`
	Long         *string `json:"long"`
	DataType     *string `json:"data_type"`
	Description  *string `json:"description"`
	ParentHeader string  `json:"parent_header"`
}

// Usage is one detected "Usage:" line with its parsed component tree.
type Usage struct {
	UsageString  string      `json:"usage_string"`
	ParentHeader string      `json:"parent_header"`
	Components   []Component `json:"usage_components"`
}

// Other is a free-text help line that matched no other classification.
// Components is non-nil only for single-token lines that parsed as a
// bare usage continuation.
type Other struct {
	LineContents string      `json:"line_contents"`
	ParentHeader string      `json:"parent_header"`
	Components   []Component `json:"components"`
}

// HelpPage is the raw captured output of the help invocation that
// produced a node. Kept for traceability and downstream tooling.
type HelpPage struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Status int    `json:"status"`
}

// Outputs groups the raw captures attached to a node.
type Outputs struct {
	HelpPage HelpPage `json:"help_page"`
}

// Children holds the four disjoint child collections of a node.
// Flags, Usages and Other preserve the order encountered in the help
// text; Commands is keyed by subcommand name.
type Children struct {
	Commands map[string]*Node `json:"COMMAND"`
	Flags    []Flag           `json:"FLAG"`
	Usages   []Usage          `json:"USAGE"`
	Other    []Other          `json:"OTHER"`
}

// NewChildren returns an empty, fully initialized child set so that
// serialization always emits {} and [] rather than null.
func NewChildren() Children {
	return Children{
		Commands: map[string]*Node{},
		Flags:    []Flag{},
		Usages:   []Usage{},
		Other:    []Other{},
	}
}

// Node is one command in the tree. The root carries Version; nested
// commands carry ParentHeader and Parent from the help line that
// introduced them. A Node is both a tree and a subtree.
type Node struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Version      string   `json:"version,omitempty"`
	ParentHeader string   `json:"parent_header,omitempty"`
	Parent       string   `json:"parent,omitempty"`
	Depth        int      `json:"depth"`
	CommandPath  string   `json:"command_path"`
	Outputs      *Outputs `json:"outputs,omitempty"`
	Children     Children `json:"children"`
}
