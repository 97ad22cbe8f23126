// Package keywords extracts the vocabulary of a parsed CLI: first-level
// commands, all deeper subcommands, and every short and long flag.
package keywords

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schmitthub/cliscope/internal/cst"
)

// Keywords holds the extracted vocabulary of one tree. All slices are
// sorted for deterministic rendering.
type Keywords struct {
	BaseProgram string   `json:"base_program"`
	Commands    []string `json:"commands"`
	Subcommands []string `json:"subcommands"`
	ShortFlags  []string `json:"short_flags"`
	LongFlags   []string `json:"long_flags"`
}

// Extract collects keywords from a tree. Commands are the first-level
// subcommand names; subcommands and flags are gathered from every level
// below that. Root-level flags are not collected: they belong to the
// wrapper program, not its vocabulary of operations.
func Extract(tree *cst.Node) Keywords {
	commands := []string{}
	subcommands := map[string]struct{}{}
	shortFlags := map[string]struct{}{}
	longFlags := map[string]struct{}{}

	for name, child := range tree.Children.Commands {
		commands = append(commands, name)
		walk(&child.Children, subcommands, shortFlags, longFlags)
	}
	sort.Strings(commands)

	return Keywords{
		BaseProgram: tree.Name,
		Commands:    commands,
		Subcommands: sortedSet(subcommands),
		ShortFlags:  sortedSet(shortFlags),
		LongFlags:   sortedSet(longFlags),
	}
}

func walk(children *cst.Children, subcommands, shortFlags, longFlags map[string]struct{}) {
	for name, child := range children.Commands {
		subcommands[name] = struct{}{}
		walk(&child.Children, subcommands, shortFlags, longFlags)
	}
	for i := range children.Flags {
		flag := &children.Flags[i]
		if flag.Short != nil {
			shortFlags[*flag.Short] = struct{}{}
		}
		if flag.Long != nil {
			longFlags[*flag.Long] = struct{}{}
		}
	}
}

func sortedSet(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// RenderCSV renders keywords as a two-column type,value table.
func (k Keywords) RenderCSV() string {
	var b strings.Builder
	b.WriteString("type,value\n")
	fmt.Fprintf(&b, "base_program,%s\n", k.BaseProgram)
	for _, command := range k.Commands {
		fmt.Fprintf(&b, "command,%s\n", command)
	}
	for _, subcommand := range k.Subcommands {
		fmt.Fprintf(&b, "subcommand,%s\n", subcommand)
	}
	for _, flag := range k.ShortFlags {
		fmt.Fprintf(&b, "short_flag,%s\n", flag)
	}
	for _, flag := range k.LongFlags {
		fmt.Fprintf(&b, "long_flag,%s\n", flag)
	}
	return b.String()
}

// RenderMarkdown renders keywords as a Markdown document.
func (k Keywords) RenderMarkdown() string {
	return fmt.Sprintf(
		"# `%s`\n\n## First level commands\n\n%s\n\n## All subcommands\n\n%s\n\n## Short flags\n\n%s\n\n## Long flags\n\n%s",
		k.BaseProgram,
		strings.Join(k.Commands, "\n- "),
		strings.Join(k.Subcommands, " "),
		strings.Join(k.ShortFlags, " "),
		strings.Join(k.LongFlags, " "),
	)
}

// RenderText renders keywords as plain text.
func (k Keywords) RenderText() string {
	return fmt.Sprintf(
		"%s:\n\nFirst level commands:\n%s\n\nAll subcommands:\n%s\n\nShort flags:\n%s\n\nLong flags:\n%s",
		k.BaseProgram,
		strings.Join(k.Commands, "\n- "),
		strings.Join(k.Subcommands, " "),
		strings.Join(k.ShortFlags, " "),
		strings.Join(k.LongFlags, " "),
	)
}
