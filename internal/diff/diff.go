// Package diff compares two CLI Structure Trees and produces an ordered
// list of classified changes. It is a pure function over two already
// materialized trees; reading and unmarshaling the persisted documents
// is the only I/O, and a document that fails to parse fails the whole
// diff rather than producing a partial result.
package diff

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/schmitthub/cliscope/internal/cst"
)

// CompareFiles reads two persisted trees and diffs them. Either file
// failing to read or parse is a hard error for the whole operation;
// callers may fall back to a raw textual comparison.
func CompareFiles(fromPath, toPath string) ([]Change, error) {
	from, err := readTree(fromPath)
	if err != nil {
		return nil, err
	}
	to, err := readTree(toPath)
	if err != nil {
		return nil, err
	}
	return Compare(from, to), nil
}

func readTree(path string) (*cst.Node, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading structure %s: %w", path, err)
	}
	var tree cst.Node
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("parsing structure %s: %w", path, err)
	}
	return &tree, nil
}

// Compare walks both trees in lock-step by command-name set operations
// at each level. Per level the order is: added commands, removed
// commands, then per-common-command flag changes followed by recursion.
// Names iterate in sorted order within each level so output is stable
// across runs (persisted JSON objects carry no insertion order).
func Compare(from, to *cst.Node) []Change {
	var changes []Change
	compareCommands(from, to, "", &changes)
	return changes
}

func compareCommands(from, to *cst.Node, parentPath string, changes *[]Change) {
	fromCommands := commandMap(from)
	toCommands := commandMap(to)

	for _, name := range sortedKeys(toCommands) {
		if _, ok := fromCommands[name]; !ok {
			*changes = append(*changes, Change{
				Kind:    CommandAdded,
				Parent:  parentPath,
				Command: name,
			})
		}
	}

	for _, name := range sortedKeys(fromCommands) {
		if _, ok := toCommands[name]; !ok {
			*changes = append(*changes, Change{
				Kind:    CommandRemoved,
				Parent:  parentPath,
				Command: name,
			})
		}
	}

	for _, name := range sortedKeys(fromCommands) {
		toChild, ok := toCommands[name]
		if !ok {
			continue
		}
		fromChild := fromCommands[name]

		currentPath := name
		if parentPath != "" {
			currentPath = parentPath + " " + name
		}

		compareFlags(fromChild, toChild, currentPath, changes)
		compareCommands(fromChild, toChild, currentPath, changes)
	}
}

// compareFlags diffs the FLAG collections of one command present on
// both sides. Flags are keyed by their signature: the long name, or the
// short name when no long name exists. Two flags differing only by
// short name with no long name collide; an accepted limitation.
func compareFlags(from, to *cst.Node, commandPath string, changes *[]Change) {
	fromFlags := from.Children.Flags
	toFlags := to.Children.Flags

	fromBySig := flagMap(fromFlags)
	toBySig := flagMap(toFlags)

	// Added flags, in the order the new side declares them.
	for i := range toFlags {
		if _, ok := fromBySig[signature(&toFlags[i])]; !ok {
			*changes = append(*changes, Change{
				Kind:    FlagAdded,
				Command: commandPath,
				Flag:    display(&toFlags[i]),
			})
		}
	}

	// Removed flags, in the order the old side declared them.
	for i := range fromFlags {
		if _, ok := toBySig[signature(&fromFlags[i])]; !ok {
			*changes = append(*changes, Change{
				Kind:    FlagRemoved,
				Command: commandPath,
				Flag:    display(&fromFlags[i]),
			})
		}
	}

	// Flags present on both sides: description compared verbatim,
	// data type compared including nil vs non-nil.
	for i := range fromFlags {
		fromFlag := &fromFlags[i]
		toFlag, ok := toBySig[signature(fromFlag)]
		if !ok {
			continue
		}

		if deref(fromFlag.Description) != deref(toFlag.Description) {
			*changes = append(*changes, Change{
				Kind:    FlagDescriptionChanged,
				Command: commandPath,
				Flag:    display(fromFlag),
				OldDesc: deref(fromFlag.Description),
				NewDesc: deref(toFlag.Description),
			})
		}

		if !equalOptional(fromFlag.DataType, toFlag.DataType) {
			*changes = append(*changes, Change{
				Kind:    FlagDataTypeChanged,
				Command: commandPath,
				Flag:    display(fromFlag),
				OldType: fromFlag.DataType,
				NewType: toFlag.DataType,
			})
		}
	}
}

func commandMap(node *cst.Node) map[string]*cst.Node {
	if node == nil || node.Children.Commands == nil {
		return map[string]*cst.Node{}
	}
	return node.Children.Commands
}

func flagMap(flags []cst.Flag) map[string]*cst.Flag {
	m := make(map[string]*cst.Flag, len(flags))
	for i := range flags {
		m[signature(&flags[i])] = &flags[i]
	}
	return m
}

// signature is the long flag name, falling back to short.
func signature(f *cst.Flag) string {
	if long := deref(f.Long); long != "" {
		return long
	}
	return deref(f.Short)
}

// display renders a flag for reporting: "-s/--long" when both names
// exist, the single name otherwise.
func display(f *cst.Flag) string {
	short, long := deref(f.Short), deref(f.Long)
	switch {
	case short != "" && long != "":
		return short + "/" + long
	case short != "":
		return short
	case long != "":
		return long
	}
	return "unknown"
}

func sortedKeys(m map[string]*cst.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
