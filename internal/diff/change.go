package diff

import "fmt"

// ChangeKind classifies one structural change between two trees.
type ChangeKind int

const (
	CommandAdded ChangeKind = iota
	CommandRemoved
	FlagAdded
	FlagRemoved
	FlagDescriptionChanged
	FlagDataTypeChanged
)

// Change is one classified difference. Which fields are meaningful
// depends on Kind: command changes carry Parent and Command, flag
// changes carry Command (the full path) and Flag, and the two modified
// variants carry the old/new values.
type Change struct {
	Kind    ChangeKind
	Parent  string
	Command string
	Flag    string
	OldDesc string
	NewDesc string
	OldType *string
	NewType *string
}

// String renders the stable human-readable form consumed by the
// reporting layer. These strings are a contract; snapshot tests depend
// on them byte for byte.
func (c Change) String() string {
	switch c.Kind {
	case CommandAdded:
		if c.Parent == "" {
			return fmt.Sprintf("+ Added command: %s", c.Command)
		}
		return fmt.Sprintf("+ Added command: %s (to %s)", c.Command, c.Parent)
	case CommandRemoved:
		if c.Parent == "" {
			return fmt.Sprintf("- Removed command: %s", c.Command)
		}
		return fmt.Sprintf("- Removed command: %s (from %s)", c.Command, c.Parent)
	case FlagAdded:
		return fmt.Sprintf("+ Added flag: %s (command: %s)", c.Flag, c.Command)
	case FlagRemoved:
		return fmt.Sprintf("- Removed flag: %s (command: %s)", c.Flag, c.Command)
	case FlagDescriptionChanged:
		return fmt.Sprintf(
			"~ Modified flag: %s (command: %s)\n    Description changed:\n      Before: \"%s\"\n      After:  \"%s\"",
			c.Flag, c.Command, c.OldDesc, c.NewDesc,
		)
	case FlagDataTypeChanged:
		return fmt.Sprintf(
			"~ Modified flag: %s (command: %s)\n    Data type changed: %s -> %s",
			c.Flag, c.Command, typeName(c.OldType), typeName(c.NewType),
		)
	}
	return "unknown change"
}

func typeName(t *string) string {
	if t == nil {
		return "none"
	}
	return *t
}
