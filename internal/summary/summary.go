// Package summary derives aggregate counts from a parsed CLI tree:
// total and unique commands, subcommands, and flags.
package summary

import (
	"fmt"

	"github.com/schmitthub/cliscope/internal/cst"
)

// Summary holds aggregate counts for one tree. Totals count every
// occurrence encountered during the walk; the unique variants count
// distinct values.
type Summary struct {
	UniqueKeywordsCount   int `json:"unique_keywords_count"`
	UniqueCommandCount    int `json:"unique_command_count"`
	UniqueSubcommandCount int `json:"unique_subcommand_count"`
	UniqueShortFlagCount  int `json:"unique_short_flag_count"`
	UniqueLongFlagCount   int `json:"unique_long_flag_count"`
	TotalCommandCount     int `json:"total_command_count"`
	TotalSubcommandCount  int `json:"total_subcommand_count"`
	TotalShortFlagCount   int `json:"total_short_flag_count"`
	TotalLongFlagCount    int `json:"total_long_flag_count"`
}

// Generate walks the tree and computes its summary.
func Generate(tree *cst.Node) Summary {
	var commands, subcommands, shortFlags, longFlags []string

	for name, child := range tree.Children.Commands {
		commands = append(commands, name)
		walk(&child.Children, &subcommands, &shortFlags, &longFlags)
	}

	uniqueCommands := uniqueCount(commands)
	uniqueSubcommands := uniqueCount(subcommands)
	uniqueShort := uniqueCount(shortFlags)
	uniqueLong := uniqueCount(longFlags)

	return Summary{
		UniqueKeywordsCount:   uniqueCommands + uniqueSubcommands + uniqueShort + uniqueLong,
		UniqueCommandCount:    uniqueCommands,
		UniqueSubcommandCount: uniqueSubcommands,
		UniqueShortFlagCount:  uniqueShort,
		UniqueLongFlagCount:   uniqueLong,
		TotalCommandCount:     len(commands),
		TotalSubcommandCount:  len(subcommands),
		TotalShortFlagCount:   len(shortFlags),
		TotalLongFlagCount:    len(longFlags),
	}
}

func walk(children *cst.Children, subcommands, shortFlags, longFlags *[]string) {
	for name, child := range children.Commands {
		*subcommands = append(*subcommands, name)
		walk(&child.Children, subcommands, shortFlags, longFlags)
	}
	for i := range children.Flags {
		flag := &children.Flags[i]
		if flag.Short != nil {
			*shortFlags = append(*shortFlags, *flag.Short)
		}
		if flag.Long != nil {
			*longFlags = append(*longFlags, *flag.Long)
		}
	}
}

func uniqueCount(values []string) int {
	set := map[string]struct{}{}
	for _, v := range values {
		set[v] = struct{}{}
	}
	return len(set)
}

// RenderMarkdown renders the summary as a Markdown document.
func (s Summary) RenderMarkdown() string {
	return fmt.Sprintf(
		"# CLI Summary\n\n## Unique Keywords Count\n\n%d\n\n## Unique Command Count\n\n%d\n\n## Unique Subcommand Count\n\n%d\n\n## Unique Short Flag Count\n\n%d\n\n## Unique Long Flag Count\n\n%d\n\n## Total Command Count\n\n%d\n\n## Total Subcommand Count\n\n%d\n\n## Total Short Flag Count\n\n%d\n\n## Total Long Flag Count\n\n%d",
		s.UniqueKeywordsCount,
		s.UniqueCommandCount,
		s.UniqueSubcommandCount,
		s.UniqueShortFlagCount,
		s.UniqueLongFlagCount,
		s.TotalCommandCount,
		s.TotalSubcommandCount,
		s.TotalShortFlagCount,
		s.TotalLongFlagCount,
	)
}

// RenderText renders the summary as plain text.
func (s Summary) RenderText() string {
	return fmt.Sprintf(
		"Unique Keywords Count: %d\n\nUnique Command Count: %d\n\nUnique Subcommand Count: %d\n\nUnique Short Flag Count: %d\n\nUnique Long Flag Count: %d\n\nTotal Command Count: %d\n\nTotal Subcommand Count: %d\n\nTotal Short Flag Count: %d\n\nTotal Long Flag Count: %d",
		s.UniqueKeywordsCount,
		s.UniqueCommandCount,
		s.UniqueSubcommandCount,
		s.UniqueShortFlagCount,
		s.UniqueLongFlagCount,
		s.TotalCommandCount,
		s.TotalSubcommandCount,
		s.TotalShortFlagCount,
		s.TotalLongFlagCount,
	)
}

// RenderCSV renders the summary as a metric,value table.
func (s Summary) RenderCSV() string {
	return fmt.Sprintf(
		"metric,value\nunique_keywords_count,%d\nunique_command_count,%d\nunique_subcommand_count,%d\nunique_short_flag_count,%d\nunique_long_flag_count,%d\ntotal_command_count,%d\ntotal_subcommand_count,%d\ntotal_short_flag_count,%d\ntotal_long_flag_count,%d\n",
		s.UniqueKeywordsCount,
		s.UniqueCommandCount,
		s.UniqueSubcommandCount,
		s.UniqueShortFlagCount,
		s.UniqueLongFlagCount,
		s.TotalCommandCount,
		s.TotalSubcommandCount,
		s.TotalShortFlagCount,
		s.TotalLongFlagCount,
	)
}
