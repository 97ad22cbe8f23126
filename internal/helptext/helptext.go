// Package helptext classifies raw help-output lines into typed records.
//
// Classification is deliberately low-precision: section discrimination
// hangs entirely on the header text ("Usage:", "Available Commands:",
// ...), trading robustness across help-text dialects for simplicity.
// Tie-breaks and fallbacks here are part of the contract relied on by
// every downstream consumer of the tree.
package helptext

import (
	"regexp"
	"sort"
	"strings"

	"github.com/schmitthub/cliscope/internal/cst"
	"github.com/schmitthub/cliscope/internal/usage"
)

// flagLinePattern matches lines that begin, possibly after leading
// whitespace, with one or two hyphens followed by non-space.
var flagLinePattern = regexp.MustCompile(`^\s*-{1,2}\S+`)

// commandHeaders are the lowercased section titles whose indented lines
// denote subcommands. Matched by substring.
var commandHeaders = []string{"commands", "available commands", "subcommands"}

// Kind tags the classification of one help line.
type Kind int

const (
	KindFlag Kind = iota
	KindCommand
	KindUsage
	KindOther
)

// Command is a subcommand definition extracted from a commands section.
// Parent is the base command token the line was found under.
type Command struct {
	Name         string
	Description  string
	ParentHeader string
	Parent       string
}

// Line is the tagged result of classifying one help line. Exactly one
// of the record pointers matching Kind is set.
type Line struct {
	Kind    Kind
	Flag    *cst.Flag
	Command *Command
	Usage   *cst.Usage
	Other   *cst.Other
}

// IsHeader reports whether a line establishes a new section context.
// Indented lines are never headers; an unindented line is a header if
// it contains a colon or is non-empty after trimming.
func IsHeader(line string) bool {
	if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
		return false
	}
	if strings.Contains(line, ":") {
		return true
	}
	return strings.TrimSpace(line) != ""
}

// SectionName extracts the section title from a header line, stripping
// one trailing colon.
func SectionName(line string) string {
	return strings.TrimSuffix(strings.TrimSpace(line), ":")
}

// Classify turns one indented help line into a typed record, or nil
// when the line carries no classifiable content. baseCommand is the
// command token used to trim usage-line invocation prefixes; section is
// the active section title established by the preceding header.
func Classify(baseCommand, section, line string) *Line {
	if section == "" {
		section = "None"
	}
	trimmed := strings.TrimSpace(line)

	// Flag-likeness is lexically unambiguous and checked first.
	if flagLinePattern.MatchString(trimmed) {
		flag := parseFlagLine(strings.Fields(trimmed), section)
		return &Line{Kind: KindFlag, Flag: &flag}
	}

	fields := strings.Fields(trimmed)

	// A lone token may be a bare usage continuation; if it parses to
	// nothing the line is dropped entirely.
	if len(fields) == 1 {
		components := usage.ParseLine(trimmed, baseCommand)
		if len(components) == 0 {
			return nil
		}
		return &Line{Kind: KindOther, Other: &cst.Other{
			LineContents: fields[0],
			ParentHeader: section,
			Components:   components,
		}}
	}

	if len(fields) >= 2 {
		lower := strings.ToLower(section)

		if strings.Contains(lower, "usage") {
			return &Line{Kind: KindUsage, Usage: &cst.Usage{
				UsageString:  trimmed,
				ParentHeader: section,
				Components:   usage.ParseLine(trimmed, baseCommand),
			}}
		}

		// Examples are free text, not grammar.
		if strings.Contains(lower, "example") {
			return &Line{Kind: KindOther, Other: &cst.Other{
				LineContents: line,
				ParentHeader: section,
			}}
		}

		for _, header := range commandHeaders {
			if strings.Contains(lower, header) {
				return &Line{Kind: KindCommand, Command: &Command{
					Name:         fields[0],
					Description:  strings.Join(fields[1:], " "),
					ParentHeader: section,
					Parent:       baseCommand,
				}}
			}
		}

		return &Line{Kind: KindOther, Other: &cst.Other{
			LineContents: line,
			ParentHeader: section,
		}}
	}

	return nil
}

// parseFlagLine decodes a tokenized flag definition line. Consecutive
// tokens starting with "-" or containing a comma form the definition
// run; the first token outside it starts the description. Within the
// run, dash tokens are candidate flags and the first remaining token is
// the data-type hint. With two or more candidates, assignment is by
// ascending length: first unseen "--" token becomes long, first unseen
// single-dash token becomes short.
func parseFlagLine(fields []string, section string) cst.Flag {
	var flagRun []string
	var descriptionParts []string
	for i, part := range fields {
		if strings.HasPrefix(part, "-") || strings.Contains(part, ",") {
			flagRun = append(flagRun, part)
			continue
		}
		descriptionParts = append(descriptionParts, fields[i:]...)
		break
	}

	var tokens []string
	for _, definition := range strings.Split(strings.Join(flagRun, " "), ", ") {
		tokens = append(tokens, strings.Fields(definition)...)
	}

	var flags []string
	var dataType *string
	for _, token := range tokens {
		if strings.HasPrefix(token, "-") {
			flags = append(flags, token)
		} else if dataType == nil && strings.TrimSpace(token) != "" {
			dataType = ptr(token)
		}
	}

	var short, long *string
	switch {
	case len(flags) == 1:
		if strings.HasPrefix(flags[0], "--") {
			long = ptr(flags[0])
		} else {
			short = ptr(flags[0])
		}
	case len(flags) >= 2:
		sorted := append([]string(nil), flags...)
		sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) < len(sorted[j]) })
		for _, flag := range sorted {
			if strings.HasPrefix(flag, "--") {
				if long == nil {
					long = ptr(flag)
				}
			} else if short == nil {
				short = ptr(flag)
			}
		}
	}

	var description *string
	if len(descriptionParts) > 0 {
		description = ptr(strings.Join(descriptionParts, " "))
	}

	return cst.Flag{
		Short:        short,
		Long:         long,
		DataType:     dataType,
		Description:  description,
		ParentHeader: section,
	}
}

func ptr(s string) *string { return &s }
