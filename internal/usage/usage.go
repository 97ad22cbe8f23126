// Package usage parses a single usage line ("app [command] [--flags]")
// into an ordered tree of components. It knows nothing about commands or
// flags beyond usage syntax; classification of whole help lines lives in
// package helptext.
//
// This is a best-effort heuristic over untrusted text: unmatched
// brackets consume to the end of the string instead of failing.
package usage

import (
	"regexp"
	"strings"

	"github.com/schmitthub/cliscope/internal/cst"
)

// keyValuePattern matches docopt-style pairs such as <key>=<value>.
var keyValuePattern = regexp.MustCompile(`^<[^>]+>=<[^>]+>$`)

// ParseLine parses one usage line into components. Everything up to and
// including the first occurrence of baseCommand is stripped first, which
// removes the invocation prefix ("Usage: app foo ..." -> "..."). A
// remainder that starts with "-" yields no components: that is a
// mis-routed flag line, not usage grammar.
func ParseLine(line, baseCommand string) []cst.Component {
	line = strings.TrimSpace(line)
	if baseCommand != "" {
		if idx := strings.Index(line, baseCommand); idx >= 0 {
			line = line[idx+len(baseCommand):]
		}
	}
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "-") {
		return []cst.Component{}
	}
	return parseTokens(line)
}

// parseTokens is a single left-to-right scan. "[" opens a Group, "("
// opens an AlternativeGroup, anything else is a plain token. Stray
// closing brackets and top-level "|" are consumed silently.
func parseTokens(s string) []cst.Component {
	components := []cst.Component{}
	i := 0
	for i < len(s) {
		switch s[i] {
		case '[':
			inner, next := scanBalanced(s, i+1, '[', ']')
			i = next
			repeatable := strings.HasSuffix(inner, "...")
			if strings.HasPrefix(s[i:], "...") {
				repeatable = true
				i += 3
			}
			components = append(components, cst.Component{
				Type:         cst.ComponentGroup,
				Repeatable:   repeatable,
				Alternatives: [][]cst.Component{},
				Children:     parseTokens(inner),
			})
		case '(':
			inner, next := scanBalanced(s, i+1, '(', ')')
			i = next
			repeatable := strings.HasSuffix(inner, "...")
			if strings.HasPrefix(s[i:], "...") {
				repeatable = true
				i += 3
			}
			alternatives := parseAlternatives(inner)
			if len(alternatives) == 0 {
				// An empty or whitespace-only parenthetical is not a
				// real alternative; skip it entirely.
				continue
			}
			components = append(components, cst.Component{
				Type:         cst.ComponentAlternativeGroup,
				Required:     true,
				Repeatable:   repeatable,
				Alternatives: alternatives,
				Children:     []cst.Component{},
			})
		case ' ', '\t', ']', ')', '|':
			i++
		default:
			start := i
			for i < len(s) && !isDelimiter(s[i]) {
				i++
			}
			token := strings.TrimSpace(s[start:i])
			if token == "" {
				continue
			}
			components = append(components, tokenComponent(token))
		}
	}
	return components
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '[', ']', '(', ')', '|':
		return true
	}
	return false
}

// scanBalanced consumes from i to the close bracket matching an already
// consumed open bracket, tracking nesting depth. It returns the trimmed
// interior and the index just past the close. Unbalanced input consumes
// to the end of the string.
func scanBalanced(s string, i int, open, close byte) (string, int) {
	depth := 1
	start := i
	for i < len(s) {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start:i]), i + 1
			}
		}
		i++
	}
	return strings.TrimSpace(s[start:]), i
}

// parseAlternatives splits a paren-group interior on top-level "|" and
// parses each side into its own flattened component list. Sides that
// parse to nothing are dropped.
func parseAlternatives(s string) [][]cst.Component {
	alternatives := [][]cst.Component{}
	depth := 0
	start := 0
	flush := func(end int) {
		side := parseTokens(strings.TrimSpace(s[start:end]))
		if len(side) > 0 {
			alternatives = append(alternatives, side)
		}
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case '|':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(s))
	return alternatives
}

// tokenComponent classifies a plain token. A trailing "..." marks it
// repeatable and is stripped from the name. Plain tokens are always
// required: optionality is conveyed purely by Group membership.
func tokenComponent(token string) cst.Component {
	repeatable := strings.HasSuffix(token, "...")
	name := token
	if repeatable {
		name = strings.TrimSpace(strings.TrimSuffix(token, "..."))
	}

	keyValue := keyValuePattern.MatchString(name) || strings.Contains(name, "=")

	componentType := cst.ComponentKeyword
	switch {
	case strings.HasPrefix(name, "--"):
		componentType = cst.ComponentFlag
	case (strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">")) || keyValue:
		componentType = cst.ComponentArgument
	}

	return cst.Component{
		Type:         componentType,
		Name:         name,
		Required:     true,
		Repeatable:   repeatable,
		KeyValue:     keyValue,
		Alternatives: [][]cst.Component{},
		Children:     []cst.Component{},
	}
}
