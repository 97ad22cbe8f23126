// Package text provides pure text utility functions.
// This is a leaf package with zero internal imports.
package text

import "regexp"

// ansiPattern matches ANSI escape sequences for stripping.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes all ANSI escape sequences from a string. Help pages
// from CLIs that force color output must be stripped before line
// classification, or escape codes masquerade as flag tokens.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
