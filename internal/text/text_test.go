package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "hello world", want: "hello world"},
		{name: "color codes", input: "\x1b[31mred\x1b[0m text", want: "red text"},
		{name: "bold flag line", input: "  \x1b[1m--verbose\x1b[0m   Enable verbose output", want: "  --verbose   Enable verbose output"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}
