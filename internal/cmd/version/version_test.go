package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		buildDate string
		want      string
	}{
		{
			name:    "plain version",
			version: "1.4.0",
			want:    "cliscope version 1.4.0\n",
		},
		{
			name:    "v prefix stripped",
			version: "v1.4.0",
			want:    "cliscope version 1.4.0\n",
		},
		{
			name:      "with build date",
			version:   "1.4.0",
			buildDate: "2026-08-29",
			want:      "cliscope version 1.4.0 (2026-08-29)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.version, tt.buildDate))
		})
	}
}
