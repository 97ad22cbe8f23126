package probe

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProbeCapturesStdout(t *testing.T) {
	var r Runner
	result := r.Probe(context.Background(), "echo hello world")

	assert.Equal(t, "hello world", result.Stdout)
	assert.Equal(t, "", result.Stderr)
	assert.Equal(t, 0, result.Status)
}

func TestProbeNonZeroExit(t *testing.T) {
	var r Runner
	result := r.Probe(context.Background(), "false")

	assert.Equal(t, 1, result.Status)
}

func TestProbeLaunchFailureIsData(t *testing.T) {
	var r Runner
	result := r.Probe(context.Background(), "definitely-not-a-real-binary-12345 --help")

	assert.Equal(t, -1, result.Status)
	assert.True(t, strings.HasPrefix(result.Stderr, "Error executing command: "))
}

func TestProbeEmptyCommand(t *testing.T) {
	var r Runner
	result := r.Probe(context.Background(), "   ")

	assert.Equal(t, -1, result.Status)
	assert.Equal(t, "Error executing command: empty command", result.Stderr)
}

func TestProbeWhitespaceSplitOnly(t *testing.T) {
	// No shell is involved: quotes are passed through verbatim.
	var r Runner
	result := r.Probe(context.Background(), `echo "a b"`)

	assert.Equal(t, `"a b"`, result.Stdout)
}

func TestProbeTimeout(t *testing.T) {
	r := Runner{Timeout: 50 * time.Millisecond}

	start := time.Now()
	result := r.Probe(context.Background(), "sleep 5")
	elapsed := time.Since(start)

	assert.NotEqual(t, 0, result.Status)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestProbeCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var r Runner
	result := r.Probe(ctx, "echo hi")
	assert.NotEqual(t, 0, result.Status)
}
