// Package probe runs a target program and captures its output. It is a
// pure process boundary: no parsing happens here, and probe failures are
// reported as data rather than errors so the crawler can keep going.
package probe

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// Result is the captured outcome of one probe invocation. Status is the
// process exit code, or -1 when the process could not be launched at
// all (in which case Stderr carries the launch error text).
type Result struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Status int    `json:"status"`
}

// Runner executes probe commands as real subprocesses.
//
// The command string is split on whitespace: the first token is the
// program, the rest are arguments. There is no shell quoting, so tokens
// containing spaces are not supported (a known limitation).
type Runner struct {
	// Timeout bounds a single probe. Zero means no timeout, which
	// matches the historical behavior: a hung target hangs the crawl.
	Timeout time.Duration
}

// Probe runs fullCommand and captures stdout, stderr and the exit
// status. It never returns an error: launch failures yield Status -1
// with the error text in Stderr.
func (r *Runner) Probe(ctx context.Context, fullCommand string) Result {
	fields := strings.Fields(fullCommand)
	if len(fields) == 0 {
		return Result{Status: -1, Stderr: "Error executing command: empty command"}
	}

	if r != nil && r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Status = exitErr.ExitCode()
		} else {
			res.Status = -1
			res.Stderr = "Error executing command: " + err.Error()
		}
	}
	return res
}
