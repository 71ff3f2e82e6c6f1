// Package sysexec runs external system-inspection commands with bounded
// timeouts. Failures (missing binary, permission denied, timeout) are
// reported as unavailability so callers can fall back to the next source.
package sysexec

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"hwdoctor/internal/logger"
)

// DefaultTimeout bounds a single command invocation.
const DefaultTimeout = 10 * time.Second

// Command names one external command invocation.
type Command struct {
	Name string
	Args []string
}

// Runner executes inspection commands.
type Runner struct {
	timeout time.Duration
	log     *logger.Logger
}

// New creates a runner. A zero timeout falls back to DefaultTimeout.
func New(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{timeout: timeout, log: logger.New("sysexec")}
}

// Output runs one command and returns its stdout. Any failure, including
// a timeout, is returned as an error; stderr is discarded.
func (r *Runner) Output(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		r.log.Debug("%s %s failed: %v", name, strings.Join(args, " "), err)
		return "", err
	}
	return string(out), nil
}

// FirstOutput tries each candidate in order and returns the first
// non-empty output. Commands that fail or print nothing are skipped;
// ok is false when every candidate was unavailable.
func (r *Runner) FirstOutput(ctx context.Context, candidates ...Command) (out string, used Command, ok bool) {
	for _, c := range candidates {
		got, err := r.Output(ctx, c.Name, c.Args...)
		if err != nil || strings.TrimSpace(got) == "" {
			continue
		}
		return got, c, true
	}
	return "", Command{}, false
}
