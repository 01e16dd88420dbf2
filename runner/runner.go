package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

const DefaultTimeout = 120 * time.Second

// Runner is the boundary to every external tool. It reports a success
// flag and the combined, trimmed stdout+stderr; it never returns an
// error past itself.
type Runner interface {
	Run(dir, command string) (bool, string)
}

// Shell runs a command through `sh -c` in dir, bounded by Timeout. An
// in-flight command cannot be cancelled; the timeout is the only bound.
type Shell struct {
	Timeout time.Duration
}

func NewShell(timeout time.Duration) *Shell {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Shell{Timeout: timeout}
}

func (s *Shell) Run(dir, command string) (bool, string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	// Children holding the output pipe open must not stall Wait after a kill.
	cmd.WaitDelay = time.Second
	if dir != "" {
		cmd.Dir = dir
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return false, "command timed out"
	}

	return err == nil, strings.TrimSpace(out.String())
}
