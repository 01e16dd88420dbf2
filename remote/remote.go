package remote

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ckirschner/ProjectSync/logger"
	"github.com/ckirschner/ProjectSync/runner"
)

const sentinel = "connected"

// Shell runs commands on a remote host over ssh. Hosts are ssh config
// aliases or user@host strings; authentication is assumed key-based.
type Shell struct {
	run            runner.Runner
	connectTimeout int
}

func NewShell(run runner.Runner, connectTimeout int) *Shell {
	if connectTimeout <= 0 {
		connectTimeout = 10
	}

	return &Shell{run: run, connectTimeout: connectTimeout}
}

func (s *Shell) Run(host, command string) (bool, string) {
	return s.run.Run("", fmt.Sprintf("ssh %s %q", host, command))
}

// Mtime resolves a remote file's modification time. BSD stat is tried
// first, then GNU stat. Any failure reports ok=false; callers treat
// that as "unknown", not as an error.
func (s *Shell) Mtime(host, path string) (time.Time, bool) {
	ok, out := s.Run(host, fmt.Sprintf("stat -f %%m %s", path))
	if !ok {
		ok, out = s.Run(host, fmt.Sprintf("stat -c %%Y %s", path))
	}

	if !ok {
		return time.Time{}, false
	}

	secs, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	if err != nil {
		logger.Log.Debug("unparseable remote mtime",
			zap.String("host", host),
			zap.String("path", path),
			zap.String("output", out))
		return time.Time{}, false
	}

	return time.Unix(secs, 0), true
}

// Test checks connectivity with a short timeout and a sentinel echo so
// a prompt for a password counts as a failure rather than a hang.
func (s *Shell) Test(host string) (bool, string) {
	cmd := fmt.Sprintf("ssh -o ConnectTimeout=%d -o BatchMode=yes %s \"echo %s\"",
		s.connectTimeout, host, sentinel)

	ok, out := s.run.Run("", cmd)
	if !ok || !strings.Contains(out, sentinel) {
		return false, out
	}

	return true, out
}
