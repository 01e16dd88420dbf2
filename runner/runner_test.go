package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_CombinesStdoutAndStderr(t *testing.T) {
	t.Parallel()

	s := NewShell(0)

	ok, out := s.Run("", "echo out; echo err >&2")
	assert.True(t, ok)
	assert.Equal(t, "out\nerr", out)
}

func TestRun_NonZeroExitIsFailure(t *testing.T) {
	t.Parallel()

	s := NewShell(0)

	ok, out := s.Run("", "echo broken; exit 3")
	assert.False(t, ok)
	assert.Equal(t, "broken", out)
}

func TestRun_HonorsWorkingDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewShell(0)

	ok, out := s.Run(dir, "pwd")
	assert.True(t, ok)
	assert.Contains(t, out, dir)
}

func TestRun_TimeoutIsFailureWithSyntheticMessage(t *testing.T) {
	t.Parallel()

	s := NewShell(100 * time.Millisecond)

	start := time.Now()
	ok, out := s.Run("", "sleep 5")
	assert.False(t, ok)
	assert.Equal(t, "command timed out", out)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestNewShell_DefaultsTimeout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultTimeout, NewShell(0).Timeout)
	assert.Equal(t, time.Minute, NewShell(time.Minute).Timeout)
}
