package conflict

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckirschner/ProjectSync/model"
	"github.com/ckirschner/ProjectSync/remote"
)

type scriptRunner struct {
	respond func(command string) (bool, string)
	calls   []string
}

func (s *scriptRunner) Run(dir, command string) (bool, string) {
	s.calls = append(s.calls, command)
	return s.respond(command)
}

func TestFileMtimes_LocalStat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "cache.bin")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	stamp := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(file, stamp, stamp))

	m := NewFileMtimes(remote.NewShell(&scriptRunner{respond: func(string) (bool, string) {
		t.Fatal("remote must not be queried for a local mtime")
		return false, ""
	}}, 10))

	p := model.Project{Name: "demo", LocalPath: dir}

	ts, ok := m.Mtime(p, "cache.bin", true)
	require.True(t, ok)
	assert.True(t, ts.Equal(stamp))
}

func TestFileMtimes_LocalMissingFile(t *testing.T) {
	t.Parallel()

	m := NewFileMtimes(nil)
	p := model.Project{Name: "demo", LocalPath: t.TempDir()}

	_, ok := m.Mtime(p, "gone.bin", true)
	assert.False(t, ok)
}

func TestFileMtimes_RemoteJoinsProjectPath(t *testing.T) {
	t.Parallel()

	run := &scriptRunner{respond: func(string) (bool, string) {
		return true, "1773302400"
	}}

	m := NewFileMtimes(remote.NewShell(run, 10))
	p := model.Project{Name: "demo", RemoteHost: "other-mac", RemotePath: "/Users/me/demo"}

	ts, ok := m.Mtime(p, "build/cache.bin", false)
	require.True(t, ok)
	assert.Equal(t, time.Unix(1773302400, 0), ts)
	require.NotEmpty(t, run.calls)
	assert.Contains(t, run.calls[0], "/Users/me/demo/build/cache.bin")
}
