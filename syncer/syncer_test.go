package syncer

import (
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckirschner/ProjectSync/conflict"
	"github.com/ckirschner/ProjectSync/model"
)

var filesFromRe = regexp.MustCompile(`--files-from="([^"]+)"`)

// fakeRunner captures every rsync invocation and snapshots the
// files-from list before the syncer removes the temp file.
type fakeRunner struct {
	ok    bool
	out   string
	calls []string
	lists [][]string
}

func (f *fakeRunner) Run(dir, command string) (bool, string) {
	f.calls = append(f.calls, command)

	if m := filesFromRe.FindStringSubmatch(command); m != nil {
		data, err := os.ReadFile(m[1])
		if err == nil {
			f.lists = append(f.lists, strings.Fields(string(data)))
		}
	}

	return f.ok, f.out
}

type fakeLister struct {
	local  []string
	remote []string
}

func (f *fakeLister) IgnoredFiles(p model.Project, local bool) ([]string, error) {
	if local {
		return f.local, nil
	}

	return f.remote, nil
}

type fakeMtimes struct {
	local  map[string]time.Time
	remote map[string]time.Time
}

func (f *fakeMtimes) Mtime(p model.Project, file string, local bool) (time.Time, bool) {
	side := f.remote
	if local {
		side = f.local
	}

	ts, ok := side[file]
	return ts, ok
}

var syncProject = model.Project{
	Name:       "demo",
	LocalPath:  "/home/me/demo",
	RemoteHost: "other-mac",
	RemotePath: "/Users/me/demo",
	GitBranch:  "main",
}

func newTestSyncer(run *fakeRunner, lister *fakeLister, mtimes *fakeMtimes) *Syncer {
	if mtimes == nil {
		mtimes = &fakeMtimes{}
	}

	return New(run, lister, conflict.NewDetector(lister, mtimes))
}

func decideByFile(choices map[string]model.Choice) conflict.DecideFunc {
	return func(i int, c model.Conflict, total int) (model.Choice, bool, bool) {
		return choices[c.File], false, false
	}
}

func TestSync_ExclusionsFilterTheTransferList(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	run := &fakeRunner{ok: true}
	lister := &fakeLister{
		local:  []string{"A", "B", "C"},
		remote: []string{"A", "B"},
	}
	mtimes := &fakeMtimes{
		local:  map[string]time.Time{"A": base, "B": base},
		remote: map[string]time.Time{"A": base.Add(time.Hour), "B": base.Add(time.Hour)},
	}

	s := newTestSyncer(run, lister, mtimes)

	outcome, detail := s.Sync(syncProject, model.ToRemote, decideByFile(map[string]model.Choice{
		"A": model.ChoiceRemote,
		"B": model.ChoiceSkip,
	}))

	assert.Equal(t, model.OutcomeSuccess, outcome)
	assert.Equal(t, "synced 1 files", detail)
	require.Len(t, run.lists, 1)
	assert.Equal(t, []string{"C"}, run.lists[0])
}

func TestSync_NoDecideTransfersEverything(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{ok: true}
	lister := &fakeLister{local: []string{"a.db", "b.log"}}

	s := newTestSyncer(run, lister, nil)

	outcome, _ := s.Sync(syncProject, model.ToRemote, nil)

	assert.Equal(t, model.OutcomeSuccess, outcome)
	require.Len(t, run.lists, 1)
	assert.ElementsMatch(t, []string{"a.db", "b.log"}, run.lists[0])
}

func TestSync_CancelledResolutionAbortsBeforeAnyTransfer(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	run := &fakeRunner{ok: true}
	lister := &fakeLister{local: []string{"A"}, remote: []string{"A"}}
	mtimes := &fakeMtimes{
		local:  map[string]time.Time{"A": base},
		remote: map[string]time.Time{"A": base.Add(time.Hour)},
	}

	s := newTestSyncer(run, lister, mtimes)

	outcome, _ := s.Sync(syncProject, model.ToRemote, func(int, model.Conflict, int) (model.Choice, bool, bool) {
		return "", false, true
	})

	assert.Equal(t, model.OutcomeCancelled, outcome)
	assert.Empty(t, run.calls, "rsync must never run after cancellation")
}

func TestSync_EmptyListIsNothingToDo(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{ok: true}
	s := newTestSyncer(run, &fakeLister{}, nil)

	outcome, _ := s.Sync(syncProject, model.ToRemote, nil)

	assert.Equal(t, model.OutcomeNothing, outcome)
	assert.Empty(t, run.calls)
}

func TestSync_AllFilesExcludedIsNothingToDo(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	run := &fakeRunner{ok: true}
	lister := &fakeLister{local: []string{"A"}, remote: []string{"A"}}
	mtimes := &fakeMtimes{
		local:  map[string]time.Time{"A": base},
		remote: map[string]time.Time{"A": base.Add(time.Hour)},
	}

	s := newTestSyncer(run, lister, mtimes)

	outcome, _ := s.Sync(syncProject, model.ToRemote, decideByFile(map[string]model.Choice{
		"A": model.ChoiceRemote,
	}))

	assert.Equal(t, model.OutcomeNothing, outcome)
	assert.Empty(t, run.calls)
}

func TestSync_ToRemoteRootsAndDirection(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{ok: true}
	s := newTestSyncer(run, &fakeLister{local: []string{"a.db"}}, nil)

	outcome, _ := s.Sync(syncProject, model.ToRemote, nil)
	require.Equal(t, model.OutcomeSuccess, outcome)

	require.Len(t, run.calls, 1)
	cmd := run.calls[0]
	assert.Contains(t, cmd, `rsync -avz --files-from=`)
	assert.Contains(t, cmd, `"/home/me/demo/" "other-mac:/Users/me/demo/"`)
}

func TestSync_FromRemoteSwapsRootsAndDrivingList(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{ok: true}
	lister := &fakeLister{
		local:  []string{"local-only.db"},
		remote: []string{"remote-only.db"},
	}

	s := newTestSyncer(run, lister, nil)

	outcome, _ := s.Sync(syncProject, model.FromRemote, nil)
	require.Equal(t, model.OutcomeSuccess, outcome)

	require.Len(t, run.calls, 1)
	assert.Contains(t, run.calls[0], `"other-mac:/Users/me/demo/" "/home/me/demo/"`)
	require.Len(t, run.lists, 1)
	assert.Equal(t, []string{"remote-only.db"}, run.lists[0])
}

func TestSync_TransferFailureSurfacesRawOutput(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{ok: false, out: "rsync: connection unexpectedly closed"}
	s := newTestSyncer(run, &fakeLister{local: []string{"a.db"}}, nil)

	outcome, detail := s.Sync(syncProject, model.ToRemote, nil)

	assert.Equal(t, model.OutcomeFailed, outcome)
	assert.Equal(t, "rsync: connection unexpectedly closed", detail)
	assert.Len(t, run.calls, 1, "no retry after a failed transfer")
}
