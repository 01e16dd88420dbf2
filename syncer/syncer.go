package syncer

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ckirschner/ProjectSync/conflict"
	"github.com/ckirschner/ProjectSync/logger"
	"github.com/ckirschner/ProjectSync/model"
	"github.com/ckirschner/ProjectSync/runner"
)

// Syncer mirrors gitignored files between the two sides with rsync.
// Transfers always use an explicit file list, never a blanket directory
// mirror, so files outside the untracked set are never touched.
type Syncer struct {
	run      runner.Runner
	lister   conflict.Lister
	detector *conflict.Detector
}

func New(run runner.Runner, lister conflict.Lister, detector *conflict.Detector) *Syncer {
	return &Syncer{run: run, lister: lister, detector: detector}
}

// Sync runs one untracked-file transfer in the given direction. When
// decide is non-nil, conflicts are detected and resolved first; a
// cancelled resolution aborts the whole sync with no transfer at all.
// There is no retry; a failed rsync surfaces its raw output.
func (s *Syncer) Sync(p model.Project, direction model.SyncDirection, decide conflict.DecideFunc) (model.Outcome, string) {
	resolution := model.Resolution{}

	if decide != nil {
		conflicts := s.detector.Detect(p, direction)
		if len(conflicts) > 0 {
			resolved, cancelled := conflict.Resolve(conflicts, decide)
			if cancelled {
				return model.OutcomeCancelled, "sync cancelled"
			}

			resolution = resolved
		}
	}

	// The driving side's copy is transferred only when the decision
	// kept it; "skip" and the opposite side both exclude the file.
	keep := model.ChoiceLocal
	if direction == model.FromRemote {
		keep = model.ChoiceRemote
	}

	files, err := s.lister.IgnoredFiles(p, direction == model.ToRemote)
	if err != nil {
		logger.Log.Warn("failed to list files to sync, treating as empty",
			zap.String("project", p.Name),
			zap.Error(err))
		files = nil
	}

	var included []string
	for _, f := range files {
		if resolution.Keep(f, keep) {
			included = append(included, f)
		}
	}

	if len(included) == 0 {
		return model.OutcomeNothing, "no untracked files to sync"
	}

	listFile, err := writeFileList(included)
	if err != nil {
		return model.OutcomeFailed, err.Error()
	}
	defer func() {
		_ = os.Remove(listFile)
	}()

	// Trailing slashes merge directory contents into the destination
	// root instead of nesting the directory itself.
	localRoot := p.LocalPath + "/"
	remoteRoot := fmt.Sprintf("%s:%s/", p.RemoteHost, p.RemotePath)

	src, dst := localRoot, remoteRoot
	if direction == model.FromRemote {
		src, dst = remoteRoot, localRoot
	}

	cmd := fmt.Sprintf("rsync -avz --files-from=%q %q %q", listFile, src, dst)

	ok, out := s.run.Run("", cmd)
	if !ok {
		logger.Log.Error("rsync failed",
			zap.String("project", p.Name),
			zap.String("direction", string(direction)),
			zap.String("output", out))
		return model.OutcomeFailed, out
	}

	return model.OutcomeSuccess, fmt.Sprintf("synced %d files", len(included))
}

func writeFileList(files []string) (string, error) {
	f, err := os.CreateTemp("", "projectsync-files-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create file list: %w", err)
	}

	if _, err := f.WriteString(strings.Join(files, "\n") + "\n"); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file list: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to close file list: %w", err)
	}

	return f.Name(), nil
}
