package conflict

import (
	"time"

	"go.uber.org/zap"

	"github.com/ckirschner/ProjectSync/logger"
	"github.com/ckirschner/ProjectSync/model"
)

// Lister supplies the untracked-but-gitignored file set for one side.
type Lister interface {
	IgnoredFiles(p model.Project, local bool) ([]string, error)
}

// MtimeResolver resolves one file's modification time on one side.
// ok=false means the time could not be determined.
type MtimeResolver interface {
	Mtime(p model.Project, file string, local bool) (time.Time, bool)
}

type Detector struct {
	lister Lister
	mtimes MtimeResolver
}

func NewDetector(lister Lister, mtimes MtimeResolver) *Detector {
	return &Detector{lister: lister, mtimes: mtimes}
}

// Detect returns the gitignored files present on both sides whose
// modification times differ at whole-second precision. Detection is
// symmetric; direction only determines how the caller applies the
// resulting decisions. Files whose time cannot be resolved on either
// side are dropped silently, and the returned order is unspecified.
func (d *Detector) Detect(p model.Project, direction model.SyncDirection) []model.Conflict {
	local := d.fileSet(p, true)
	remote := d.fileSet(p, false)

	var conflicts []model.Conflict

	for file := range local {
		if _, onBoth := remote[file]; !onBoth {
			continue
		}

		localTime, ok := d.mtimes.Mtime(p, file, true)
		if !ok {
			continue
		}

		remoteTime, ok := d.mtimes.Mtime(p, file, false)
		if !ok {
			continue
		}

		// Whole-second comparison; a touch within the same second is
		// never a conflict. Content is deliberately not inspected.
		if localTime.Truncate(time.Second).Equal(remoteTime.Truncate(time.Second)) {
			continue
		}

		conflicts = append(conflicts, model.Conflict{
			File:       file,
			LocalTime:  localTime.Format(model.TimeFormat),
			RemoteTime: remoteTime.Format(model.TimeFormat),
		})
	}

	return conflicts
}

func (d *Detector) fileSet(p model.Project, local bool) map[string]struct{} {
	files, err := d.lister.IgnoredFiles(p, local)
	if err != nil {
		logger.Log.Debug("ignored-file listing failed, treating as empty",
			zap.String("project", p.Name),
			zap.Bool("local", local),
			zap.Error(err))
		return nil
	}

	set := make(map[string]struct{}, len(files))
	for _, f := range files {
		set[f] = struct{}{}
	}

	return set
}
