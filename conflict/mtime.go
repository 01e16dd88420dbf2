package conflict

import (
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/ckirschner/ProjectSync/model"
	"github.com/ckirschner/ProjectSync/remote"
)

// FileMtimes is the production MtimeResolver: filesystem stat for the
// local side, ssh stat for the remote side.
type FileMtimes struct {
	ssh *remote.Shell
}

func NewFileMtimes(ssh *remote.Shell) *FileMtimes {
	return &FileMtimes{ssh: ssh}
}

func (m *FileMtimes) Mtime(p model.Project, file string, local bool) (time.Time, bool) {
	if local {
		info, err := os.Stat(filepath.Join(p.LocalPath, file))
		if err != nil {
			return time.Time{}, false
		}

		return info.ModTime(), true
	}

	return m.ssh.Mtime(p.RemoteHost, path.Join(p.RemotePath, file))
}
