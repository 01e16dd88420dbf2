package model

import (
	"fmt"
	"os"
)

const DefaultBranch = "main"

// Project is one configured local/remote pair. Name is the user-facing
// identity; edits and removals match on it.
type Project struct {
	Name       string `json:"name"`
	LocalPath  string `json:"local_path"`
	RemoteHost string `json:"remote_host"`
	RemotePath string `json:"remote_path"`
	GitBranch  string `json:"git_branch"`
}

func NewProject(name, localPath, remoteHost, remotePath, branch string) Project {
	if branch == "" {
		branch = DefaultBranch
	}

	return Project{
		Name:       name,
		LocalPath:  localPath,
		RemoteHost: remoteHost,
		RemotePath: remotePath,
		GitBranch:  branch,
	}
}

// Validate rejects a project before any external command runs against it.
func (p Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}

	if p.LocalPath == "" {
		return fmt.Errorf("local path is required")
	}

	if p.RemoteHost == "" {
		return fmt.Errorf("remote host is required")
	}

	if p.RemotePath == "" {
		return fmt.Errorf("remote path is required")
	}

	info, err := os.Stat(p.LocalPath)
	if err != nil {
		return fmt.Errorf("local path does not exist: %s", p.LocalPath)
	}

	if !info.IsDir() {
		return fmt.Errorf("local path is not a directory: %s", p.LocalPath)
	}

	return nil
}

func (p Project) Remote() string {
	return fmt.Sprintf("%s:%s", p.RemoteHost, p.RemotePath)
}
