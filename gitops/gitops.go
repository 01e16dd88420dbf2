package gitops

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ckirschner/ProjectSync/logger"
	"github.com/ckirschner/ProjectSync/model"
	"github.com/ckirschner/ProjectSync/remote"
	"github.com/ckirschner/ProjectSync/runner"
)

// MessageFunc asks the user for a commit message given the porcelain
// summary of pending changes. ok=false means the user cancelled.
type MessageFunc func(summary string) (message string, ok bool)

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) bool

// Client shells out to git, locally in a project's working tree and
// remotely through ssh.
type Client struct {
	run runner.Runner
	ssh *remote.Shell
}

func NewClient(run runner.Runner, ssh *remote.Shell) *Client {
	return &Client{run: run, ssh: ssh}
}

// Status reports working-tree dirtiness; any porcelain output means dirty.
func (c *Client) Status(p model.Project) (bool, string, error) {
	ok, out := c.run.Run(p.LocalPath, "git status --porcelain")
	if !ok {
		return false, "", fmt.Errorf("git status failed: %s", out)
	}

	out = strings.TrimSpace(out)
	return out != "", out, nil
}

func (c *Client) CurrentBranch(p model.Project) string {
	ok, out := c.run.Run(p.LocalPath, "git symbolic-ref --short HEAD")
	if !ok {
		return ""
	}

	return strings.TrimSpace(out)
}

// IgnoredFiles lists untracked files matched by ignore rules, on either
// side. These are the files the mirroring sync moves; git itself never
// transfers them.
func (c *Client) IgnoredFiles(p model.Project, local bool) ([]string, error) {
	const query = "git ls-files --others --ignored --exclude-standard"

	var ok bool
	var out string

	if local {
		ok, out = c.run.Run(p.LocalPath, query)
	} else {
		ok, out = c.ssh.Run(p.RemoteHost, fmt.Sprintf("cd %s && %s", p.RemotePath, query))
	}

	if !ok {
		return nil, fmt.Errorf("failed to list ignored files: %s", out)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}

	return strings.Split(out, "\n"), nil
}

// Push commits pending changes (prompting through message) and pushes
// the project's branch. A declined commit message cancels the push.
func (c *Client) Push(p model.Project, message MessageFunc) (model.Outcome, string) {
	dirty, summary, err := c.Status(p)
	if err != nil {
		return model.OutcomeFailed, err.Error()
	}

	if dirty {
		msg, ok := message(summary)
		if !ok || strings.TrimSpace(msg) == "" {
			return model.OutcomeCancelled, "push cancelled"
		}

		escaped := strings.ReplaceAll(msg, `"`, `\"`)
		ok, out := c.run.Run(p.LocalPath, fmt.Sprintf(`git add -A && git commit -m "%s"`, escaped))
		if !ok {
			logger.Log.Error("commit failed",
				zap.String("project", p.Name),
				zap.String("output", out))
			return model.OutcomeFailed, out
		}
	}

	ok, out := c.run.Run(p.LocalPath, fmt.Sprintf("git push origin %s", p.GitBranch))
	if !ok {
		logger.Log.Error("push failed",
			zap.String("project", p.Name),
			zap.String("output", out))
		return model.OutcomeFailed, out
	}

	return model.OutcomeSuccess, out
}

// Pull pulls the project's branch. A dirty tree needs explicit
// confirmation first; merge conflicts in tracked files are left to git.
func (c *Client) Pull(p model.Project, confirm ConfirmFunc) (model.Outcome, string) {
	dirty, _, err := c.Status(p)
	if err != nil {
		return model.OutcomeFailed, err.Error()
	}

	if dirty {
		if !confirm("You have uncommitted changes. Pull may fail or create merge conflicts. Continue anyway?") {
			return model.OutcomeCancelled, "pull cancelled"
		}
	}

	ok, out := c.run.Run(p.LocalPath, fmt.Sprintf("git pull origin %s", p.GitBranch))
	if !ok {
		logger.Log.Error("pull failed",
			zap.String("project", p.Name),
			zap.String("output", out))
		return model.OutcomeFailed, out
	}

	return model.OutcomeSuccess, out
}
