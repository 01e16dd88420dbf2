package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ckirschner/ProjectSync/config"
	"github.com/ckirschner/ProjectSync/conflict"
	"github.com/ckirschner/ProjectSync/db"
	"github.com/ckirschner/ProjectSync/gitops"
	"github.com/ckirschner/ProjectSync/logger"
	"github.com/ckirschner/ProjectSync/model"
	"github.com/ckirschner/ProjectSync/remote"
	"github.com/ckirschner/ProjectSync/repository"
	"github.com/ckirschner/ProjectSync/runner"
	"github.com/ckirschner/ProjectSync/store"
	"github.com/ckirschner/ProjectSync/syncer"
)

var (
	cfg   *config.Config
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "projectsync",
	Short: "Sync a project between two machines with git and rsync",
	Long: `projectsync keeps a project in step across two machines: tracked
source moves through git push/pull, gitignored artifacts move through
an rsync mirror over ssh, and files changed on both sides are resolved
interactively before anything is transferred.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		logger.Init(debug)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		// Project management and ssh helpers never touch the ledger.
		storeOnly := map[string]bool{
			"add": true, "edit": true, "remove": true,
			"list": true, "show": true, "test": true,
			"key": true, "status": true,
		}
		if !storeOnly[cmd.Name()] {
			if err := db.Init(cfg.DBPath); err != nil {
				return err
			}
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode")
}

func openStore() *store.Store {
	return store.Open(cfg.StorePath)
}

// resolveProject picks the project named by args, or the only one
// configured when args is empty.
func resolveProject(s *store.Store, args []string) (model.Project, error) {
	if len(args) > 0 {
		p, ok := s.Get(args[0])
		if !ok {
			return model.Project{}, fmt.Errorf("project %q not found", args[0])
		}

		return p, nil
	}

	projects := s.Projects()
	if len(projects) == 1 {
		return projects[0], nil
	}

	if len(projects) == 0 {
		return model.Project{}, fmt.Errorf("no projects configured, use 'projectsync project add' first")
	}

	return model.Project{}, fmt.Errorf("several projects configured, name one explicitly")
}

// toolchain wires the external-command boundary the way every sync and
// git command consumes it.
type toolchain struct {
	run    runner.Runner
	ssh    *remote.Shell
	git    *gitops.Client
	syncer *syncer.Syncer
}

func newToolchain() *toolchain {
	run := runner.NewShell(time.Duration(cfg.CommandTimeout) * time.Second)
	return toolchainFrom(run, cfg.ConnectTimeout)
}

func toolchainFrom(run runner.Runner, connectTimeout int) *toolchain {
	ssh := remote.NewShell(run, connectTimeout)
	git := gitops.NewClient(run, ssh)
	detector := conflict.NewDetector(git, conflict.NewFileMtimes(ssh))

	return &toolchain{
		run:    run,
		ssh:    ssh,
		git:    git,
		syncer: syncer.New(run, git, detector),
	}
}

func record(project string, op model.Operation, outcome model.Outcome, detail string) {
	repo := repository.NewHistoryRepository()
	if err := repo.Record(project, op, outcome, detail); err != nil {
		logger.Log.Warn("failed to save history",
			zap.Error(err))
	}
}
