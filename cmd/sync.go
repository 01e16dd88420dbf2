package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ckirschner/ProjectSync/conflict"
	"github.com/ckirschner/ProjectSync/logger"
	"github.com/ckirschner/ProjectSync/model"
)

var noResolve bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror gitignored files between local and remote",
}

var syncPushCmd = &cobra.Command{
	Use:   "push [project]",
	Short: "Copy local gitignored files to the remote machine",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(args, model.ToRemote, model.OpSyncToRemote)
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull [project]",
	Short: "Copy remote gitignored files to the local machine",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(args, model.FromRemote, model.OpSyncFromRemote)
	},
}

func runSync(args []string, direction model.SyncDirection, op model.Operation) error {
	defer logger.Sync()

	p, err := resolveProject(openStore(), args)
	if err != nil {
		return err
	}

	var decide conflict.DecideFunc
	if !noResolve {
		decide = stdinDecider()
	}

	logger.Log.Info("starting untracked-file sync",
		zap.String("project", p.Name),
		zap.String("direction", string(direction)))

	tc := newToolchain()
	outcome, detail := tc.syncer.Sync(p, direction, decide)
	record(p.Name, op, outcome, detail)

	switch outcome {
	case model.OutcomeSuccess:
		fmt.Printf("done: %s\n", detail)
	case model.OutcomeNothing:
		fmt.Println(detail)
	case model.OutcomeCancelled:
		fmt.Println("sync cancelled")
	case model.OutcomeFailed:
		return fmt.Errorf("sync failed:\n%s", detail)
	}

	return nil
}

func init() {
	syncCmd.PersistentFlags().BoolVar(&noResolve, "no-resolve", false, "Skip conflict detection and transfer the full list")
	syncCmd.AddCommand(syncPushCmd, syncPullCmd)
	rootCmd.AddCommand(syncCmd)
}
