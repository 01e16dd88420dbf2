package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ckirschner/ProjectSync/conflict"
	"github.com/ckirschner/ProjectSync/gitops"
	"github.com/ckirschner/ProjectSync/logger"
	"github.com/ckirschner/ProjectSync/model"
	"github.com/ckirschner/ProjectSync/pipeline"
)

var fullCmd = &cobra.Command{
	Use:   "full [project]",
	Short: "Run the full sync pipeline",
	Long: `Runs the four sync steps in order: untracked files to remote, git
push, git pull, untracked files from remote. The pipeline halts at the
first step that fails or is cancelled; completed steps are not undone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		p, err := resolveProject(openStore(), args)
		if err != nil {
			return err
		}

		tc := newToolchain()
		steps := fullSyncSteps(tc, p, stdinDecider(), stdinMessage(), stdinConfirm())

		logger.Log.Info("starting full sync", zap.String("project", p.Name))

		result := pipeline.Run(steps)
		record(p.Name, model.OpFullSync, result.Outcome, result.Step)

		switch result.Outcome {
		case model.OutcomeCancelled:
			fmt.Printf("full sync cancelled at: %s\n", result.Step)
		case model.OutcomeFailed:
			return fmt.Errorf("full sync stopped at %q:\n%s", result.Step, result.Detail)
		default:
			fmt.Println("full sync complete")
		}

		return nil
	},
}

// fullSyncSteps assembles the four-step pipeline: untracked files out,
// git push, git pull, untracked files back. Each step records its own
// history entry.
func fullSyncSteps(tc *toolchain, p model.Project, decide conflict.DecideFunc, message gitops.MessageFunc, confirm gitops.ConfirmFunc) []pipeline.Step {
	return []pipeline.Step{
		{
			Name: "sync untracked to remote",
			Run: func() (model.Outcome, string) {
				outcome, detail := tc.syncer.Sync(p, model.ToRemote, decide)
				record(p.Name, model.OpSyncToRemote, outcome, detail)
				return outcome, detail
			},
		},
		{
			Name: "git push",
			Run: func() (model.Outcome, string) {
				outcome, detail := tc.git.Push(p, message)
				record(p.Name, model.OpGitPush, outcome, detail)
				return outcome, detail
			},
		},
		{
			Name: "git pull",
			Run: func() (model.Outcome, string) {
				outcome, detail := tc.git.Pull(p, confirm)
				record(p.Name, model.OpGitPull, outcome, detail)
				return outcome, detail
			},
		},
		{
			Name: "sync untracked from remote",
			Run: func() (model.Outcome, string) {
				outcome, detail := tc.syncer.Sync(p, model.FromRemote, decide)
				record(p.Name, model.OpSyncFromRemote, outcome, detail)
				return outcome, detail
			},
		},
	}
}

func init() {
	rootCmd.AddCommand(fullCmd)
}
