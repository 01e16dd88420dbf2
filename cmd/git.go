package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ckirschner/ProjectSync/logger"
	"github.com/ckirschner/ProjectSync/model"
)

var gitCmd = &cobra.Command{
	Use:   "git",
	Short: "Push or pull the tracked source",
}

var gitPushCmd = &cobra.Command{
	Use:   "push [project]",
	Short: "Commit pending changes and push the project branch",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		p, err := resolveProject(openStore(), args)
		if err != nil {
			return err
		}

		logger.Log.Info("pushing", zap.String("project", p.Name), zap.String("branch", p.GitBranch))

		tc := newToolchain()
		outcome, detail := tc.git.Push(p, stdinMessage())
		record(p.Name, model.OpGitPush, outcome, detail)

		return reportGit("push", outcome, detail)
	},
}

var gitPullCmd = &cobra.Command{
	Use:   "pull [project]",
	Short: "Pull the project branch",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		p, err := resolveProject(openStore(), args)
		if err != nil {
			return err
		}

		logger.Log.Info("pulling", zap.String("project", p.Name), zap.String("branch", p.GitBranch))

		tc := newToolchain()
		outcome, detail := tc.git.Pull(p, stdinConfirm())
		record(p.Name, model.OpGitPull, outcome, detail)

		return reportGit("pull", outcome, detail)
	},
}

func reportGit(op string, outcome model.Outcome, detail string) error {
	switch outcome {
	case model.OutcomeCancelled:
		fmt.Printf("%s cancelled\n", op)
	case model.OutcomeFailed:
		return fmt.Errorf("%s failed:\n%s", op, detail)
	default:
		fmt.Printf("%s successful\n", op)
	}

	return nil
}

func init() {
	gitCmd.AddCommand(gitPushCmd, gitPullCmd)
	rootCmd.AddCommand(gitCmd)
}
