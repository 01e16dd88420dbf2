package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ckirschner/ProjectSync/logger"
)

var statusCmd = &cobra.Command{
	Use:   "status [project]",
	Short: "Show a project's working tree, untracked files and connectivity",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		p, err := resolveProject(openStore(), args)
		if err != nil {
			return err
		}

		tc := newToolchain()

		fmt.Printf("Project: %s\n", p.Name)
		fmt.Printf("Local:   %s\n", p.LocalPath)
		fmt.Printf("Remote:  %s\n", p.Remote())

		branch := tc.git.CurrentBranch(p)
		if branch == "" {
			branch = "(unknown)"
		}
		fmt.Printf("Branch:  %s (configured: %s)\n", branch, p.GitBranch)

		dirty, summary, err := tc.git.Status(p)
		switch {
		case err != nil:
			fmt.Printf("Tree:    error: %v\n", err)
		case dirty:
			fmt.Printf("Tree:    dirty (%d changes)\n", len(strings.Split(summary, "\n")))
		default:
			fmt.Println("Tree:    clean")
		}

		local, err := tc.git.IgnoredFiles(p, true)
		if err != nil {
			fmt.Printf("Untracked local:  error: %v\n", err)
		} else {
			fmt.Printf("Untracked local:  %d files\n", len(local))
		}

		ok, out := tc.ssh.Test(p.RemoteHost)
		if !ok {
			fmt.Printf("SSH:     failed (%s)\n", out)
			fmt.Println("Untracked remote: unavailable")
			return nil
		}

		fmt.Println("SSH:     connected")

		remoteFiles, err := tc.git.IgnoredFiles(p, false)
		if err != nil {
			fmt.Printf("Untracked remote: error: %v\n", err)
		} else {
			fmt.Printf("Untracked remote: %d files\n", len(remoteFiles))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
