package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ckirschner/ProjectSync/model"
)

var (
	projectBranch string
	editName      string
	editLocal     string
	editHost      string
	editRemote    string
	editBranch    string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage configured projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add [name] [local-path] [remote-host] [remote-path]",
	Short: "Add a new project",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()

		p := model.NewProject(args[0], args[1], args[2], args[3], projectBranch)
		if err := s.Add(p); err != nil {
			return err
		}

		fmt.Printf("project added: %s (%s -> %s)\n", p.Name, p.LocalPath, p.Remote())
		return nil
	},
}

var projectEditCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Edit a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()

		p, ok := s.Get(args[0])
		if !ok {
			return fmt.Errorf("project %q not found", args[0])
		}

		if editName != "" {
			p.Name = editName
		}
		if editLocal != "" {
			p.LocalPath = editLocal
		}
		if editHost != "" {
			p.RemoteHost = editHost
		}
		if editRemote != "" {
			p.RemotePath = editRemote
		}
		if editBranch != "" {
			p.GitBranch = editBranch
		}

		if err := s.Update(args[0], p); err != nil {
			return err
		}

		fmt.Printf("project updated: %s\n", p.Name)
		return nil
	},
}

var projectRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()

		if _, ok := s.Get(args[0]); !ok {
			return fmt.Errorf("project %q not found", args[0])
		}

		if !stdinConfirm()(fmt.Sprintf("Remove project %q?", args[0])) {
			fmt.Println("removal cancelled")
			return nil
		}

		if err := s.Remove(args[0]); err != nil {
			return err
		}

		fmt.Printf("project %s removed\n", args[0])
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()

		projects := s.Projects()
		if len(projects) == 0 {
			fmt.Println("no projects configured")
			return nil
		}

		fmt.Printf("%-20s %-30s %-30s %s\n", "NAME", "LOCAL", "REMOTE", "BRANCH")
		for _, p := range projects {
			fmt.Printf("%-20s %-30s %-30s %s\n", p.Name, p.LocalPath, p.Remote(), p.GitBranch)
		}

		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one project's settings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()

		p, err := resolveProject(s, args)
		if err != nil {
			return err
		}

		fmt.Printf("Name:   %s\n", p.Name)
		fmt.Printf("Local:  %s\n", p.LocalPath)
		fmt.Printf("Remote: %s\n", p.Remote())
		fmt.Printf("Branch: %s\n", p.GitBranch)
		return nil
	},
}

func init() {
	projectAddCmd.Flags().StringVar(&projectBranch, "branch", model.DefaultBranch, "git branch to sync")

	projectEditCmd.Flags().StringVar(&editName, "name", "", "new project name")
	projectEditCmd.Flags().StringVar(&editLocal, "local", "", "new local path")
	projectEditCmd.Flags().StringVar(&editHost, "host", "", "new remote host")
	projectEditCmd.Flags().StringVar(&editRemote, "remote", "", "new remote path")
	projectEditCmd.Flags().StringVar(&editBranch, "git-branch", "", "new git branch")

	projectCmd.AddCommand(projectAddCmd, projectEditCmd, projectRemoveCmd, projectListCmd, projectShowCmd)
	rootCmd.AddCommand(projectCmd)
}
