package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ckirschner/ProjectSync/remote"
)

var generateKey bool

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Check and set up ssh access to the remote machine",
}

var sshTestCmd = &cobra.Command{
	Use:   "test [project|host]",
	Short: "Test passwordless ssh connectivity",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()

		var host string
		if len(args) == 1 {
			if p, ok := s.Get(args[0]); ok {
				host = p.RemoteHost
			} else {
				host = args[0]
			}
		} else {
			p, err := resolveProject(s, nil)
			if err != nil {
				return err
			}
			host = p.RemoteHost
		}

		tc := newToolchain()

		fmt.Printf("testing ssh connection to %s...\n", host)
		ok, out := tc.ssh.Test(host)
		if !ok {
			return fmt.Errorf(`could not connect to %s

Make sure:
  1. SSH keys are set up for passwordless login (projectsync ssh key)
  2. The host is reachable
  3. The host alias exists in ~/.ssh/config

Error: %s`, host, out)
		}

		fmt.Println("connection successful")
		return nil
	},
}

var sshKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Show (or generate) the ssh public key for the remote machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, key, ok := remote.PublicKey()

		if !ok && generateKey {
			tc := newToolchain()

			keyPath, err := remote.GenerateKey(tc.run)
			if err != nil {
				return err
			}

			fmt.Printf("generated new key pair at %s\n", keyPath)
			path, key, ok = remote.PublicKey()
		}

		if !ok {
			return fmt.Errorf("no ssh key found, run 'projectsync ssh key --generate' to create one")
		}

		fmt.Printf("public key (%s):\n\n%s\n\n", path, key)
		fmt.Println(strings.TrimSpace(`
To allow passwordless access, add it on the remote machine:

  ssh-copy-id <user@host>

or manually on the remote side:

  mkdir -p ~/.ssh && chmod 700 ~/.ssh
  echo "<key>" >> ~/.ssh/authorized_keys
  chmod 600 ~/.ssh/authorized_keys`))

		return nil
	},
}

func init() {
	sshKeyCmd.Flags().BoolVar(&generateKey, "generate", false, "Generate an ed25519 key pair when none exists")
	sshCmd.AddCommand(sshTestCmd, sshKeyCmd)
	rootCmd.AddCommand(sshCmd)
}
