package remote

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ckirschner/ProjectSync/runner"
)

// PublicKey returns the first existing ssh public key, preferring
// ed25519 over rsa. ok is false when no key exists.
func PublicKey() (path, key string, ok bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", false
	}

	candidates := []string{
		filepath.Join(home, ".ssh", "id_ed25519.pub"),
		filepath.Join(home, ".ssh", "id_rsa.pub"),
	}

	for _, c := range candidates {
		data, err := os.ReadFile(c)
		if err != nil {
			continue
		}

		return c, strings.TrimSpace(string(data)), true
	}

	return "", "", false
}

// GenerateKey creates a passphrase-less ed25519 key pair. An existing
// key is never overwritten.
func GenerateKey(run runner.Runner) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}

	keyPath := filepath.Join(home, ".ssh", "id_ed25519")
	if _, err := os.Stat(keyPath); err == nil {
		return "", fmt.Errorf("key already exists at %s", keyPath)
	}

	ok, out := run.Run("", fmt.Sprintf("ssh-keygen -t ed25519 -f %s -N ''", keyPath))
	if !ok {
		return "", fmt.Errorf("ssh-keygen failed: %s", out)
	}

	return keyPath, nil
}
