// Package gitcfg manages the global git identity configuration (user.name and
// user.email) the pipeline requires before committing. Reads and writes go
// through a runner.Runner so tests can substitute a fake store.
package gitcfg

import (
	"errors"

	"pycargo/internal/logger"
	"pycargo/internal/runner"
)

// Store reads and writes global version-control identity values.
type Store interface {
	// Get returns the configured value for key, or "" when the key is unset.
	// An unset key is not an error.
	Get(key string) (string, error)

	// Set persists key globally, outside any project directory.
	Set(key, value string) error
}

// Git is the real Store, shelling out to `git config --global`.
type Git struct {
	Runner runner.Runner
}

// Get reads a global git config value. git exits with status 1 when the key
// is missing, which maps to ("", nil) here rather than a failure.
func (g *Git) Get(key string) (string, error) {
	out, err := g.Runner.Output("git", "config", "--global", "--get", key)
	if err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			logger.Debug("[DEBUG] git config %s is unset (exit %d)\n", key, exitErr.Code)
			return "", nil
		}
		// A spawn failure means git itself is unavailable, which is fatal.
		return "", err
	}
	return out, nil
}

// Set writes a global git config value.
func (g *Git) Set(key, value string) error {
	return g.Runner.Run("git", "config", "--global", key, value)
}
