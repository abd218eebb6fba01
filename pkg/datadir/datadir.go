// Package datadir resolves the mem data directory.
//
// The data directory holds the store file, the API key file, and the
// optional config file. It defaults to ~/.mem and can be overridden with
// the MEM_DATA_DIR environment variable or an explicit path.
package datadir

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvVar names the environment variable that overrides the data
	// directory location.
	EnvVar = "MEM_DATA_DIR"

	// dirName is the default directory name under the user's home.
	dirName = ".mem"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Target returns the absolute path to the data directory, creating it if
// needed. Order of precedence is as follows:
//  1. Provided override
//  2. MEM_DATA_DIR environment variable
//  3. Home ~/.mem/ dir
func (m *Manager) Target(overrideDir string) (string, error) {
	var dir string

	switch {
	case overrideDir != "":
		dir = overrideDir

	case os.Getenv(EnvVar) != "":
		dir = os.Getenv(EnvVar)

	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory (set %s to override): %w", EnvVar, err)
		}
		dir = filepath.Join(home, dirName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory %s: %w", dir, err)
	}

	return filepath.Abs(dir)
}
