// Package credentials manages the embedding provider API key stored in the
// mem data directory.
//
// The key lives as plain text in openai_api_key.txt, written by `mem auth`
// and read when constructing the embedding adapter. A missing key is a
// distinct, reportable condition (ErrNotConfigured), not a generic I/O
// failure.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// keyFile is the API key file name inside the data directory.
const keyFile = "openai_api_key.txt"

// ErrNotConfigured is returned when no API key has been stored yet.
var ErrNotConfigured = errors.New("API key not configured")

// Manager reads and writes the API key file in a data directory.
type Manager struct {
	path string
}

// NewManager creates a Manager for the given data directory.
func NewManager(dataDir string) *Manager {
	return &Manager{path: filepath.Join(dataDir, keyFile)}
}

// Path returns the API key file path.
func (m *Manager) Path() string {
	return m.path
}

// Get returns the stored API key.
func (m *Manager) Get() (string, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: run 'mem auth' to store one", ErrNotConfigured)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", m.path, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNotConfigured, m.path)
	}

	return key, nil
}

// Set stores the API key with restricted permissions.
func (m *Manager) Set(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("API key cannot be empty")
	}

	if err := os.WriteFile(m.path, []byte(key+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", m.path, err)
	}

	return nil
}

// Remove deletes the stored API key.
func (m *Manager) Remove() error {
	err := os.Remove(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotConfigured
	}
	if err != nil {
		return fmt.Errorf("removing %s: %w", m.path, err)
	}

	return nil
}
