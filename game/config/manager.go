package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Manager caches the settings loaded from one file
type Manager struct {
	path     string
	settings *Settings
	mu       sync.RWMutex
}

// NewManager loads the settings at path (defaults when missing) and caches them
func NewManager(path string) (*Manager, error) {
	m := &Manager{path: path}
	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Path returns the settings file location
func (m *Manager) Path() string {
	return m.path
}

// Settings returns the cached settings
func (m *Manager) Settings() *Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Reload re-reads the file and environment, keeping the old settings on failure
func (m *Manager) Reload() error {
	s, err := Load(m.path)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", m.path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
	return nil
}

// Write renders s as YAML at path. An existing file is only replaced when force is set.
func Write(path string, s *Settings, force bool) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
