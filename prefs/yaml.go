package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultDir is the directory under ~/.config/ holding the preference file.
const DefaultDir = "ragforge"

// DefaultFile is the preference filename.
const DefaultFile = "preferences.yaml"

// YAMLStore persists preferences to a YAML file. Writes go through
// immediately, so a run that is later aborted still leaves the answers it
// collected behind for the next invocation.
type YAMLStore struct {
	path   string
	values map[string]string
}

// NewYAMLStore opens the preference store at
// ~/.config/ragforge/preferences.yaml, creating nothing until the first
// write. A missing or unreadable file yields an empty store, not an error:
// preferences are a convenience, never a requirement.
func NewYAMLStore() (*YAMLStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locate home directory: %w", err)
	}
	return NewYAMLStoreAt(filepath.Join(home, ".config", DefaultDir, DefaultFile)), nil
}

// NewYAMLStoreAt opens a preference store at an explicit path.
// This is useful for testing or when paths are known ahead of time.
func NewYAMLStoreAt(path string) *YAMLStore {
	store := &YAMLStore{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return store
	}

	var parsed map[string]string
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		// Corrupt preference files are ignored; the next Set rewrites them.
		return store
	}
	for k, v := range parsed {
		store.values[k] = v
	}
	return store
}

// Path returns the backing file location.
func (s *YAMLStore) Path() string {
	return s.path
}

// Get implements Store.
func (s *YAMLStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set implements Store, writing through to the backing file.
func (s *YAMLStore) Set(key, value string) error {
	s.values[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(s.values)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o600)
}
