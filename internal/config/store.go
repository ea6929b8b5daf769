package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultPath is where the tools look for the configuration file when
// no -config flag is given, matching the other Hybrid-Worker tools.
const DefaultPath = "configuration.json"

// Store reads and writes the configuration file. The filesystem is
// abstracted so tests run against an in-memory one.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store over the OS filesystem.
func NewStore(path string) *Store {
	return NewStoreWithFs(afero.NewOsFs(), path)
}

// NewStoreWithFs creates a store over an explicit filesystem.
func NewStoreWithFs(fs afero.Fs, path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{fs: fs, path: path}
}

// Path returns the file the store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the configuration file.
func (s *Store) Load() (*Config, error) {
	cfg, err := s.LoadRaw()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", s.path, err)
	}
	return cfg, nil
}

// LoadRaw reads and parses the configuration file without validating
// it. The login command overlays its flags on the document before
// validation, so a file carrying only the unique_key still works with
// -email.
func (s *Store) LoadRaw() (*Config, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", s.path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", s.path, err)
	}
	return &cfg, nil
}

// Save writes the configuration atomically: the handshake overwrites
// credentials on each successful step and a partial write would strand
// the user mid-handshake.
func (s *Store) Save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}
