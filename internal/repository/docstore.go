package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a requested record does not exist in its
// document. A missing document file is not an error on the read path.
var ErrNotFound = errors.New("record not found")

// DocStore reads and writes whole JSON documents in a flat data directory.
// Writes are crash-safe via write-temp-then-rename; each rename is
// all-or-nothing, but concurrent writers to the same document race and the
// last rename wins outright.
type DocStore struct {
	dataDir string
}

func NewDocStore(dataDir string) (*DocStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &DocStore{dataDir: dataDir}, nil
}

func (s *DocStore) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// Load decodes the named document into dest. A missing file reports
// os.ErrNotExist so callers can substitute their default structure.
func (s *DocStore) Load(name string, dest interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Save writes the document atomically: marshal, write to a temp file in the
// same directory, then rename over the original.
func (s *DocStore) Save(name string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	target := s.path(name)
	temp := target + ".tmp"

	if err := os.WriteFile(temp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(temp, target); err != nil {
		os.Remove(temp)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}

// Exists reports whether the named document file is present.
func (s *DocStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}
