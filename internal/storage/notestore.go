package storage

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// NoteStore defines the interface for reading and writing markdown note
// documents on disk.
type NoteStore interface {
	// List returns the .md filenames directly under dir, sorted
	// lexicographically. Subdirectories are not descended into.
	List(dir string) ([]string, error)

	// Read returns the full content of the note at path.
	Read(path string) (string, error)

	// Write replaces the note at path with content.
	Write(path, content string) error
}

type fileNoteStore struct{}

// NewNoteStore creates a NoteStore backed by the local filesystem.
func NewNoteStore() NoteStore {
	return &fileNoteStore{}
}

func (s *fileNoteStore) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing notes in %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".md") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *fileNoteStore) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading note: %w", err)
	}
	return string(data), nil
}

func (s *fileNoteStore) Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing note: %w", err)
	}
	return nil
}
