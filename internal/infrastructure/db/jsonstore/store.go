// Package jsonstore persists each collection as a single JSON document on
// disk. Every operation loads the whole file, mutates it in memory and
// rewrites it, serialized by one mutex per collection so concurrent requests
// cannot silently drop each other's writes.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store hands out collections rooted in a single data directory.
type Store struct {
	dir string

	mu    sync.Mutex
	colls map[string]*collection
}

// Open prepares a store rooted at dir, creating the directory when absent.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: create data dir: %w", err)
	}
	return &Store{dir: dir, colls: make(map[string]*collection)}, nil
}

// Dir returns the data directory the store writes to.
func (s *Store) Dir() string { return s.dir }

// collection returns the single writer guard for file, creating it on first
// use. Two repositories asking for the same file share one mutex.
func (s *Store) collection(file string) *collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.colls[file]
	if !ok {
		c = &collection{path: filepath.Join(s.dir, file)}
		s.colls[file] = c
	}
	return c
}

type collection struct {
	mu   sync.Mutex
	path string
}

// load decodes the whole document into v. A missing file leaves v at its zero
// value; any other failure is returned.
func (c *collection) load(v any) error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("jsonstore: read %s: %w", c.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("jsonstore: decode %s: %w", c.path, err)
	}
	return nil
}

// save rewrites the whole document from v.
func (c *collection) save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: encode %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("jsonstore: write %s: %w", c.path, err)
	}
	return nil
}
