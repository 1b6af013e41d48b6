// Package cache persists fetched plans per course so the viewer starts
// with the last known data while fresh plans load.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Store handles save/load of per-course cache files
type Store struct {
	basePath string
	// Now anchors pruning, time.Now when nil
	Now func() time.Time
}

// NewStore creates a store with the given base directory
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// Default returns a store in the user cache directory
func Default() (*Store, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("locate cache dir: %w", err)
	}
	return NewStore(dir), nil
}

// FilePath returns the cache file of course
func (s *Store) FilePath(course string) string {
	h := fnv.New64a()
	h.Write([]byte(course))
	return filepath.Join(s.basePath, fmt.Sprintf("hs_app.%X.json", h.Sum64()))
}

// Exists checks if a cache file exists for course
func (s *Store) Exists(course string) bool {
	_, err := os.Stat(s.FilePath(course))
	return err == nil
}

// Load reads the cached data of course; a missing file yields nil, nil
func (s *Store) Load(course string) (*Data, error) {
	raw, err := os.ReadFile(s.FilePath(course))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}

	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode cache %s: %w", s.FilePath(course), err)
	}
	return &d, nil
}

// Save writes d for course, dropping days older than MaxAge.
// The file is replaced atomically.
func (s *Store) Save(course string, d *Data) error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	if d == nil {
		d = &Data{}
	}
	raw, err := json.Marshal(d.pruned(now))
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	path := s.FilePath(course)
	tmp, err := os.CreateTemp(s.basePath, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
