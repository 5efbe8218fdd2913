// Package fs provides filesystem-backed implementations of
// antdocs.CacheStore and antdocs.CatalogWriter.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/antdocs"
)

// Ensure CacheStore implements antdocs.CacheStore at compile time.
var _ antdocs.CacheStore = (*CacheStore)(nil)

// CacheStore persists one file per key under a root directory. The file
// modification time doubles as the fetch timestamp. Entries are never
// expired by the store itself.
type CacheStore struct {
	root string
}

// NewCacheStore creates a CacheStore rooted at dir. The directory is
// created on first Put, not here, so constructing a store never fails.
func NewCacheStore(dir string) *CacheStore {
	return &CacheStore{root: dir}
}

// Get returns the cached bytes for key, reporting a miss when no entry
// exists.
func (s *CacheStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.root, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Put stores data under key, replacing any prior entry.
func (s *CacheStore) Put(key string, data []byte) error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.root, key), data, 0644)
}
