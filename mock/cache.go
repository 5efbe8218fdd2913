package mock

import "github.com/fwojciec/antdocs"

var _ antdocs.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of antdocs.CacheStore.
type CacheStore struct {
	GetFn func(key string) ([]byte, bool, error)
	PutFn func(key string, data []byte) error
}

func (s *CacheStore) Get(key string) ([]byte, bool, error) {
	return s.GetFn(key)
}

func (s *CacheStore) Put(key string, data []byte) error {
	return s.PutFn(key, data)
}
