package antdocs

import "context"

// Fetcher retrieves raw markup for URLs through a local cache.
// No other component touches the network or the cache store directly.
type Fetcher interface {
	// Fetch returns the markup for url. With force false, a cached copy
	// is returned without network access when one exists; otherwise a
	// single request is made and the result overwrites the cache entry.
	// Returns EFETCH on transport failure or a non-2xx response. No
	// retries.
	Fetch(ctx context.Context, url string, force bool) (string, error)

	// Close releases client resources.
	Close() error
}

// CacheStore persists raw fetched markup keyed by a stable string.
// Entries are created on first fetch and overwritten on forced refresh;
// the store never expires them on its own.
type CacheStore interface {
	// Get returns the cached bytes for key, and whether an entry exists.
	Get(key string) ([]byte, bool, error)

	// Put stores data under key, replacing any prior entry.
	Put(key string, data []byte) error
}
