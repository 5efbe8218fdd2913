// Package http provides an HTTP-based implementation of antdocs.Fetcher
// with read-through caching. Documentation pages are static, so plain
// requests without JavaScript rendering are sufficient.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/antdocs"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent identifies the fetcher to the documentation site.
const DefaultUserAgent = "Mozilla/5.0 (antdocs fetcher)"

// Ensure Fetcher implements antdocs.Fetcher at compile time.
var _ antdocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves markup over HTTP through a cache store. A cache hit
// returns without network access; a miss (or forced refresh) performs a
// single request and overwrites the entry. No retries.
type Fetcher struct {
	cache     antdocs.CacheStore
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new caching Fetcher backed by cache.
func NewFetcher(cache antdocs.CacheStore, opts ...Option) *Fetcher {
	f := &Fetcher{
		cache:     cache,
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// CacheKey derives the stable cache key for a URL.
func CacheKey(url string) string {
	return fmt.Sprintf("%016x.html", xxhash.Sum64String(url))
}

// Fetch returns the markup for url, consulting the cache first unless
// force is set.
func (f *Fetcher) Fetch(ctx context.Context, url string, force bool) (string, error) {
	key := CacheKey(url)

	if !force {
		data, ok, err := f.cache.Get(key)
		if err != nil {
			return "", err
		}
		if ok {
			return string(data), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", antdocs.Errorf(antdocs.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", antdocs.Errorf(antdocs.EFETCH, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", antdocs.Errorf(antdocs.EFETCH, "fetching %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", antdocs.Errorf(antdocs.EFETCH, "reading %s: %v", url, err)
	}

	if err := f.cache.Put(key, body); err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
