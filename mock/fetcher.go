package mock

import (
	"context"

	"github.com/fwojciec/antdocs"
)

var _ antdocs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of antdocs.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, force bool) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string, force bool) (string, error) {
	return f.FetchFn(ctx, url, force)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
