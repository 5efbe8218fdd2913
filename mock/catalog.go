package mock

import (
	"context"

	"github.com/fwojciec/antdocs"
)

var _ antdocs.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of antdocs.CatalogService.
type CatalogService struct {
	ListComponentsFn   func(ctx context.Context, force bool) ([]antdocs.ComponentRef, error)
	GetComponentFn     func(ctx context.Context, name string, force bool) (*antdocs.ComponentRecord, error)
	SearchComponentsFn func(ctx context.Context, query string) ([]antdocs.ComponentRef, error)
	ExportAllFn        func(ctx context.Context, force bool, path string) (*antdocs.Catalog, error)
}

func (s *CatalogService) ListComponents(ctx context.Context, force bool) ([]antdocs.ComponentRef, error) {
	return s.ListComponentsFn(ctx, force)
}

func (s *CatalogService) GetComponent(ctx context.Context, name string, force bool) (*antdocs.ComponentRecord, error) {
	return s.GetComponentFn(ctx, name, force)
}

func (s *CatalogService) SearchComponents(ctx context.Context, query string) ([]antdocs.ComponentRef, error) {
	return s.SearchComponentsFn(ctx, query)
}

func (s *CatalogService) ExportAll(ctx context.Context, force bool, path string) (*antdocs.Catalog, error) {
	return s.ExportAllFn(ctx, force, path)
}
