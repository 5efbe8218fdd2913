package mock

import "github.com/fwojciec/antdocs"

var _ antdocs.CatalogWriter = (*CatalogWriter)(nil)

// CatalogWriter is a mock implementation of antdocs.CatalogWriter.
type CatalogWriter struct {
	WriteCatalogFn func(catalog *antdocs.Catalog, path string) error
}

func (w *CatalogWriter) WriteCatalog(catalog *antdocs.Catalog, path string) error {
	return w.WriteCatalogFn(catalog, path)
}
