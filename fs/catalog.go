package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/antdocs"
)

// Ensure CatalogWriter implements antdocs.CatalogWriter at compile time.
var _ antdocs.CatalogWriter = (*CatalogWriter)(nil)

// CatalogWriter writes a catalog as indented JSON with atomic update
// semantics: the document is written to a temporary file next to the
// target and renamed into place, so a crash mid-write never leaves a
// truncated artifact at the target path.
type CatalogWriter struct{}

// NewCatalogWriter creates a new CatalogWriter.
func NewCatalogWriter() *CatalogWriter {
	return &CatalogWriter{}
}

// WriteCatalog writes catalog to path.
func (w *CatalogWriter) WriteCatalog(catalog *antdocs.Catalog, path string) error {
	if path == "" {
		return antdocs.Errorf(antdocs.EINVALID, "export path required")
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		// Leave no temp file behind on a failed rename.
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// ReadCatalog reads a catalog artifact back from path. Primarily useful
// for tooling and round-trip verification.
func ReadCatalog(path string) (*antdocs.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var catalog antdocs.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}
