package antdocs

import (
	"context"
	"time"
)

// ComponentRef identifies one component documentation page, as listed on
// the overview/index page. Refs are immutable once parsed.
type ComponentRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Validate returns an error if the ref contains invalid fields.
func (r *ComponentRef) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "component name required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "component URL required")
	}
	return nil
}

// Example represents one demo/sample section on a component page.
type Example struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
}

// PageDetail holds the raw structural content of one component page,
// before table classification. Missing page regions map to empty values,
// never to an error: a partial record is more useful than no record.
type PageDetail struct {
	Title    string     `json:"title"`
	Intro    []string   `json:"intro"`
	Examples []Example  `json:"examples"`
	Tables   []RawTable `json:"tables"`
}

// ComponentRecord is the unit of output: one component page reduced to
// normalized, classified structure. Records are immutable once
// assembled; re-fetching produces a replacement record.
type ComponentRecord struct {
	Name         string            `json:"name"`
	Title        string            `json:"title"`
	Intro        []string          `json:"intro"`
	Props        []ClassifiedTable `json:"props"`
	Events       []ClassifiedTable `json:"events"`
	Methods      []ClassifiedTable `json:"methods"`
	OtherTables  []ClassifiedTable `json:"otherTables"`
	TableSummary map[string]int    `json:"tableSummary"`
	Examples     []Example         `json:"examples"`
	SourceURL    string            `json:"sourceUrl"`
	FetchedAt    time.Time         `json:"fetchedAt"`
}

// Catalog is the aggregate export artifact: every successfully fetched
// component record plus generation metadata. Count always equals
// len(Components).
type Catalog struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Count       int               `json:"count"`
	Components  []ComponentRecord `json:"components"`
}

// CatalogService provides access to structured component documentation.
type CatalogService interface {
	// ListComponents returns every component listed on the index page,
	// in index order. With force, the index page is re-fetched.
	ListComponents(ctx context.Context, force bool) ([]ComponentRef, error)

	// GetComponent fetches and assembles the record for a single
	// component, resolved by case-insensitive name.
	// Returns ENOTFOUND if the name does not resolve.
	GetComponent(ctx context.Context, name string, force bool) (*ComponentRecord, error)

	// SearchComponents returns refs whose name contains the query,
	// case-insensitively. An empty query returns the full list. Never
	// forces a refresh.
	SearchComponents(ctx context.Context, query string) ([]ComponentRef, error)

	// ExportAll assembles every component in index order and writes the
	// catalog to path (or a configured default when path is empty).
	// Individual failures are logged and skipped; returns EEXPORT only
	// when no component succeeded.
	ExportAll(ctx context.Context, force bool, path string) (*Catalog, error)
}

// CatalogWriter persists a catalog as a single artifact. Writes are
// atomic: a crash mid-write never leaves a truncated file at path.
type CatalogWriter interface {
	WriteCatalog(catalog *Catalog, path string) error
}
