// Package catalog orchestrates the fetch → parse → classify → assemble
// pipeline across the component index, and implements
// antdocs.CatalogService on top of it.
package catalog

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/antdocs"
)

// Defaults for the documentation site being indexed.
const (
	DefaultBaseURL   = "https://4x.ant.design"
	DefaultIndexPath = "/components/overview-cn/"
)

// Ensure Service implements antdocs.CatalogService at compile time.
var _ antdocs.CatalogService = (*Service)(nil)

// Service implements antdocs.CatalogService. The parsed index and
// assembled records are memoized in memory; a forced refresh replaces
// them. Operations run strictly sequentially: the mutex admits one
// pipeline operation at a time, which also serializes cache store
// access for embedding servers that handle concurrent requests.
type Service struct {
	fetcher antdocs.Fetcher
	parser  antdocs.PageParser
	writer  antdocs.CatalogWriter

	baseURL           string
	indexURL          string
	defaultExportPath string
	logger            *slog.Logger
	now               func() time.Time

	mu      sync.Mutex
	index   []antdocs.ComponentRef
	details map[string]*antdocs.ComponentRecord
}

// Option configures a Service.
type Option func(*Service)

// WithBaseURL sets the documentation site root. The index page is
// expected at DefaultIndexPath under it.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = strings.TrimRight(baseURL, "/")
		s.indexURL = s.baseURL + DefaultIndexPath
	}
}

// WithLogger sets the logger used for per-component export failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithDefaultExportPath sets the artifact path used when ExportAll is
// called with an empty path.
func WithDefaultExportPath(path string) Option {
	return func(s *Service) {
		s.defaultExportPath = path
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new Service.
func NewService(fetcher antdocs.Fetcher, parser antdocs.PageParser, writer antdocs.CatalogWriter, opts ...Option) *Service {
	s := &Service{
		fetcher:  fetcher,
		parser:   parser,
		writer:   writer,
		baseURL:  DefaultBaseURL,
		indexURL: DefaultBaseURL + DefaultIndexPath,
		logger:   slog.New(slog.DiscardHandler),
		// Second precision keeps record timestamps exact across a JSON
		// round-trip of the export artifact.
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Second) },
		details: make(map[string]*antdocs.ComponentRecord),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListComponents returns the component index, fetching and parsing the
// overview page on first use or forced refresh.
func (s *Service) ListComponents(ctx context.Context, force bool) ([]antdocs.ComponentRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureIndex(ctx, force)
}

// GetComponent resolves name against the index and assembles the
// component's record.
func (s *Service) GetComponent(ctx context.Context, name string, force bool) (*antdocs.ComponentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, antdocs.Errorf(antdocs.EINVALID, "component name required")
	}

	index, err := s.ensureIndex(ctx, force)
	if err != nil {
		return nil, err
	}

	ref, err := resolveRef(index, name)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, ref, force)
}

// SearchComponents filters the index by case-insensitive substring
// match on the name. An empty query returns the full index. Never
// forces a refresh.
func (s *Service) SearchComponents(ctx context.Context, query string) ([]antdocs.ComponentRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.ensureIndex(ctx, false)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return index, nil
	}

	results := []antdocs.ComponentRef{}
	for _, ref := range index {
		if strings.Contains(strings.ToLower(ref.Name), query) {
			results = append(results, ref)
		}
	}
	return results, nil
}

// ExportAll assembles every indexed component in order and writes the
// catalog artifact. A component's failure is logged and its record
// omitted; the export fails with EEXPORT only when nothing succeeded,
// in which case no artifact is written.
func (s *Service) ExportAll(ctx context.Context, force bool, path string) (*antdocs.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.ensureIndex(ctx, force)
	if err != nil {
		return nil, err
	}
	if len(index) == 0 {
		return nil, antdocs.Errorf(antdocs.EEXPORT, "no components in index")
	}

	type failure struct {
		name string
		err  error
	}
	successes := []antdocs.ComponentRecord{}
	var failures []failure

	for _, ref := range index {
		rec, err := s.assemble(ctx, ref, force)
		if err != nil {
			failures = append(failures, failure{name: ref.Name, err: err})
			s.logger.Warn("component export failed",
				"name", ref.Name,
				"url", ref.URL,
				"err", err,
			)
			continue
		}
		successes = append(successes, *rec)
	}

	if len(successes) == 0 {
		return nil, antdocs.Errorf(antdocs.EEXPORT, "all %d components failed", len(failures))
	}

	catalog := &antdocs.Catalog{
		GeneratedAt: s.now(),
		Count:       len(successes),
		Components:  successes,
	}

	if path == "" {
		path = s.defaultExportPath
	}
	if err := s.writer.WriteCatalog(catalog, path); err != nil {
		return nil, err
	}

	s.logger.Info("catalog exported",
		"path", path,
		"count", catalog.Count,
		"failed", len(failures),
	)

	return catalog, nil
}

// ensureIndex returns the memoized index, fetching and parsing the
// overview page when absent or forced. Callers must hold s.mu.
func (s *Service) ensureIndex(ctx context.Context, force bool) ([]antdocs.ComponentRef, error) {
	if s.index != nil && !force {
		return s.index, nil
	}
	markup, err := s.fetcher.Fetch(ctx, s.indexURL, force)
	if err != nil {
		return nil, err
	}
	index, err := s.parser.ParseIndex(markup, s.baseURL)
	if err != nil {
		return nil, err
	}
	s.index = index
	return s.index, nil
}

// assemble returns the record for ref, fetching and parsing its page
// unless a memoized record exists. Callers must hold s.mu.
func (s *Service) assemble(ctx context.Context, ref antdocs.ComponentRef, force bool) (*antdocs.ComponentRecord, error) {
	if rec, ok := s.details[ref.URL]; ok && !force {
		return rec, nil
	}
	markup, err := s.fetcher.Fetch(ctx, ref.URL, force)
	if err != nil {
		return nil, err
	}
	detail, err := s.parser.ParseDetail(markup)
	if err != nil {
		return nil, err
	}
	rec := antdocs.AssembleRecord(ref, detail, s.now())
	s.details[ref.URL] = rec
	return rec, nil
}

// resolveRef finds the ref whose name matches exactly
// (case-insensitively). On a miss, a single unambiguous substring match
// is offered as a suggestion; otherwise the lookup fails plainly.
func resolveRef(index []antdocs.ComponentRef, name string) (antdocs.ComponentRef, error) {
	lower := strings.ToLower(name)
	for _, ref := range index {
		if strings.ToLower(ref.Name) == lower {
			return ref, nil
		}
	}

	var candidates []string
	for _, ref := range index {
		if strings.Contains(strings.ToLower(ref.Name), lower) {
			candidates = append(candidates, ref.Name)
		}
	}
	if len(candidates) == 1 {
		return antdocs.ComponentRef{}, antdocs.Errorf(antdocs.ENOTFOUND,
			"component %q not found (did you mean %q?)", name, candidates[0])
	}
	return antdocs.ComponentRef{}, antdocs.Errorf(antdocs.ENOTFOUND, "component %q not found", name)
}
