// Package slog provides logging decorators for antdocs services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/antdocs"
)

// Ensure LoggingCatalogService implements antdocs.CatalogService.
var _ antdocs.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with per-operation
// structured logging.
type LoggingCatalogService struct {
	next   antdocs.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next antdocs.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// ListComponents delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) ListComponents(ctx context.Context, force bool) (refs []antdocs.ComponentRef, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list components",
			"force", force,
			"count", len(refs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListComponents(ctx, force)
}

// GetComponent delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) GetComponent(ctx context.Context, name string, force bool) (rec *antdocs.ComponentRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("get component",
			"name", name,
			"force", force,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetComponent(ctx, name, force)
}

// SearchComponents delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) SearchComponents(ctx context.Context, query string) (refs []antdocs.ComponentRef, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search components",
			"query", query,
			"count", len(refs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchComponents(ctx, query)
}

// ExportAll delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) ExportAll(ctx context.Context, force bool, path string) (catalog *antdocs.Catalog, err error) {
	defer func(begin time.Time) {
		count := 0
		if catalog != nil {
			count = catalog.Count
		}
		s.logger.Info("export all",
			"force", force,
			"path", path,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExportAll(ctx, force, path)
}
