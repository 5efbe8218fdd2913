package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/antdocs"
	"github.com/fwojciec/antdocs/mock"
	antdocsslog "github.com/fwojciec/antdocs/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCatalogService(t *testing.T) {
	t.Parallel()

	t.Run("logs operation with count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.CatalogService{
			ListComponentsFn: func(ctx context.Context, force bool) ([]antdocs.ComponentRef, error) {
				return []antdocs.ComponentRef{{Name: "Button", URL: "u"}}, nil
			},
		}
		svc := antdocsslog.NewLoggingCatalogService(next, logger)

		refs, err := svc.ListComponents(context.Background(), false)
		require.NoError(t, err)
		assert.Len(t, refs, 1)
		assert.Contains(t, buf.String(), "list components")
		assert.Contains(t, buf.String(), "count=1")
	})

	t.Run("delegates and preserves errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.CatalogService{
			GetComponentFn: func(ctx context.Context, name string, force bool) (*antdocs.ComponentRecord, error) {
				return nil, antdocs.Errorf(antdocs.ENOTFOUND, "component %q not found", name)
			},
		}
		svc := antdocsslog.NewLoggingCatalogService(next, logger)

		_, err := svc.GetComponent(context.Background(), "Nope", true)
		require.Error(t, err)
		assert.Equal(t, antdocs.ENOTFOUND, antdocs.ErrorCode(err))
		assert.Contains(t, buf.String(), "get component")
		assert.Contains(t, buf.String(), "name=Nope")
	})
}
