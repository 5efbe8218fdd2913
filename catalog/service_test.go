package catalog_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/antdocs"
	"github.com/fwojciec/antdocs/catalog"
	"github.com/fwojciec/antdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexURL = catalog.DefaultBaseURL + catalog.DefaultIndexPath

// testEnv wires a Service to mocks serving a five-component index with
// markup keyed by URL.
type testEnv struct {
	service *catalog.Service
	fetched []string
	pages   map[string]string
	written []*antdocs.Catalog
	failing map[string]bool
}

func newTestEnv(t *testing.T, opts ...catalog.Option) *testEnv {
	t.Helper()

	env := &testEnv{
		pages: map[string]string{
			indexURL: "index-markup",
		},
		failing: map[string]bool{},
	}
	for _, name := range []string{"Button", "Icon", "Grid", "Table", "Tabs"} {
		env.pages[componentURL(name)] = "detail-markup:" + name
	}

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string, force bool) (string, error) {
			env.fetched = append(env.fetched, url)
			if env.failing[url] {
				return "", antdocs.Errorf(antdocs.EFETCH, "fetching %s: HTTP 500", url)
			}
			markup, ok := env.pages[url]
			if !ok {
				return "", antdocs.Errorf(antdocs.EFETCH, "fetching %s: HTTP 404", url)
			}
			return markup, nil
		},
	}

	parser := &mock.PageParser{
		ParseIndexFn: func(markup string, baseURL string) ([]antdocs.ComponentRef, error) {
			require.Equal(t, "index-markup", markup)
			return []antdocs.ComponentRef{
				{Name: "Button", URL: componentURL("Button")},
				{Name: "Icon", URL: componentURL("Icon")},
				{Name: "Grid", URL: componentURL("Grid")},
				{Name: "Table", URL: componentURL("Table")},
				{Name: "Tabs", URL: componentURL("Tabs")},
			}, nil
		},
		ParseDetailFn: func(markup string) (*antdocs.PageDetail, error) {
			name := strings.TrimPrefix(markup, "detail-markup:")
			return &antdocs.PageDetail{
				Title: name + " 组件",
				Tables: []antdocs.RawTable{
					{Headers: []string{"参数", "说明", "类型", "默认值"}},
				},
			}, nil
		},
	}

	writer := &mock.CatalogWriter{
		WriteCatalogFn: func(c *antdocs.Catalog, path string) error {
			env.written = append(env.written, c)
			return nil
		},
	}

	opts = append([]catalog.Option{
		catalog.WithClock(func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}),
	}, opts...)
	env.service = catalog.NewService(fetcher, parser, writer, opts...)
	return env
}

func componentURL(name string) string {
	return catalog.DefaultBaseURL + "/components/" + strings.ToLower(name) + "-cn/"
}

func countOf(urls []string, url string) int {
	var n int
	for _, u := range urls {
		if u == url {
			n++
		}
	}
	return n
}

func TestService_ListComponents(t *testing.T) {
	t.Parallel()

	t.Run("fetches index once and memoizes", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		ctx := context.Background()

		first, err := env.service.ListComponents(ctx, false)
		require.NoError(t, err)
		require.Len(t, first, 5)

		second, err := env.service.ListComponents(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, countOf(env.fetched, indexURL))
	})

	t.Run("force refetches the index", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		ctx := context.Background()

		_, err := env.service.ListComponents(ctx, false)
		require.NoError(t, err)
		_, err = env.service.ListComponents(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, 2, countOf(env.fetched, indexURL))
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.failing[indexURL] = true

		_, err := env.service.ListComponents(context.Background(), false)
		require.Error(t, err)
		assert.Equal(t, antdocs.EFETCH, antdocs.ErrorCode(err))
	})
}

func TestService_GetComponent(t *testing.T) {
	t.Parallel()

	t.Run("resolves name case-insensitively", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec, err := env.service.GetComponent(context.Background(), "bUtToN", false)
		require.NoError(t, err)

		assert.Equal(t, "Button", rec.Name)
		assert.Equal(t, "Button 组件", rec.Title)
		assert.Equal(t, componentURL("Button"), rec.SourceURL)
		assert.Equal(t, 1, rec.TableSummary["props"])
		assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), rec.FetchedAt)
	})

	t.Run("memoizes assembled records", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		ctx := context.Background()

		first, err := env.service.GetComponent(ctx, "Button", false)
		require.NoError(t, err)
		second, err := env.service.GetComponent(ctx, "Button", false)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, countOf(env.fetched, componentURL("Button")))
	})

	t.Run("force produces a replacement record", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		ctx := context.Background()

		first, err := env.service.GetComponent(ctx, "Button", false)
		require.NoError(t, err)
		second, err := env.service.GetComponent(ctx, "Button", true)
		require.NoError(t, err)

		assert.NotSame(t, first, second)
		assert.Equal(t, 2, countOf(env.fetched, componentURL("Button")))
	})

	t.Run("unknown name returns ENOTFOUND without fetching a page", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		_, err := env.service.GetComponent(context.Background(), "Carousel", false)
		require.Error(t, err)
		assert.Equal(t, antdocs.ENOTFOUND, antdocs.ErrorCode(err))

		// Only the index page was fetched; no component page was
		// touched, so nothing was cached for the unknown name.
		assert.Equal(t, []string{indexURL}, env.fetched)
	})

	t.Run("unambiguous near-match is suggested", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		_, err := env.service.GetComponent(context.Background(), "Butto", false)
		require.Error(t, err)
		assert.Equal(t, antdocs.ENOTFOUND, antdocs.ErrorCode(err))
		assert.Contains(t, antdocs.ErrorMessage(err), `did you mean "Button"?`)
	})

	t.Run("ambiguous near-match fails plainly", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		// "Tab" is a substring of both Table and Tabs.
		_, err := env.service.GetComponent(context.Background(), "Tab", false)
		require.Error(t, err)
		assert.Equal(t, antdocs.ENOTFOUND, antdocs.ErrorCode(err))
		assert.NotContains(t, antdocs.ErrorMessage(err), "did you mean")
	})

	t.Run("empty name returns EINVALID", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		_, err := env.service.GetComponent(context.Background(), "  ", false)
		require.Error(t, err)
		assert.Equal(t, antdocs.EINVALID, antdocs.ErrorCode(err))
	})
}

func TestService_SearchComponents(t *testing.T) {
	t.Parallel()

	t.Run("empty query returns the full list", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		ctx := context.Background()

		list, err := env.service.ListComponents(ctx, false)
		require.NoError(t, err)
		results, err := env.service.SearchComponents(ctx, "")
		require.NoError(t, err)

		assert.Equal(t, list, results)
		assert.Equal(t, 1, countOf(env.fetched, indexURL))
	})

	t.Run("matches substrings case-insensitively", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		results, err := env.service.SearchComponents(context.Background(), "tab")
		require.NoError(t, err)

		require.Len(t, results, 2)
		assert.Equal(t, "Table", results[0].Name)
		assert.Equal(t, "Tabs", results[1].Name)
	})

	t.Run("no match returns empty sequence", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		results, err := env.service.SearchComponents(context.Background(), "zzz")
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestService_ExportAll(t *testing.T) {
	t.Parallel()

	t.Run("exports every component and writes the artifact", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, catalog.WithDefaultExportPath("/tmp/components.json"))
		cat, err := env.service.ExportAll(context.Background(), false, "")
		require.NoError(t, err)

		assert.Equal(t, 5, cat.Count)
		assert.Len(t, cat.Components, cat.Count)
		require.Len(t, env.written, 1)
		assert.Equal(t, cat, env.written[0])
	})

	t.Run("partial failures are skipped not fatal", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.failing[componentURL("Icon")] = true
		env.failing[componentURL("Grid")] = true

		cat, err := env.service.ExportAll(context.Background(), false, "out.json")
		require.NoError(t, err)

		assert.Equal(t, 3, cat.Count)
		require.Len(t, cat.Components, 3)
		assert.Equal(t, "Button", cat.Components[0].Name)
		assert.Equal(t, "Table", cat.Components[1].Name)
		assert.Equal(t, "Tabs", cat.Components[2].Name)
	})

	t.Run("total failure returns EEXPORT and writes nothing", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		for _, name := range []string{"Button", "Icon", "Grid", "Table", "Tabs"} {
			env.failing[componentURL(name)] = true
		}

		_, err := env.service.ExportAll(context.Background(), false, "out.json")
		require.Error(t, err)
		assert.Equal(t, antdocs.EEXPORT, antdocs.ErrorCode(err))
		assert.Empty(t, env.written)
	})

	t.Run("index failure propagates unchanged", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.failing[indexURL] = true

		_, err := env.service.ExportAll(context.Background(), false, "out.json")
		require.Error(t, err)
		assert.Equal(t, antdocs.EFETCH, antdocs.ErrorCode(err))
		assert.Empty(t, env.written)
	})

	t.Run("count always equals components length", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.failing[componentURL("Tabs")] = true

		cat, err := env.service.ExportAll(context.Background(), false, "out.json")
		require.NoError(t, err)
		assert.Equal(t, len(cat.Components), cat.Count)
	})
}
