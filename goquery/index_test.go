package goquery_test

import (
	"testing"

	"github.com/fwojciec/antdocs"
	antdocsgoquery "github.com/fwojciec/antdocs/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://4x.ant.design/components/overview-cn/"

const overviewHTML = `
<html><body>
<div class="components-overview">
  <a href="/components/button-cn/">
    <div class="components-overview-card">
      <div class="components-overview-title">Button 按钮</div>
    </div>
  </a>
  <a href="/components/icon-cn/">
    <div class="components-overview-card">
      <div class="components-overview-title">Icon 图标</div>
    </div>
  </a>
  <div class="components-overview-card">
    <div class="components-overview-title">Typography 排版</div>
    <a href="/components/typography-cn/">doc</a>
  </div>
</div>
<ul class="ant-menu">
  <li><a href="/components/button-cn/"><span>Button</span><span>按钮</span></a></li>
  <li><a href="/components/grid-cn/"><span>Grid</span><span>栅格</span></a></li>
  <li><a href="https://other.example.com/components/fake/"><span>External</span></a></li>
  <li><a href="/docs/react/introduce-cn"><span>Intro</span></a></li>
</ul>
</body></html>`

func TestParser_ParseIndex(t *testing.T) {
	t.Parallel()

	parser := antdocsgoquery.NewParser(nil)

	t.Run("extracts cards and menu entries", func(t *testing.T) {
		t.Parallel()

		refs, err := parser.ParseIndex(overviewHTML, baseURL)
		require.NoError(t, err)

		byName := map[string]string{}
		for _, r := range refs {
			byName[r.Name] = r.URL
		}

		assert.Equal(t, "https://4x.ant.design/components/button-cn/", byName["Button"])
		assert.Equal(t, "https://4x.ant.design/components/icon-cn/", byName["Icon"])
		assert.Equal(t, "https://4x.ant.design/components/typography-cn/", byName["Typography"])
		assert.Equal(t, "https://4x.ant.design/components/grid-cn/", byName["Grid"])
	})

	t.Run("dedupes by lowercase name", func(t *testing.T) {
		t.Parallel()

		refs, err := parser.ParseIndex(overviewHTML, baseURL)
		require.NoError(t, err)

		var buttons int
		for _, r := range refs {
			if r.Name == "Button" {
				buttons++
			}
		}
		assert.Equal(t, 1, buttons)
	})

	t.Run("skips external and non-component links", func(t *testing.T) {
		t.Parallel()

		refs, err := parser.ParseIndex(overviewHTML, baseURL)
		require.NoError(t, err)

		for _, r := range refs {
			assert.NotEqual(t, "External", r.Name)
			assert.NotEqual(t, "Intro", r.Name)
			assert.Contains(t, r.URL, "4x.ant.design/components/")
		}
	})

	t.Run("preserves first-occurrence order", func(t *testing.T) {
		t.Parallel()

		refs, err := parser.ParseIndex(overviewHTML, baseURL)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(refs), 4)

		assert.Equal(t, "Button", refs[0].Name)
		assert.Equal(t, "Icon", refs[1].Name)
		assert.Equal(t, "Typography", refs[2].Name)
		assert.Equal(t, "Grid", refs[3].Name)
	})

	t.Run("partial listing is not an error", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body><ul class="ant-menu">
			<li><a href="/components/button-cn/"><span>Button</span></a></li>
		</ul></body></html>`

		refs, err := parser.ParseIndex(markup, baseURL)
		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "Button", refs[0].Name)
	})

	t.Run("missing listing structure returns EPARSE", func(t *testing.T) {
		t.Parallel()

		_, err := parser.ParseIndex("<html><body><h1>Moved</h1></body></html>", baseURL)
		require.Error(t, err)
		assert.Equal(t, antdocs.EPARSE, antdocs.ErrorCode(err))
	})

	t.Run("invalid base URL returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := parser.ParseIndex(overviewHTML, "://nope")
		require.Error(t, err)
		assert.Equal(t, antdocs.EINVALID, antdocs.ErrorCode(err))
	})
}
