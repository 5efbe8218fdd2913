package mock

import "github.com/fwojciec/antdocs"

var _ antdocs.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of antdocs.PageParser.
type PageParser struct {
	ParseIndexFn  func(markup string, baseURL string) ([]antdocs.ComponentRef, error)
	ParseDetailFn func(markup string) (*antdocs.PageDetail, error)
}

func (p *PageParser) ParseIndex(markup string, baseURL string) ([]antdocs.ComponentRef, error) {
	return p.ParseIndexFn(markup, baseURL)
}

func (p *PageParser) ParseDetail(markup string) (*antdocs.PageDetail, error) {
	return p.ParseDetailFn(markup)
}
