package mock

import "github.com/fwojciec/antdocs"

var _ antdocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of antdocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
