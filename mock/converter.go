package mock

import "github.com/fwojciec/talmud"

var _ talmud.Converter = (*Converter)(nil)

// Converter is a mock implementation of talmud.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
