package mock

import "github.com/fwojciec/wetsplit"

var _ wetsplit.Converter = (*Converter)(nil)

// Converter is a mock implementation of wetsplit.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
