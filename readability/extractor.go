// Package readability removes page furniture from publication pages
// using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/wetsplit"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements wetsplit.ContentExtractor at compile time.
var _ wetsplit.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the publication text from a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*wetsplit.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &wetsplit.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
