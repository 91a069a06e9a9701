// Package trafilatura removes navigation and other page furniture from
// publication pages using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/wetsplit"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wetsplit.ContentExtractor at compile time.
var _ wetsplit.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the publication text from a page.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{opts: trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*wetsplit.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		contentHTML = buf.String()
	}

	return &wetsplit.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
