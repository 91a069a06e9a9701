// Package pdfcpu reads PDF pages with pdfcpu and decides per page whether
// to use the embedded text or to recognize the page images.
package pdfcpu

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/wetsplit"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// DefaultCharThreshold is the number of characters a page needs to count
// as a page with text, about fifty words.
const DefaultCharThreshold = 200

// Source tells where the text of a page came from.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceOCR      Source = "ocr"
)

// PageText is the text of one page. Err is set when the page needed OCR
// and recognition failed or was not available.
type PageText struct {
	PageNr int
	Source Source
	Text   string
	Err    error
}

// Options configures PageSources.
type Options struct {
	// MinChars is the number of non-space characters below which a page
	// counts as having no embedded text. Defaults to 1.
	MinChars int
}

// PageSources returns the text of every page of doc. Pages whose
// embedded text is empty have their images passed to ocr instead.
// Recognition failures are recorded per page and do not stop the walk.
func PageSources(ctx context.Context, doc []byte, ocr wetsplit.OCR, opts Options) ([]PageText, error) {
	if len(doc) == 0 {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "empty PDF")
	}
	minChars := opts.MinChars
	if minChars <= 0 {
		minChars = 1
	}

	pctx, err := api.ReadValidateAndOptimize(bytes.NewReader(doc), model.NewDefaultConfiguration())
	if err != nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "failed to read PDF: %v", err)
	}

	out := make([]PageText, 0, pctx.PageCount)
	for nr := 1; nr <= pctx.PageCount; nr++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := embeddedText(pctx, nr)
		if err != nil {
			return nil, err
		}
		if nonSpace(text) >= minChars {
			out = append(out, PageText{PageNr: nr, Source: SourceEmbedded, Text: text})
			continue
		}
		out = append(out, recognize(ctx, pctx, nr, ocr))
	}
	return out, nil
}

func embeddedText(pctx *model.Context, nr int) (string, error) {
	r, err := pdfcpu.ExtractPageContent(pctx, nr)
	if err != nil {
		return "", wetsplit.Errorf(wetsplit.EINVALID, "failed to read content of page %d: %v", nr, err)
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return streamText(data), nil
}

func recognize(ctx context.Context, pctx *model.Context, nr int, ocr wetsplit.OCR) PageText {
	pt := PageText{PageNr: nr, Source: SourceOCR}
	if ocr == nil {
		pt.Err = wetsplit.Errorf(wetsplit.EUNSUPPORTED, "page %d has no embedded text and no OCR is configured", nr)
		return pt
	}
	images, err := PageImages(pctx, nr)
	if err != nil {
		pt.Err = err
		return pt
	}
	var texts []string
	for _, img := range images {
		text, err := ocr.Recognize(ctx, img)
		if err != nil {
			pt.Err = err
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			texts = append(texts, text)
		}
	}
	pt.Text = strings.Join(texts, "\n")
	return pt
}

// PageImages returns the images drawn on page nr in object order.
func PageImages(pctx *model.Context, nr int) ([]wetsplit.PageImage, error) {
	if pctx.Optimize == nil {
		return nil, nil
	}
	found, err := pdfcpu.ExtractPageImages(pctx, nr, false)
	if err != nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "failed to extract images of page %d: %v", nr, err)
	}
	objNrs := make([]int, 0, len(found))
	for objNr := range found {
		objNrs = append(objNrs, objNr)
	}
	sort.Ints(objNrs)

	out := make([]wetsplit.PageImage, 0, len(objNrs))
	for _, objNr := range objNrs {
		img := found[objNr]
		if img.Reader == nil {
			continue
		}
		data, err := io.ReadAll(img)
		if err != nil {
			return nil, err
		}
		out = append(out, wetsplit.PageImage{PageNr: nr, FileType: img.FileType, Data: data})
	}
	return out, nil
}

// CountPagesWithText returns the trimmed character count of every page
// and the number of pages reaching threshold characters. A threshold of
// 0 means DefaultCharThreshold.
func CountPagesWithText(pages []PageText, threshold int) ([]int, int) {
	if threshold <= 0 {
		threshold = DefaultCharThreshold
	}
	counts := make([]int, len(pages))
	with := 0
	for i, p := range pages {
		counts[i] = utf8.RuneCountInString(strings.TrimSpace(p.Text))
		if counts[i] >= threshold {
			with++
		}
	}
	return counts, with
}

func nonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
