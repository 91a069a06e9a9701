package pdf

import (
	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/sniff"
)

// Options configures the PDF fallback extractor.
type Options struct {
	// NewRepeatDetector, when set, is called once per document to mark
	// running headers and footers.
	NewRepeatDetector func() wetsplit.RepeatDetector
}

func acceptPDF(doc []byte) ([]byte, bool) {
	return doc, sniff.IsPDF(doc)
}

// NewFallback returns the extractor for PDFs no specific extractor
// claims. It scores below the generic HTML and XML fallbacks since a PDF
// is never accepted by those.
func NewFallback(opts Options) *wetsplit.Record[[]Page] {
	return &wetsplit.Record[[]Page]{
		ID:        "pdf-fallback",
		AcceptsFn: acceptPDF,
		SuitablenessFn: func(doc []byte) (int, []Page, error) {
			pages, err := Layout(doc)
			if err != nil {
				return 0, nil, err
			}
			return wetsplit.ScorePDFFallback, pages, nil
		},
		FragmentsFn: func(pages []Page) ([]wetsplit.Fragment, error) {
			var fo FragmentOptions
			if opts.NewRepeatDetector != nil {
				fo.Repeats = opts.NewRepeatDetector()
			}
			return DocumentFragments(pages, fo)
		},
	}
}
