// Package split wires every extractor into the default registry.
package split

import (
	"log/slog"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/bloom"
	"github.com/fwojciec/wetsplit/etree"
	"github.com/fwojciec/wetsplit/goquery"
	"github.com/fwojciec/wetsplit/pdf"
	"github.com/fwojciec/wetsplit/readability"
	wsslog "github.com/fwojciec/wetsplit/slog"
	"github.com/fwojciec/wetsplit/trafilatura"
)

// Boilerplate selects how the generic HTML fallback strips page furniture.
type Boilerplate string

const (
	BoilerplateTrafilatura Boilerplate = "trafilatura"
	BoilerplateReadability Boilerplate = "readability"
	BoilerplateNone        Boilerplate = "none"
)

// Options configures NewRegistry.
type Options struct {
	// Boilerplate defaults to BoilerplateTrafilatura.
	Boilerplate Boilerplate
	// MarkRepeated marks running headers and footers in PDFs.
	MarkRepeated bool
	// Logger receives unknown tag reports. Nil discards them.
	Logger *slog.Logger
}

// Expected lines per PDF for the repeat detector.
const repeatCapacity = 10000

// ContentExtractor returns the boilerplate remover b names.
func ContentExtractor(b Boilerplate) (wetsplit.ContentExtractor, error) {
	switch b {
	case "", BoilerplateTrafilatura:
		return trafilatura.NewExtractor(), nil
	case BoilerplateReadability:
		return readability.NewExtractor(), nil
	case BoilerplateNone:
		return nil, nil
	}
	return nil, wetsplit.Errorf(wetsplit.EINVALID, "unknown boilerplate strategy %q", b)
}

// NewRegistry returns a registry holding every extractor. Specific
// extractors come first and the fallbacks last.
func NewRegistry(opts Options) (*wetsplit.Registry, error) {
	ce, err := ContentExtractor(opts.Boilerplate)
	if err != nil {
		return nil, err
	}

	var onUnknown func(string, []etree.UnknownTag)
	if opts.Logger != nil {
		onUnknown = wsslog.UnknownTagReporter(opts.Logger)
	}
	xmlOpts := etree.Options{OnUnknown: onUnknown}
	htmlOpts := goquery.Options{ContentExtractor: ce, OnUnknown: onUnknown}

	var pdfOpts pdf.Options
	if opts.MarkRepeated {
		pdfOpts.NewRepeatDetector = func() wetsplit.RepeatDetector {
			return bloom.NewRepeatDetector(repeatCapacity, 0.001)
		}
	}

	return wetsplit.NewRegistry(
		etree.NewBWB(xmlOpts),
		etree.NewCVDR(xmlOpts),

		etree.NewStcrt(xmlOpts),
		etree.NewStb(xmlOpts),
		etree.NewTrb(xmlOpts),
		etree.NewGmb(xmlOpts),
		etree.NewPrb(xmlOpts),
		etree.NewWsb(xmlOpts),
		etree.NewBgr(xmlOpts),

		goquery.NewStcrt(),
		goquery.NewStb(),
		goquery.NewGmb(),
		goquery.NewTrb(),
		goquery.NewPrb(),
		goquery.NewWsb(),
		goquery.NewBgr(),

		etree.NewHandelingen(xmlOpts),
		etree.NewKamer(xmlOpts),
		goquery.NewKamer(),

		etree.NewRechtspraak(xmlOpts),

		pdf.NewFallback(pdfOpts),
		etree.NewXMLFallback(xmlOpts),
		goquery.NewHTMLFallback(htmlOpts),
	)
}
