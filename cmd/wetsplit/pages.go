package main

import (
	"fmt"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/pdfcpu"
	wsslog "github.com/fwojciec/wetsplit/slog"
	"github.com/fwojciec/wetsplit/sniff"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	data, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}
	if !sniff.IsPDF(data) {
		err := wetsplit.Errorf(wetsplit.EINVALID, "%s is not a PDF", c.File)
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}

	ocr := deps.OCR
	if ocr != nil && deps.Logger != nil {
		ocr = wsslog.NewLoggingOCR(ocr, deps.Logger)
	}
	pages, err := pdfcpu.PageSources(deps.Ctx, data, ocr, pdfcpu.Options{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}

	counts, with := pdfcpu.CountPagesWithText(pages, c.Threshold)
	for i, p := range pages {
		fmt.Fprintf(deps.Stdout, "page %d\t%s\t%d chars", p.PageNr, p.Source, counts[i])
		if p.Err != nil {
			fmt.Fprintf(deps.Stdout, "\t%s", message(p.Err))
		}
		fmt.Fprintln(deps.Stdout)
	}
	fmt.Fprintf(deps.Stdout, "%d of %d pages have text\n", with, len(pages))
	return nil
}
