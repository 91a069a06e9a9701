// Package sniff guesses the container format of raw document bytes.
package sniff

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/wetsplit"
	"golang.org/x/net/html/charset"
)

// htmlWindow is how many leading bytes IsHTML looks at.
const htmlWindow = 1000

var (
	zipMagic = []byte("PK\x03\x04")
	pdfMagic = []byte("%PDF")

	badASCIIDecl  = []byte(`<?xml version="1.0" encoding="US-ASCII"?>`)
	goodASCIIDecl = []byte(`<?xml version="1.0" encoding="UTF-8"?>`)
)

// Check rejects a nil document. A nil slice is how callers signal
// "no document" and must not be mistaken for an empty one.
func Check(doc []byte) error {
	if doc == nil {
		return wetsplit.Errorf(wetsplit.EINVALID, "document bytes required")
	}
	return nil
}

// IsZip reports whether doc starts with a ZIP local file header.
func IsZip(doc []byte) bool {
	return bytes.HasPrefix(doc, zipMagic)
}

// IsPDF reports whether doc starts with the PDF magic.
func IsPDF(doc []byte) bool {
	return bytes.HasPrefix(doc, pdfMagic)
}

// IsHTML reports whether the start of doc contains an HTML doctype or html tag.
func IsHTML(doc []byte) bool {
	head := doc
	if len(head) > htmlWindow {
		head = head[:htmlWindow]
	}
	return bytes.Contains(head, []byte("<!DOCTYPE html")) || bytes.Contains(head, []byte("<html"))
}

// IsXML reports whether doc is well-formed XML that is not HTML or PDF.
// Parse failures yield false.
func IsXML(doc []byte) bool {
	if IsHTML(doc) || IsPDF(doc) {
		return false
	}
	root := parseRoot(doc)
	if root == nil {
		return false
	}
	return !strings.EqualFold(root.Tag, "html")
}

func parseRoot(doc []byte) *etree.Element {
	if len(doc) == 0 {
		return nil
	}
	d := NewXMLDocument()
	if err := d.ReadFromBytes(doc); err != nil {
		return nil
	}
	if WellFormed(d) != nil {
		return nil
	}
	return d.Root()
}

// NewXMLDocument returns an empty document whose read settings decode
// declared charsets and keep duplicate attributes for WellFormed.
func NewXMLDocument() *etree.Document {
	d := etree.NewDocument()
	d.ReadSettings.CharsetReader = charset.NewReaderLabel
	d.ReadSettings.PreserveDuplicateAttrs = true
	return d
}

// WellFormed reports the well-formedness errors the etree reader lets
// through: more than one root element, text outside the root and
// repeated attributes. d must be read with NewXMLDocument settings.
func WellFormed(d *etree.Document) error {
	roots := 0
	for _, tok := range d.Child {
		switch t := tok.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if strings.TrimSpace(strings.TrimPrefix(t.Data, "\ufeff")) != "" {
				return wetsplit.Errorf(wetsplit.EINVALID, "text outside the root element")
			}
		}
	}
	if roots != 1 {
		return wetsplit.Errorf(wetsplit.EINVALID, "xml has %d root elements", roots)
	}
	return duplicateAttrs(d.Root())
}

func duplicateAttrs(e *etree.Element) error {
	seen := make(map[string]bool, len(e.Attr))
	for _, a := range e.Attr {
		k := a.FullKey()
		if seen[k] {
			return wetsplit.Errorf(wetsplit.EINVALID, "attribute %q repeated on <%s>", k, e.FullTag())
		}
		seen[k] = true
	}
	for _, c := range e.ChildElements() {
		if err := duplicateAttrs(c); err != nil {
			return err
		}
	}
	return nil
}

// IsHTMLZip reports whether doc is a ZIP archive with at least one .html entry.
func IsHTMLZip(doc []byte) bool {
	if !IsZip(doc) {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, ".html") {
			return true
		}
	}
	return false
}

// UnzipHTML returns the contents of the first .html entry in a ZIP archive.
// Returns EINVALID for an archive without entries and ENOTFOUND when no
// entry is HTML.
func UnzipHTML(doc []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "not a zip archive: %v", err)
	}
	if len(zr.File) == 0 {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "zip archive has no entries")
	}
	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, ".html") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, wetsplit.Errorf(wetsplit.ENOTFOUND, "zip archive has no .html entry")
}

// UnwrapHTML accepts HTML or an HTML zip. For a zip it returns the unzipped HTML.
func UnwrapHTML(doc []byte) ([]byte, bool) {
	// A stored zip entry shows its HTML in the clear, so check zips first.
	if IsHTMLZip(doc) {
		b, err := UnzipHTML(doc)
		if err != nil {
			return nil, false
		}
		return b, true
	}
	if IsHTML(doc) {
		return doc, true
	}
	return nil, false
}

// FixASCIIDeclaration rewrites the exact declaration
// <?xml version="1.0" encoding="US-ASCII"?> to declare UTF-8. Some
// publications declare US-ASCII while carrying UTF-8 bytes.
func FixASCIIDeclaration(doc []byte) []byte {
	if !bytes.Contains(doc, badASCIIDecl) {
		return doc
	}
	return bytes.ReplaceAll(doc, badASCIIDecl, goodASCIIDecl)
}

// Detect returns the container format of doc.
func Detect(doc []byte) wetsplit.Format {
	switch {
	case IsPDF(doc):
		return wetsplit.FormatPDF
	case IsHTMLZip(doc):
		return wetsplit.FormatHTMLZip
	case IsHTML(doc):
		return wetsplit.FormatHTML
	case IsXML(doc):
		return wetsplit.FormatXML
	default:
		return wetsplit.FormatUnknown
	}
}
