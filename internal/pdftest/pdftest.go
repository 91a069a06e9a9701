// Package pdftest writes small PDF files for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// Text is a line of text drawn at X, Y in Helvetica.
type Text struct {
	X, Y, Size float64
	Bold       bool
	S          string
}

// Page is a single A4 page. JPEG, when set, is drawn as an image
// covering part of the page.
type Page struct {
	Texts        []Text
	JPEG         []byte
	JPEGW, JPEGH int
}

// Build returns a PDF document with the given pages.
func Build(pages ...Page) []byte {
	w := &writer{}
	w.buf.WriteString("%PDF-1.4\n")

	widths := strings.TrimSpace(strings.Repeat("500 ", 95))
	font := func(base string) string {
		return fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [%s] >>", base, widths)
	}

	// Objects 1-4 are fixed; pages follow in groups of three.
	var kids []string
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 5+3*i))
	}
	w.object(1, "<< /Type /Catalog /Pages 2 0 R >>")
	w.object(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	w.object(3, font("Helvetica"))
	w.object(4, font("Helvetica-Bold"))

	for i, p := range pages {
		pageNr, contentNr, imageNr := 5+3*i, 6+3*i, 7+3*i

		var content bytes.Buffer
		for _, t := range p.Texts {
			f := "F1"
			if t.Bold {
				f = "F2"
			}
			fmt.Fprintf(&content, "BT /%s %g Tf %g %g Td (%s) Tj ET\n", f, t.Size, t.X, t.Y, escape(t.S))
		}
		xobjects := ""
		if p.JPEG != nil {
			fmt.Fprintf(&content, "q %d 0 0 %d 72 400 cm /Im1 Do Q\n", p.JPEGW, p.JPEGH)
			xobjects = fmt.Sprintf(" /XObject << /Im1 %d 0 R >>", imageNr)
		}

		w.object(pageNr, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 3 0 R /F2 4 0 R >>%s >> /Contents %d 0 R >>", xobjects, contentNr))
		w.stream(contentNr, "", content.Bytes())
		if p.JPEG != nil {
			w.stream(imageNr, fmt.Sprintf(" /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode", p.JPEGW, p.JPEGH), p.JPEG)
		} else {
			w.object(imageNr, "null")
		}
	}
	return w.finish()
}

type writer struct {
	buf     bytes.Buffer
	offsets map[int]int
	max     int
}

func (w *writer) begin(nr int) {
	if w.offsets == nil {
		w.offsets = make(map[int]int)
	}
	w.offsets[nr] = w.buf.Len()
	w.max = max(w.max, nr)
	fmt.Fprintf(&w.buf, "%d 0 obj\n", nr)
}

func (w *writer) object(nr int, body string) {
	w.begin(nr)
	w.buf.WriteString(body)
	w.buf.WriteString("\nendobj\n")
}

func (w *writer) stream(nr int, dict string, data []byte) {
	w.begin(nr)
	fmt.Fprintf(&w.buf, "<<%s /Length %d >>\nstream\n", dict, len(data))
	w.buf.Write(data)
	w.buf.WriteString("\nendstream\nendobj\n")
}

func (w *writer) finish() []byte {
	xref := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n0000000000 65535 f \n", w.max+1)
	for nr := 1; nr <= w.max; nr++ {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", w.offsets[nr])
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", w.max+1, xref)
	return w.buf.Bytes()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
