// Package pdf reconstructs the reading order of PDF pages and splits
// documents without a more specific extractor into fragments.
package pdf

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"sort"
	"strings"

	"github.com/fwojciec/wetsplit"
	"github.com/ledongthuc/pdf"
)

// Heading sizes relative to the page's body text.
const (
	h1Ratio = 2.0
	h2Ratio = 1.6
	h3Ratio = 1.3
)

var boldMarkers = []string{"bold", "black", "heavy", "semibold", "demi"}

// Run is a piece of text as the content stream draws it.
type Run struct {
	Font string
	Size float64
	X, Y float64
	W    float64
	S    string
}

// Bold reports whether the run's font name looks like a bold face.
func (r Run) Bold() bool {
	name := strings.ToLower(r.Font)
	for _, m := range boldMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// Span is text of a single weight within a line.
type Span struct {
	Text string
	Bold bool
}

// Line is a row of runs sharing a baseline.
type Line struct {
	Y     float64
	Size  float64
	Spans []Span
}

// Text returns the text of the line.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return strings.TrimSpace(b.String())
}

func (l Line) allBold() bool {
	seen := false
	for _, s := range l.Spans {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		if !s.Bold {
			return false
		}
		seen = true
	}
	return seen
}

// Block is a paragraph or heading.
type Block struct {
	Tag   string
	Lines []Line
}

// Page is the laid-out content of one page. Number starts at 1.
type Page struct {
	Number int
	Blocks []Block
}

// Layout reads doc and lays out every page.
func Layout(doc []byte) (pages []Page, err error) {
	if len(doc) == 0 {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "empty PDF")
	}
	// The reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, wetsplit.Errorf(wetsplit.EINVALID, "failed to read PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "failed to read PDF: %v", err)
	}

	n := reader.NumPage()
	pages = make([]Page, 0, n)
	for i := 1; i <= n; i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}
		var runs []Run
		for _, t := range p.Content().Text {
			runs = append(runs, Run{Font: t.Font, Size: t.FontSize, X: t.X, Y: t.Y, W: t.W, S: t.S})
		}
		pages = append(pages, LayoutPage(i, runs))
	}
	return pages, nil
}

// LayoutPage groups runs into lines by baseline, orders the lines top to
// bottom and groups them into blocks. A block starts at a larger vertical
// gap, a change of heading level or a change between all-bold and
// regular lines.
func LayoutPage(nr int, runs []Run) Page {
	lines := groupLines(runs)
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Y > lines[j].Y })

	body := medianSize(lines)
	page := Page{Number: nr}
	var cur *Block
	var prev Line
	for _, l := range lines {
		if l.Text() == "" {
			continue
		}
		tag := headingTag(l.Size, body)
		if cur == nil || cur.Tag != tag || l.allBold() != prev.allBold() ||
			prev.Y-l.Y > 1.8*math.Max(prev.Size, l.Size) {
			page.Blocks = append(page.Blocks, Block{Tag: tag})
			cur = &page.Blocks[len(page.Blocks)-1]
		}
		cur.Lines = append(cur.Lines, l)
		prev = l
	}
	return page
}

func groupLines(runs []Run) []Line {
	var lines []Line
	var cur *Line
	var last Run
	for _, r := range runs {
		if r.S == "" {
			continue
		}
		if cur == nil || math.Abs(r.Y-cur.Y) > 0.3*math.Max(math.Max(r.Size, cur.Size), 1) {
			lines = append(lines, Line{Y: r.Y})
			cur = &lines[len(lines)-1]
		} else if gap := r.X - (last.X + last.W); last.W > 0 && gap > 0.2*r.Size &&
			!strings.HasSuffix(last.S, " ") && !strings.HasPrefix(r.S, " ") {
			appendSpan(cur, " ", last.Bold())
		}
		cur.Size = math.Max(cur.Size, r.Size)
		appendSpan(cur, r.S, r.Bold())
		last = r
	}
	return lines
}

func appendSpan(l *Line, s string, bold bool) {
	if n := len(l.Spans); n > 0 && (l.Spans[n-1].Bold == bold || strings.TrimSpace(s) == "") {
		l.Spans[n-1].Text += s
		return
	}
	l.Spans = append(l.Spans, Span{Text: s, Bold: bold})
}

// medianSize returns the median line size weighted by text length.
func medianSize(lines []Line) float64 {
	type sized struct {
		size  float64
		count int
	}
	var all []sized
	total := 0
	for _, l := range lines {
		n := len([]rune(l.Text()))
		if n == 0 {
			continue
		}
		all = append(all, sized{l.Size, n})
		total += n
	}
	if total == 0 {
		return 0
	}
	sort.Slice(all, func(i, j int) bool { return all[i].size < all[j].size })
	acc := 0
	for _, s := range all {
		acc += s.count
		if 2*acc >= total {
			return s.size
		}
	}
	return all[len(all)-1].size
}

func headingTag(size, body float64) string {
	if body <= 0 {
		return "p"
	}
	switch r := size / body; {
	case r >= h1Ratio:
		return "h1"
	case r >= h2Ratio:
		return "h2"
	case r >= h3Ratio:
		return "h3"
	}
	return "p"
}

// XHTML renders the page as a div of p and h1-h3 elements, with bold
// spans in b elements.
func (p Page) XHTML() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div id="page%d">`, p.Number-1)
	for _, blk := range p.Blocks {
		fmt.Fprintf(&b, "<%s>", blk.Tag)
		for i, l := range blk.Lines {
			if i > 0 {
				b.WriteString("\n")
			}
			for _, s := range l.Spans {
				text := html.EscapeString(s.Text)
				if s.Bold && strings.TrimSpace(s.Text) != "" {
					fmt.Fprintf(&b, "<b>%s</b>", text)
				} else {
					b.WriteString(text)
				}
			}
		}
		fmt.Fprintf(&b, "</%s>", blk.Tag)
	}
	b.WriteString("</div>")
	return b.String()
}
