package pdf

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wetsplit"
	"golang.org/x/net/html"
)

// FragmentOptions configures DocumentFragments.
type FragmentOptions struct {
	// Repeats, when set, marks blocks that occurred on an earlier page
	// with the repeated hint. Such blocks never start a section.
	Repeats wetsplit.RepeatDetector
}

type entry struct {
	text     string
	raw      string
	repeated bool
}

// splitter accumulates the blocks of the current section.
type splitter struct {
	out        []wetsplit.Fragment
	buf        []entry
	hint       wetsplit.Hint
	lastHeader string
	// sinceBold counts regular blocks since the last bold trigger, so
	// runs of bold blocks do not each start a section.
	sinceBold int
}

func (s *splitter) marker(h wetsplit.Hint) {
	s.out = append(s.out, wetsplit.Marker(h))
}

// flush emits the buffered blocks. The first gets the pending hint, the
// rest continue the paragraph.
func (s *splitter) flush() {
	first := true
	for _, e := range s.buf {
		if strings.TrimSpace(e.text) == "" {
			continue
		}
		hint := wetsplit.HintPara
		if first && s.hint != "" {
			hint = s.hint
		}
		first = false
		hints := []wetsplit.Hint{hint}
		if e.repeated {
			hints = append(hints, wetsplit.HintRepeated)
		}
		s.out = append(s.out, wetsplit.Fragment{
			Meta:         wetsplit.Metadata{Hints: hints, LastHeader: s.lastHeader},
			Intermediate: wetsplit.Intermediate{Raw: e.raw, RawType: wetsplit.RawHTML},
			Text:         e.text,
		})
	}
	s.buf = s.buf[:0]
	s.hint = ""
}

func (s *splitter) header(text, raw string) {
	s.flush()
	s.lastHeader = text
	s.out = append(s.out, wetsplit.Fragment{
		Meta:         wetsplit.Metadata{Hints: []wetsplit.Hint{wetsplit.HintHeader}, LastHeader: text},
		Intermediate: wetsplit.Intermediate{Raw: raw, RawType: wetsplit.RawHTML},
		Text:         text,
	})
}

// DocumentFragments walks the pages' XHTML and splits it into sections.
// Every page starts with a newpage marker and the document ends with an
// end marker. Headings emit a header fragment and name the section until
// the next heading. A block that opens with bold non-numeric text starts
// a new section whose first fragment carries the bold hint.
func DocumentFragments(pages []Page, opts FragmentOptions) ([]wetsplit.Fragment, error) {
	s := &splitter{sinceBold: 1}
	for _, p := range pages {
		s.flush()
		s.marker(wetsplit.HintNewPage)

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.XHTML()))
		if err != nil {
			return nil, wetsplit.Errorf(wetsplit.EINTERNAL, "failed to parse page %d: %v", p.Number, err)
		}
		// Stray text directly below the page div carries no block structure.
		doc.Find("div").First().Children().Each(func(_ int, blk *goquery.Selection) {
			s.block(blk, opts.Repeats)
		})
		if opts.Repeats != nil {
			opts.Repeats.EndPage()
		}
	}
	s.flush()
	s.marker(wetsplit.HintEnd)
	return s.out, nil
}

func (s *splitter) block(blk *goquery.Selection, repeats wetsplit.RepeatDetector) {
	text := textNodes(blk)
	raw, _ := goquery.OuterHtml(blk)

	if repeats != nil {
		seen := repeats.Seen(text)
		repeats.Add(text)
		if seen {
			s.buf = append(s.buf, entry{text: text, raw: raw, repeated: true})
			return
		}
	}

	switch goquery.NodeName(blk) {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if text != "" {
			s.header(text, raw)
		}
		return
	}

	b := blk.Find("b").First()
	bold := b.Length() > 0 && strings.TrimSpace(b.Text()) != "" && !wetsplit.IsNumeric(b.Text())
	if bold {
		if s.sinceBold > 0 {
			s.flush()
			s.hint = wetsplit.HintBold
		}
		s.sinceBold = 0
	} else {
		s.sinceBold++
	}
	s.buf = append(s.buf, entry{text: text, raw: raw})
}

// textNodes joins the text nodes below s with single spaces.
func textNodes(s *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
