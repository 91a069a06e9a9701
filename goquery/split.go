package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wetsplit"
	"golang.org/x/net/html"
)

// containerSelectors are tried in order; the first present wins.
var containerSelectors = []string{
	`div[class*="officiele-publicatie"]`,
	`div[class*="stuk"]`,
	`div[class*="inhoud"]`,
	`article`,
	`div[id*="content"]`,
}

const (
	paragraphMarker = `[class*="_p_"]`
	blockSelector   = "p, h1, h2, h3, h4"
	headerSelector  = "h1, h2, h3, h4"
)

var leadingNumber = regexp.MustCompile(`^(?:Artikel\s+|Hoofdstuk\s+|§\s*)?([0-9IVXLC]+(?:\.[0-9]+)*[a-z]?)\b`)

// Container returns the content container of an officiële publicatie
// page, falling back to body.
func Container(doc *goquery.Document) *goquery.Selection {
	for _, sel := range containerSelectors {
		if hasSelector(doc.Selection, sel) {
			return doc.Find(sel).First()
		}
	}
	return doc.Find("body").First()
}

// SplitOfficielePublicaties splits an officiële publicatie page into one
// fragment per block. Elements marked with a _p_ class are the blocks
// when present; otherwise paragraphs and headings are.
func SplitOfficielePublicaties(doc *goquery.Document) ([]wetsplit.Fragment, error) {
	container := Container(doc)
	if container.Length() == 0 {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "page has no content container")
	}

	blocks := outermost(container, container.Find(paragraphMarker), paragraphMarker)
	if blocks.Length() == 0 {
		blocks = outermost(container, container.Find(blockSelector), blockSelector)
	}

	var out []wetsplit.Fragment
	var lastHeader, lastNr string
	var err error
	blocks.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := joinedText(s)
		if text == "" {
			return true
		}
		hints := []wetsplit.Hint{wetsplit.HintPBlock}
		if s.Is(headerSelector) {
			hints = append(hints, wetsplit.HintHeader)
			lastHeader = text
			if m := leadingNumber.FindStringSubmatch(text); m != nil {
				lastNr = m[1]
			}
		}
		var raw string
		if raw, err = goquery.OuterHtml(s); err != nil {
			return false
		}
		class, _ := s.Attr("class")
		out = append(out, wetsplit.Fragment{
			Meta: wetsplit.Metadata{
				Hints:      hints,
				Class:      class,
				Nr:         strconv.Itoa(len(out) + 1),
				LastNr:     lastNr,
				LastHeader: lastHeader,
			},
			Intermediate: wetsplit.Intermediate{Raw: raw, RawType: wetsplit.RawHTML},
			Text:         text,
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// outermost keeps the elements of sel that have no ancestor matching
// selector below container.
func outermost(container, sel *goquery.Selection, selector string) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsUntilSelection(container).Filter(selector).Length() == 0
	})
}

// joinedText joins the text nodes below s with single spaces.
func joinedText(s *goquery.Selection) string {
	var parts []string
	for _, n := range s.Nodes {
		var walk func(n *html.Node)
		walk = func(n *html.Node) {
			if n.Type == html.TextNode {
				if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
					parts = append(parts, t)
				}
				return
			}
			if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
				return
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(n)
	}
	return strings.Join(parts, " ")
}
