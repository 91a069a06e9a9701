package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wetsplit"
	"golang.org/x/net/html/charset"
)

// Publication names as they appear in OVERHEIDop.publicationName.
const (
	PublicationStaatscourant     = "Staatscourant"
	PublicationStaatsblad        = "Staatsblad"
	PublicationGemeenteblad      = "Gemeenteblad"
	PublicationTractatenblad     = "Tractatenblad"
	PublicationProvincieblad     = "Provincieblad"
	PublicationProvinciaalBlad   = "Provinciaal blad"
	PublicationWaterschapsblad   = "Waterschapsblad"
	PublicationGemeenschappelijk = "Blad gemeenschappelijke regeling"
	PublicationKamervragen       = "Kamervragen (Aanhangsel)"
	PublicationKamervragenZonder = "Kamervragen zonder antwoord"
	PublicationKamerstuk         = "Kamerstuk"
)

// Parse parses HTML bytes, decoding them according to their meta charset.
func Parse(doc []byte) (*goquery.Document, error) {
	if doc == nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "document bytes required")
	}
	r, err := charset.NewReader(bytes.NewReader(doc), "text/html")
	if err != nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "failed to decode HTML: %v", err)
	}
	d, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "failed to parse HTML: %v", err)
	}
	return d, nil
}

// PublicationName returns the content of the OVERHEIDop.publicationName
// meta tag, or "" when the page has none.
func PublicationName(doc *goquery.Document) string {
	name := ""
	doc.Find(`meta[name="OVERHEIDop.publicationName"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if content, exists := s.Attr("content"); exists {
			name = strings.TrimSpace(content)
			return false
		}
		return true
	})
	return name
}

// hasSelector checks if the selection contains at least one element matching the selector.
func hasSelector(s *goquery.Selection, selector string) bool {
	return s.Find(selector).Length() > 0
}
