package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/etree"
	"github.com/fwojciec/wetsplit/sniff"
)

// Options configures the HTML extractors.
type Options struct {
	// ContentExtractor strips page furniture before the generic fallback
	// flattens a page. Nil flattens the whole body.
	ContentExtractor wetsplit.ContentExtractor
	// OnUnknown receives the tags the flattener had no rule for.
	OnUnknown func(extractor string, tags []etree.UnknownTag)
}

// State is the parsed page the HTML extractors share between
// suitableness and fragment extraction.
type State struct {
	Doc  *goquery.Document
	HTML []byte
}

func parse(doc []byte) (*State, error) {
	d, err := Parse(doc)
	if err != nil {
		return nil, err
	}
	return &State{Doc: d, HTML: doc}, nil
}

// publicationSuitableness scores 5 when the page declares one of names
// as its publication name.
func publicationSuitableness(names ...string) func([]byte) (int, *State, error) {
	return func(doc []byte) (int, *State, error) {
		st, err := parse(doc)
		if err != nil {
			return 0, nil, err
		}
		pname := PublicationName(st.Doc)
		for _, n := range names {
			if pname == n {
				return wetsplit.ScoreSpecific, st, nil
			}
		}
		return wetsplit.ScoreNotThisSchema, st, nil
	}
}

func blockFragments(st *State) ([]wetsplit.Fragment, error) {
	return SplitOfficielePublicaties(st.Doc)
}

func newPublicationRecord(name string, publications ...string) *wetsplit.Record[*State] {
	return &wetsplit.Record[*State]{
		ID:             name,
		AcceptsFn:      sniff.UnwrapHTML,
		SuitablenessFn: publicationSuitableness(publications...),
		FragmentsFn:    blockFragments,
	}
}

// NewStcrt returns the extractor for the Staatscourant in HTML.
func NewStcrt() *wetsplit.Record[*State] {
	return newPublicationRecord("op-html-stcrt", PublicationStaatscourant)
}

// NewStb returns the extractor for the Staatsblad in HTML.
func NewStb() *wetsplit.Record[*State] {
	return newPublicationRecord("op-html-stb", PublicationStaatsblad)
}

// NewGmb returns the extractor for the Gemeenteblad in HTML.
func NewGmb() *wetsplit.Record[*State] {
	return newPublicationRecord("op-html-gmb", PublicationGemeenteblad)
}

// NewTrb returns the extractor for the Tractatenblad in HTML.
func NewTrb() *wetsplit.Record[*State] {
	return newPublicationRecord("op-html-trb", PublicationTractatenblad)
}

// NewPrb returns the extractor for the Provinciaal blad in HTML. Both
// spellings of the publication name occur.
func NewPrb() *wetsplit.Record[*State] {
	return newPublicationRecord("op-html-prb", PublicationProvincieblad, PublicationProvinciaalBlad)
}

// NewWsb returns the extractor for the Waterschapsblad in HTML.
func NewWsb() *wetsplit.Record[*State] {
	return newPublicationRecord("op-html-wsb", PublicationWaterschapsblad)
}

// NewBgr returns the extractor for the Blad gemeenschappelijke regeling in HTML.
func NewBgr() *wetsplit.Record[*State] {
	return newPublicationRecord("op-html-bgr", PublicationGemeenschappelijk)
}

// NewKamer returns the extractor for parliamentary papers and questions in HTML.
func NewKamer() *wetsplit.Record[*State] {
	return newPublicationRecord("kamer-html",
		PublicationKamervragen, PublicationKamervragenZonder, PublicationKamerstuk)
}

// NewHTMLFallback returns the generic HTML extractor. It optionally
// strips page furniture, flattens what is left and emits one fragment
// per paragraph, preceded by the page title as a header.
func NewHTMLFallback(opts Options) *wetsplit.Record[*State] {
	const name = "html-fallback"
	return &wetsplit.Record[*State]{
		ID:        name,
		AcceptsFn: sniff.UnwrapHTML,
		SuitablenessFn: func(doc []byte) (int, *State, error) {
			st, err := parse(doc)
			if err != nil {
				return 0, nil, err
			}
			return wetsplit.ScoreGenericFallback, st, nil
		},
		FragmentsFn: func(st *State) ([]wetsplit.Fragment, error) {
			return fallbackFragments(name, st, opts)
		},
	}
}

func fallbackFragments(name string, st *State, opts Options) ([]wetsplit.Fragment, error) {
	title := strings.TrimSpace(st.Doc.Find("title").First().Text())
	content := st.HTML

	if opts.ContentExtractor != nil {
		// Extraction failures leave the whole page to the flattener.
		if res, err := opts.ContentExtractor.Extract(string(st.HTML)); err == nil && strings.TrimSpace(res.ContentHTML) != "" {
			content = []byte(res.ContentHTML)
			if res.Title != "" {
				title = res.Title
			}
		}
	}

	text, unknown, err := etree.FlattenHTML(content)
	if err != nil {
		return nil, err
	}
	if opts.OnUnknown != nil && len(unknown) > 0 {
		opts.OnUnknown(name, unknown)
	}

	var out []wetsplit.Fragment
	if title != "" {
		out = append(out, wetsplit.Fragment{
			Meta: wetsplit.Metadata{Hints: []wetsplit.Hint{wetsplit.HintHeader}, LastHeader: title},
			Text: title,
		})
	}
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" || para == title {
			continue
		}
		out = append(out, wetsplit.Fragment{
			Meta: wetsplit.Metadata{Hints: []wetsplit.Hint{wetsplit.HintPara}, LastHeader: title},
			Text: para,
		})
	}
	return out, nil
}
