package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/sniff"
)

// Options configures the XML extractors.
type Options struct {
	// OnUnknown receives the tags the flattener had no rule for.
	OnUnknown func(extractor string, tags []UnknownTag)
}

func (o Options) report(name string, tags []UnknownTag) {
	if o.OnUnknown != nil && len(tags) > 0 {
		o.OnUnknown(name, tags)
	}
}

// State is what the XML suitableness rules hand to fragment extraction.
type State struct {
	Doc *etree.Document
	// StartPaths are the elements that matched the winning rule.
	StartPaths []string
}

// rule scores a document when Path finds elements or the root tag equals Root.
type rule struct {
	Path  string
	Root  string
	Score int
}

func acceptXML(doc []byte) ([]byte, bool) {
	return doc, sniff.IsXML(doc)
}

func acceptPatchedXML(doc []byte) ([]byte, bool) {
	patched := sniff.FixASCIIDeclaration(doc)
	return patched, sniff.IsXML(patched)
}

// ruleSuitableness evaluates rules in order; the first match decides.
func ruleSuitableness(rules []rule) func([]byte) (int, *State, error) {
	return func(doc []byte) (int, *State, error) {
		d, err := ParseStripped(doc)
		if err != nil {
			return 0, nil, err
		}
		st := &State{Doc: d}
		root := d.Root()
		for _, p := range rules {
			if p.Root != "" {
				if root.Tag == p.Root {
					st.StartPaths = []string{Path(root)}
					return p.Score, st, nil
				}
				continue
			}
			if found := outermost(d.FindElements(p.Path)); len(found) > 0 {
				for _, e := range found {
					st.StartPaths = append(st.StartPaths, Path(e))
				}
				return p.Score, st, nil
			}
		}
		return wetsplit.ScoreNotThisSchema, st, nil
	}
}

// outermost drops elements nested inside another element of els.
func outermost(els []*etree.Element) []*etree.Element {
	in := make(map[*etree.Element]bool, len(els))
	for _, e := range els {
		in[e] = true
	}
	var out []*etree.Element
	for _, e := range els {
		nested := false
		for p := e.Parent(); p != nil; p = p.Parent() {
			if in[p] {
				nested = true
				break
			}
		}
		if !nested {
			out = append(out, e)
		}
	}
	return out
}

// startPathFragments returns the alineas below each start path, or the
// flattened text of a start element that holds no alineas.
func startPathFragments(name string, opts Options) func(*State) ([]wetsplit.Fragment, error) {
	return func(st *State) ([]wetsplit.Fragment, error) {
		root := st.Doc.Root()
		var out []wetsplit.Fragment
		for _, p := range st.StartPaths {
			node, err := Resolve(root, p)
			if err != nil {
				return nil, err
			}
			als, err := Alineas(node, nil)
			if err != nil {
				return nil, err
			}
			opts.report(name, Unknown(als))
			if len(als) > 0 {
				out = append(out, AlineaFragments(als)...)
				continue
			}
			out = append(out, paragraphFragments(node, name, opts)...)
		}
		return out, nil
	}
}

// paragraphFragments flattens e and emits one fragment per paragraph.
func paragraphFragments(e *etree.Element, name string, opts Options) []wetsplit.Fragment {
	text, unknown := Flatten(e, FlattenOptions{Root: true})
	opts.report(name, unknown)
	path := Path(e)
	var out []wetsplit.Fragment
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		out = append(out, wetsplit.Fragment{
			Meta: wetsplit.Metadata{Hints: []wetsplit.Hint{wetsplit.HintPara}, Path: path},
			Text: para,
		})
	}
	return out
}

func rootTagSuitableness(tag string) func([]byte) (int, *State, error) {
	return ruleSuitableness([]rule{{Root: tag, Score: wetsplit.ScoreSpecific}})
}

func mergedPartFragments(name string, opts Options) func(*State) ([]wetsplit.Fragment, error) {
	return func(st *State) ([]wetsplit.Fragment, error) {
		als, err := Alineas(st.Doc.Root(), nil)
		if err != nil {
			return nil, err
		}
		opts.report(name, Unknown(als))
		return MergedFragments(MergeAlineas(als)), nil
	}
}

// NewBWB returns the extractor for consolidated national legislation
// (root toestand). Fragments are merged per structural part.
func NewBWB(opts Options) *wetsplit.Record[*State] {
	const name = "bwb-xml"
	return &wetsplit.Record[*State]{
		ID:             name,
		AcceptsFn:      acceptXML,
		SuitablenessFn: rootTagSuitableness("toestand"),
		FragmentsFn:    mergedPartFragments(name, opts),
	}
}

// NewCVDR returns the extractor for consolidated local regulations
// (root cvdr). Fragments are merged per structural part.
func NewCVDR(opts Options) *wetsplit.Record[*State] {
	const name = "cvdr-xml"
	return &wetsplit.Record[*State]{
		ID:             name,
		AcceptsFn:      acceptXML,
		SuitablenessFn: rootTagSuitableness("cvdr"),
		FragmentsFn:    mergedPartFragments(name, opts),
	}
}

func newRuleRecord(name string, accepts func([]byte) ([]byte, bool), rules []rule, opts Options) *wetsplit.Record[*State] {
	return &wetsplit.Record[*State]{
		ID:             name,
		AcceptsFn:      accepts,
		SuitablenessFn: ruleSuitableness(rules),
		FragmentsFn:    startPathFragments(name, opts),
	}
}

// NewStcrt returns the extractor for the Staatscourant in XML.
func NewStcrt(opts Options) *wetsplit.Record[*State] {
	return newRuleRecord("op-xml-stcrt", acceptXML, []rule{
		{Path: "//staatscourant//circulaire-tekst/tekst", Score: wetsplit.ScoreSpecific},
		{Path: "//staatscourant//vrije-tekst/tekst", Score: wetsplit.ScoreSpecific},
		{Path: "//staatscourant//zakelijke-mededeling-tekst/tekst", Score: wetsplit.ScoreSpecific},
		{Path: "//staatscourant//regeling-tekst", Score: wetsplit.ScoreSpecific},
		{Path: "//staatscourant", Score: wetsplit.ScorePartial},
		{Root: "stcart", Score: wetsplit.ScorePartial},
	}, opts)
}

// NewStb returns the extractor for the Staatsblad in XML.
func NewStb(opts Options) *wetsplit.Record[*State] {
	return newRuleRecord("op-xml-stb", acceptXML, []rule{
		{Path: "//staatsblad//wettekst", Score: wetsplit.ScoreSpecific},
		{Path: "//staatsblad/verbeterblad/vrije-tekst/tekst", Score: wetsplit.ScoreSpecific},
	}, opts)
}

// NewTrb returns the extractor for the Tractatenblad in XML.
func NewTrb(opts Options) *wetsplit.Record[*State] {
	return newRuleRecord("op-xml-trb", acceptXML, []rule{
		{Path: "//tractatenblad//vrije-tekst", Score: wetsplit.ScoreSpecific},
	}, opts)
}

// NewGmb returns the extractor for the Gemeenteblad in XML.
func NewGmb(opts Options) *wetsplit.Record[*State] {
	return newRuleRecord("op-xml-gmb", acceptXML, []rule{
		{Path: "//gemeenteblad//regeling-tekst", Score: wetsplit.ScoreSpecific},
		{Path: "//gemeenteblad//zakelijke-mededeling-tekst/tekst", Score: wetsplit.ScoreSpecific},
	}, opts)
}

// NewPrb returns the extractor for the Provinciaal blad in XML.
func NewPrb(opts Options) *wetsplit.Record[*State] {
	return newRuleRecord("op-xml-prb", acceptXML, []rule{
		{Path: "//provinciaalblad//regeling-tekst/tekst", Score: wetsplit.ScoreSpecific},
		{Path: "//provinciaalblad//zakelijke-mededeling-tekst/tekst", Score: wetsplit.ScoreSpecific},
		{Path: "//provincieblad//zakelijke-mededeling-tekst/tekst", Score: wetsplit.ScoreSpecific},
	}, opts)
}

// NewWsb returns the extractor for the Waterschapsblad in XML.
func NewWsb(opts Options) *wetsplit.Record[*State] {
	return newRuleRecord("op-xml-wsb", acceptXML, []rule{
		{Path: "//waterschapsblad//zakelijke-mededeling-tekst/tekst", Score: wetsplit.ScoreSpecific},
	}, opts)
}

// NewBgr returns the extractor for the Blad gemeenschappelijke regeling in XML.
func NewBgr(opts Options) *wetsplit.Record[*State] {
	return newRuleRecord("op-xml-bgr", acceptXML, []rule{
		{Path: "//bladgemeenschappelijkeregeling//regeling-tekst", Score: wetsplit.ScoreSpecific},
		{Path: "//bladgemeenschappelijkeregeling//zakelijke-mededeling-tekst/tekst", Score: wetsplit.ScoreSpecific},
	}, opts)
}

// parliamentFragments splits officiele-publicatie documents per
// publication body and falls back to the start paths otherwise.
func parliamentFragments(name string, opts Options) func(*State) ([]wetsplit.Fragment, error) {
	byStart := startPathFragments(name, opts)
	return func(st *State) ([]wetsplit.Fragment, error) {
		if st.Doc.Root().Tag != "officiele-publicatie" {
			return byStart(st)
		}
		als, err := SplitOfficielePublicaties(st.Doc, "")
		if err != nil {
			return nil, err
		}
		opts.report(name, Unknown(als))
		return AlineaFragments(als), nil
	}
}

// NewHandelingen returns the extractor for parliamentary proceedings in XML.
// The US-ASCII declaration some of them carry is patched to UTF-8.
func NewHandelingen(opts Options) *wetsplit.Record[*State] {
	const name = "handelingen-xml"
	return &wetsplit.Record[*State]{
		ID:        name,
		AcceptsFn: acceptPatchedXML,
		SuitablenessFn: ruleSuitableness([]rule{
			{Path: "//handelingen", Score: wetsplit.ScoreSpecific},
			{Root: "handeling", Score: wetsplit.ScoreSpecific},
		}),
		FragmentsFn: parliamentFragments(name, opts),
	}
}

// NewKamer returns the extractor for parliamentary papers and questions in XML.
// The US-ASCII declaration some of them carry is patched to UTF-8.
func NewKamer(opts Options) *wetsplit.Record[*State] {
	const name = "kamer-xml"
	return &wetsplit.Record[*State]{
		ID:        name,
		AcceptsFn: acceptPatchedXML,
		SuitablenessFn: ruleSuitableness([]rule{
			{Root: "kamerwrk", Score: wetsplit.ScoreSpecific},
			{Path: "//kamerstuk//vrije-tekst/tekst", Score: wetsplit.ScoreSpecific},
			{Path: "//kamervragen", Score: wetsplit.ScoreSpecific},
			{Path: "//kamerstuk//stuk", Score: wetsplit.ScorePartial},
			{Root: "vraagdoc", Score: wetsplit.ScorePartial},
		}),
		FragmentsFn: parliamentFragments(name, opts),
	}
}

// NewXMLFallback returns the generic XML extractor. It emits alineas when
// the document has any and flattened paragraphs otherwise.
func NewXMLFallback(opts Options) *wetsplit.Record[*State] {
	const name = "xml-fallback"
	return &wetsplit.Record[*State]{
		ID:        name,
		AcceptsFn: acceptXML,
		SuitablenessFn: func(doc []byte) (int, *State, error) {
			d, err := ParseStripped(doc)
			if err != nil {
				return 0, nil, err
			}
			return wetsplit.ScoreGenericFallback, &State{Doc: d, StartPaths: []string{Path(d.Root())}}, nil
		},
		FragmentsFn: startPathFragments(name, opts),
	}
}
