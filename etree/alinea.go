package etree

import (
	"slices"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/wetsplit"
)

// DefaultAlineaTags are the elements that carry running text in BWB, CVDR
// and OP XML.
var DefaultAlineaTags = []string{
	"al", "Al", "tussenkop", "dagtekening", "context.al", "considerans.al", "noot.al", "li",
}

// containerTags are alinea tags that only count when no other alinea tag
// is nested inside them.
var containerTags = map[string]bool{"li": true}

// structuralTags are the ancestors that make up a part id.
var structuralTags = map[string]bool{
	"boek": true, "deel": true, "hoofdstuk": true, "titeldeel": true,
	"afdeling": true, "paragraaf": true, "sub-paragraaf": true, "subparagraaf": true,
	"artikel": true, "lid": true, "bijlage": true, "divisie": true, "circulaire.divisie": true,
	"wijzig-artikel": true, "wijzig-divisie": true, "aanhef": true, "considerans": true,
	"afkondiging": true, "slotformulering": true, "nota-toelichting": true, "enig-artikel": true,
	"verdragtekst": true,
}

// Alinea is one piece of running text found by the alinea walker.
type Alinea struct {
	Path     string
	Tag      string
	Raw      string
	TextFlat string
	PartID   []wetsplit.PartKey
	Unknown  []UnknownTag
}

// Alineas walks start in document order and returns every alinea-bearing
// element below it. Elements inside a returned alinea are not visited
// again. Comments and processing instructions are skipped. A nil tags
// means DefaultAlineaTags.
func Alineas(start *etree.Element, tags []string) ([]Alinea, error) {
	if tags == nil {
		tags = DefaultAlineaTags
	}
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}

	var out []Alinea
	var walk func(e *etree.Element) error
	walk = func(e *etree.Element) error {
		for _, c := range e.ChildElements() {
			if set[c.Tag] && !(containerTags[c.Tag] && hasDescendant(c, set)) {
				a, err := newAlinea(c)
				if err != nil {
					return err
				}
				out = append(out, a)
				continue
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if set[start.Tag] {
		a, err := newAlinea(start)
		if err != nil {
			return nil, err
		}
		return []Alinea{a}, nil
	}
	if err := walk(start); err != nil {
		return nil, err
	}
	return out, nil
}

// AlineasAt runs Alineas from the element at path in doc. An empty path
// starts at the root. Returns EINVALID when path does not resolve.
func AlineasAt(doc *etree.Document, path string, tags []string) ([]Alinea, error) {
	root := doc.Root()
	if root == nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "document has no root element")
	}
	start := root
	if path != "" {
		var err error
		if start, err = Resolve(root, path); err != nil {
			return nil, err
		}
	}
	return Alineas(start, tags)
}

func hasDescendant(e *etree.Element, set map[string]bool) bool {
	for _, c := range e.ChildElements() {
		if (set[c.Tag] && !containerTags[c.Tag]) || hasDescendant(c, set) {
			return true
		}
	}
	return false
}

func newAlinea(e *etree.Element) (Alinea, error) {
	raw, err := Serialize(e)
	if err != nil {
		return Alinea{}, err
	}
	text, unknown := Flatten(e, FlattenOptions{Root: true})
	return Alinea{
		Path:     Path(e),
		Tag:      e.Tag,
		Raw:      raw,
		TextFlat: text,
		PartID:   partID(e),
		Unknown:  unknown,
	}, nil
}

// partID lists the structural ancestors of e, outermost first.
func partID(e *etree.Element) []wetsplit.PartKey {
	var keys []wetsplit.PartKey
	for p := e.Parent(); p != nil && p.Tag != ""; p = p.Parent() {
		if !structuralTags[p.Tag] {
			continue
		}
		keys = append(keys, wetsplit.PartKey{Tag: p.Tag, Label: partLabel(p)})
	}
	slices.Reverse(keys)
	return keys
}

func partLabel(e *etree.Element) string {
	if kop := e.SelectElement("kop"); kop != nil {
		if nr := kop.SelectElement("nr"); nr != nil {
			if s := strings.TrimSpace(innerText(nr)); s != "" {
				return s
			}
		}
	}
	for _, tag := range []string{"lidnr", "nr"} {
		if c := e.SelectElement(tag); c != nil {
			if s := strings.TrimSpace(innerText(c)); s != "" {
				return strings.TrimSuffix(s, ".")
			}
		}
	}
	for _, key := range []string{"nr", "label"} {
		if v := e.SelectAttrValue(key, ""); v != "" {
			return v
		}
	}
	return ""
}

// Part is a run of consecutive alineas sharing a part id.
type Part struct {
	ID    []wetsplit.PartKey
	Texts []string
	Raw   string
}

// Name renders the part id.
func (p Part) Name() string {
	return wetsplit.PartName(p.ID)
}

// MergeAlineas groups consecutive alineas with equal part ids. Empty
// alinea texts are dropped; part order follows document order.
func MergeAlineas(alineas []Alinea) []Part {
	var out []Part
	var raw strings.Builder
	for i, a := range alineas {
		if i == 0 || !slices.Equal(a.PartID, out[len(out)-1].ID) {
			if len(out) > 0 {
				out[len(out)-1].Raw = raw.String()
				raw.Reset()
			}
			out = append(out, Part{ID: a.PartID})
		}
		cur := &out[len(out)-1]
		raw.WriteString(a.Raw)
		if a.TextFlat != "" {
			cur.Texts = append(cur.Texts, a.TextFlat)
		}
	}
	if len(out) > 0 {
		out[len(out)-1].Raw = raw.String()
	}
	return out
}

// MergedFragments turns parts into one fragment each, hinted mergedpart.
// All alinea texts of a part land in that single fragment, joined by
// newlines, rather than one fragment per alinea text. Parts without text
// are skipped. Callers wanting per-alinea output use AlineaFragments.
func MergedFragments(parts []Part) []wetsplit.Fragment {
	var out []wetsplit.Fragment
	for _, p := range parts {
		if len(p.Texts) == 0 {
			continue
		}
		out = append(out, wetsplit.Fragment{
			Meta: wetsplit.Metadata{
				Hints:    []wetsplit.Hint{wetsplit.HintMergedPart},
				PartID:   p.ID,
				PartName: p.Name(),
			},
			Intermediate: wetsplit.Intermediate{Raw: p.Raw, RawType: wetsplit.RawXML},
			Text:         strings.Join(p.Texts, "\n"),
		})
	}
	return out
}

// AlineaFragments turns alineas into one fragment each, hinted alinea.
// Alineas without text are dropped.
func AlineaFragments(alineas []Alinea) []wetsplit.Fragment {
	var out []wetsplit.Fragment
	for _, a := range alineas {
		if a.TextFlat == "" {
			continue
		}
		out = append(out, wetsplit.Fragment{
			Meta: wetsplit.Metadata{
				Hints:    []wetsplit.Hint{wetsplit.HintAlinea},
				PartID:   a.PartID,
				PartName: wetsplit.PartName(a.PartID),
				Path:     a.Path,
			},
			Intermediate: wetsplit.Intermediate{Raw: a.Raw, RawType: wetsplit.RawXML},
			Text:         a.TextFlat,
		})
	}
	return out
}

// Unknown collects the unknown-tag events of alineas.
func Unknown(alineas []Alinea) []UnknownTag {
	counts := make(map[string]int)
	for _, a := range alineas {
		for _, u := range a.Unknown {
			counts[u.Tag] += u.Count
		}
	}
	f := &flattener{unknown: counts}
	return f.unknownTags()
}
