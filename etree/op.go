package etree

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/wetsplit"
)

// bladTags are the publication bodies below officiele-publicatie.
var bladTags = map[string]bool{
	"staatscourant": true, "tractatenblad": true,
	"gemeenteblad": true, "waterschapsblad": true, "provinciaalblad": true, "provincieblad": true,
	"kamervragen": true, "kamerstuk": true, "niet-dossier-stuk": true, "handelingen": true,
}

// SplitOfficielePublicaties walks the children of an officiele-publicatie
// element at start (the root when start is empty) and returns the alineas
// of every publication body. Metadata and the heading block are skipped.
// An unexpected child or a start path that does not resolve is EINVALID.
// A start element that is not an officiele-publicatie yields nothing.
func SplitOfficielePublicaties(doc *etree.Document, start string) ([]Alinea, error) {
	root := doc.Root()
	if root == nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "document has no root element")
	}
	node := root
	if start != "" {
		var err error
		if node, err = Resolve(root, start); err != nil {
			return nil, err
		}
	}
	if node.Tag != "officiele-publicatie" {
		return nil, nil
	}

	var out []Alinea
	for _, c := range node.ChildElements() {
		switch {
		case c.Tag == "metadata", c.Tag == "kop":
			continue
		case bladTags[c.Tag]:
			als, err := Alineas(c, nil)
			if err != nil {
				return nil, err
			}
			out = append(out, als...)
		default:
			return nil, wetsplit.Errorf(wetsplit.EINVALID, "unexpected element %q in officiele-publicatie", c.Tag)
		}
	}
	return out, nil
}
