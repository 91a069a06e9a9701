package etree

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/wetsplit"
)

// NewRechtspraak returns the extractor for court decisions and opinions
// (root open-rechtspraak). The summary comes first, then the body with
// section titles as headers and paragraphs as +para.
func NewRechtspraak(opts Options) *wetsplit.Record[*State] {
	const name = "rechtspraak-xml"
	return &wetsplit.Record[*State]{
		ID:             name,
		AcceptsFn:      acceptXML,
		SuitablenessFn: rootTagSuitableness("open-rechtspraak"),
		FragmentsFn: func(st *State) ([]wetsplit.Fragment, error) {
			w := &rechtspraakWalker{name: name, opts: opts}
			root := st.Doc.Root()
			if ii := root.SelectElement("inhoudsindicatie"); ii != nil {
				if err := w.emit(ii, wetsplit.HintPara); err != nil {
					return nil, err
				}
			}
			for _, tag := range []string{"uitspraak", "conclusie"} {
				if body := root.SelectElement(tag); body != nil {
					if err := w.walk(body); err != nil {
						return nil, err
					}
				}
			}
			return w.out, nil
		},
	}
}

type rechtspraakWalker struct {
	name       string
	opts       Options
	lastHeader string
	out        []wetsplit.Fragment
}

func (w *rechtspraakWalker) walk(e *etree.Element) error {
	for _, c := range e.ChildElements() {
		switch c.Tag {
		case "title":
			// Emitted by the enclosing section.
			continue
		case "section", "paragroup":
			if t := c.SelectElement("title"); t != nil {
				if err := w.emit(t, wetsplit.HintHeader); err != nil {
					return err
				}
			}
			if err := w.walk(c); err != nil {
				return err
			}
		case "bridgehead":
			if err := w.emit(c, wetsplit.HintHeader); err != nil {
				return err
			}
		default:
			if err := w.emit(c, wetsplit.HintPara); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *rechtspraakWalker) emit(e *etree.Element, hint wetsplit.Hint) error {
	text, unknown := Flatten(e, FlattenOptions{Root: true})
	w.opts.report(w.name, unknown)
	if text == "" {
		return nil
	}
	raw, err := Serialize(e)
	if err != nil {
		return err
	}
	if hint == wetsplit.HintHeader {
		w.lastHeader = text
	}
	w.out = append(w.out, wetsplit.Fragment{
		Meta: wetsplit.Metadata{
			Hints:      []wetsplit.Hint{hint},
			LastHeader: w.lastHeader,
			Class:      e.Tag,
			Path:       Path(e),
		},
		Intermediate: wetsplit.Intermediate{Raw: raw, RawType: wetsplit.RawXML},
		Text:         text,
	})
	return nil
}
