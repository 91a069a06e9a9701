package etree

import (
	"regexp"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

var (
	squeezeSpace  = regexp.MustCompile(`[\s\x{85}\p{Z}]+`)
	newlineSpaces = regexp.MustCompile(`\n +`)
)

// UnknownTag reports a tag the flattener has no rule for. Its text is
// left out of the result.
type UnknownTag struct {
	Tag   string
	Count int
}

// FlattenOptions configures Flatten.
type FlattenOptions struct {
	// BodyTag is the direct child to start at when present. Defaults to body.
	BodyTag string
	// Root starts at the given element regardless of BodyTag.
	Root bool
}

// Flatten renders the text below e the way a browser would lay it out:
// block elements become line or paragraph breaks, inline elements run
// together, and script-like subtrees are dropped. The tree is not modified.
func Flatten(e *etree.Element, opts FlattenOptions) (string, []UnknownTag) {
	work := e.Copy()
	stripNamespace(work)
	removeSubtrees(work)

	start := work
	if !opts.Root {
		tag := opts.BodyTag
		if tag == "" {
			tag = "body"
		}
		if b := work.SelectElement(tag); b != nil {
			start = b
		}
	}

	f := &flattener{unknown: make(map[string]int)}
	f.walk(start)
	return f.text(), f.unknownTags()
}

// FlattenHTML parses HTML and flattens its body.
func FlattenHTML(doc []byte) (string, []UnknownTag, error) {
	d, err := ParseHTML(doc)
	if err != nil {
		return "", nil, err
	}
	root := d.Root()
	if root == nil {
		return "", nil, nil
	}
	s, unknown := Flatten(root, FlattenOptions{})
	return s, unknown, nil
}

// removeSubtrees drops elements whose rule says so. Text following a
// removed element stays in place, so it joins the previous sibling's tail
// or the parent's text.
func removeSubtrees(e *etree.Element) {
	for _, c := range e.ChildElements() {
		if rule, ok := knowledge[c.Tag]; ok && rule.removeSubtree {
			e.RemoveChild(c)
			continue
		}
		removeSubtrees(c)
	}
}

type flattener struct {
	collect []string
	unknown map[string]int
}

func (f *flattener) walk(e *etree.Element) {
	rule, known := knowledge[e.Tag]
	if !known {
		f.unknown[e.Tag]++
	} else if rule.prepend != "" {
		f.collect = append(f.collect, rule.prepend)
	}

	// Text before the first child element belongs to e; text after a
	// child element is that child's tail.
	owner := e.Tag
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			f.addText(t.Data, owner)
		case *etree.Element:
			f.walk(t)
			owner = t.Tag
		}
	}

	if known && rule.append != "" {
		f.collect = append(f.collect, rule.append)
	}
}

func (f *flattener) addText(s, owner string) {
	rule, ok := knowledge[owner]
	if !ok || !rule.useContents {
		return
	}
	f.collect = append(f.collect, squeezeSpace.ReplaceAllString(s, " "))
}

func (f *flattener) text() string {
	var b strings.Builder
	var pending strings.Builder
	for _, s := range f.collect {
		if strings.TrimSpace(s) == "" {
			pending.WriteString(s)
			continue
		}
		if pending.Len() > 0 {
			switch n := strings.Count(pending.String(), "\n"); {
			case n >= 2:
				b.WriteString("\n\n")
			case n == 1:
				b.WriteString("\n")
			default:
				b.WriteString(" ")
			}
			pending.Reset()
		}
		b.WriteString(s)
	}
	out := newlineSpaces.ReplaceAllString(strings.TrimSpace(b.String()), "\n")
	return strings.TrimSpace(out)
}

func (f *flattener) unknownTags() []UnknownTag {
	if len(f.unknown) == 0 {
		return nil
	}
	out := make([]UnknownTag, 0, len(f.unknown))
	for tag, n := range f.unknown {
		out = append(out, UnknownTag{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}
