// Package etree implements tree-level helpers and the XML extractors on
// top of github.com/beevik/etree: namespace stripping, lxml-style element
// paths, text flattening and the selective-path alinea walker.
package etree

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/sniff"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Parse parses XML bytes. Non UTF-8 declared encodings are decoded.
func Parse(doc []byte) (*etree.Document, error) {
	if doc == nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "document bytes required")
	}
	d := sniff.NewXMLDocument()
	if err := d.ReadFromBytes(doc); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	if d.Root() == nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "xml has no root element")
	}
	if err := sniff.WellFormed(d); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseStripped parses XML bytes and removes all namespaces.
func ParseStripped(doc []byte) (*etree.Document, error) {
	d, err := Parse(doc)
	if err != nil {
		return nil, err
	}
	stripNamespace(&d.Element)
	return d, nil
}

// StripNamespace returns a copy of doc with namespace prefixes removed from
// every element and attribute, and the namespace URIs that were declared.
// Stripping an already stripped document is a no-op.
func StripNamespace(doc *etree.Document) (*etree.Document, []string) {
	out := doc.Copy()
	uris := stripNamespace(&out.Element)
	return out, uris
}

func stripNamespace(root *etree.Element) []string {
	seen := make(map[string]bool)
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		e.Space = ""
		attrs := e.Attr[:0]
		for _, a := range e.Attr {
			if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
				seen[a.Value] = true
				continue
			}
			a.Space = ""
			attrs = append(attrs, a)
		}
		e.Attr = attrs
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(root)

	uris := make([]string, 0, len(seen))
	for u := range seen {
		uris = append(uris, u)
	}
	sort.Strings(uris)
	return uris
}

// ParseHTML parses HTML leniently into an etree document rooted at html,
// with head and body as the parser creates them. Comments and doctypes
// are dropped.
func ParseHTML(doc []byte) (*etree.Document, error) {
	if doc == nil {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "document bytes required")
	}
	enc, _, _ := charset.DetermineEncoding(doc, "")
	decoded, err := enc.NewDecoder().Bytes(doc)
	if err != nil {
		decoded = doc
	}
	n, err := html.Parse(bytes.NewReader(decoded))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	d := etree.NewDocument()
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			convertHTML(c, &d.Element)
		}
	}
	return d, nil
}

func convertHTML(n *html.Node, parent *etree.Element) {
	switch n.Type {
	case html.ElementNode:
		el := parent.CreateElement(strings.ToLower(n.Data))
		for _, a := range n.Attr {
			if a.Namespace != "" || strings.ContainsAny(a.Key, ": ") {
				continue
			}
			el.CreateAttr(a.Key, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			convertHTML(c, el)
		}
	case html.TextNode:
		parent.CreateText(n.Data)
	}
}

// isTop reports whether e has no element parent.
func isTop(e *etree.Element) bool {
	p := e.Parent()
	return p == nil || p.Tag == ""
}

// tagName is the tag as written in paths.
func tagName(e *etree.Element) string {
	return e.FullTag()
}

// Path returns the position of e as an lxml-style path such as
// /body/al[2]. A step gets an index only when its parent has more than one
// child element with the same tag.
func Path(e *etree.Element) string {
	var steps []string
	for cur := e; cur != nil; cur = cur.Parent() {
		if isTop(cur) {
			steps = append(steps, tagName(cur))
			break
		}
		steps = append(steps, step(cur))
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return "/" + strings.Join(steps, "/")
}

func step(e *etree.Element) string {
	tag := tagName(e)
	count, idx := 0, 0
	for _, s := range e.Parent().ChildElements() {
		if tagName(s) != tag {
			continue
		}
		count++
		if s == e {
			idx = count
		}
	}
	if count < 2 {
		return tag
	}
	return tag + "[" + strconv.Itoa(idx) + "]"
}

// Resolve finds the element at path, as produced by Path, below and
// including root. Returns EINVALID when nothing is there.
func Resolve(root *etree.Element, path string) (*etree.Element, error) {
	steps := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if path == "" || len(steps) == 0 {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "empty path")
	}
	tag, idx, err := parseStep(steps[0])
	if err != nil {
		return nil, err
	}
	if tagName(root) != tag || idx > 1 {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "did not find %s", path)
	}
	cur := root
	for _, s := range steps[1:] {
		tag, idx, err := parseStep(s)
		if err != nil {
			return nil, err
		}
		var next *etree.Element
		n := 0
		for _, c := range cur.ChildElements() {
			if tagName(c) != tag {
				continue
			}
			n++
			if n == idx || idx == 0 {
				next = c
				break
			}
		}
		if next == nil {
			return nil, wetsplit.Errorf(wetsplit.EINVALID, "did not find %s", path)
		}
		cur = next
	}
	return cur, nil
}

func parseStep(s string) (string, int, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		if s == "" {
			return "", 0, wetsplit.Errorf(wetsplit.EINVALID, "empty path step")
		}
		return s, 0, nil
	}
	if !strings.HasSuffix(s, "]") {
		return "", 0, wetsplit.Errorf(wetsplit.EINVALID, "malformed path step %q", s)
	}
	n, err := strconv.Atoi(s[open+1 : len(s)-1])
	if err != nil || n < 1 {
		return "", 0, wetsplit.Errorf(wetsplit.EINVALID, "malformed path step %q", s)
	}
	return s[:open], n, nil
}

// Serialize renders e and its subtree, without its tail text.
func Serialize(e *etree.Element) (string, error) {
	d := etree.NewDocument()
	d.SetRoot(e.Copy())
	return d.WriteToString()
}

// innerText concatenates all text below e.
func innerText(e *etree.Element) string {
	var b strings.Builder
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				b.WriteString(t.Data)
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(e)
	return b.String()
}
