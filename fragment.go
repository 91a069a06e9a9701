package wetsplit

import "strings"

// Hint is a structural annotation on a fragment.
type Hint string

// Hints emitted by the extractors.
const (
	// HintNewPage marks the start of a PDF page.
	HintNewPage Hint = "newpage"
	// HintHeader marks a heading fragment.
	HintHeader Hint = "header"
	// HintPara marks a paragraph continuing the current section.
	HintPara Hint = "+para"
	// HintBold marks a fragment that starts with a bold run.
	HintBold Hint = "bold"
	// HintEnd marks the end of a PDF document.
	HintEnd Hint = "end"
	// HintMergedPart marks the text of one structural part.
	HintMergedPart Hint = "mergedpart"
	// HintPBlock marks one HTML block element.
	HintPBlock Hint = "pblock"
	// HintAlinea marks one XML alinea.
	HintAlinea Hint = "alinea"
	// HintRepeated marks page furniture that recurs across PDF pages.
	HintRepeated Hint = "repeated"
)

// PartKey identifies one level of structural nesting, e.g. {artikel 3}.
type PartKey struct {
	Tag   string `json:"tag"`
	Label string `json:"label,omitempty"`
}

// PartName renders keys as "hoofdstuk 1, artikel 3".
func PartName(keys []PartKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if k.Label == "" {
			parts = append(parts, k.Tag)
			continue
		}
		parts = append(parts, k.Tag+" "+k.Label)
	}
	return strings.Join(parts, ", ")
}

// Metadata describes where a fragment came from.
type Metadata struct {
	Hints      []Hint            `json:"hints,omitempty"`
	PartID     []PartKey         `json:"partId,omitempty"`
	PartName   string            `json:"partName,omitempty"`
	LastHeader string            `json:"lastHeader,omitempty"`
	Class      string            `json:"class,omitempty"`
	Path       string            `json:"path,omitempty"`
	Nr         string            `json:"nr,omitempty"`
	LastNr     string            `json:"lastNr,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// HasHint reports whether h is among the metadata hints.
func (m Metadata) HasHint(h Hint) bool {
	for _, x := range m.Hints {
		if x == h {
			return true
		}
	}
	return false
}

// RawType names the format of an intermediate representation.
type RawType string

// RawType values.
const (
	RawXML      RawType = "xml"
	RawHTML     RawType = "html"
	RawMarkdown RawType = "markdown"
)

// Intermediate is the source markup a fragment was derived from.
type Intermediate struct {
	Raw     string  `json:"raw,omitempty"`
	RawType RawType `json:"rawType,omitempty"`
}

// Fragment is one unit of extracted text.
type Fragment struct {
	Meta         Metadata     `json:"meta"`
	Intermediate Intermediate `json:"intermediate"`
	Text         string       `json:"text"`
}

// IsMarker reports whether the fragment carries only hints and no text.
func (f Fragment) IsMarker() bool {
	return f.Text == ""
}

// Marker returns a text-less fragment carrying a single hint.
func Marker(h Hint) Fragment {
	return Fragment{Meta: Metadata{Hints: []Hint{h}}}
}

// Format is the detected container format of a document.
type Format string

// Format values.
const (
	FormatXML     Format = "xml"
	FormatHTML    Format = "html"
	FormatPDF     Format = "pdf"
	FormatHTMLZip Format = "htmlzip"
	FormatUnknown Format = "unknown"
)
