package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/wetsplit"
	main "github.com/fwojciec/wetsplit/cmd/wetsplit"
	"github.com/fwojciec/wetsplit/fs"
	"github.com/fwojciec/wetsplit/internal/pdftest"
	"github.com/fwojciec/wetsplit/mock"
	"github.com/fwojciec/wetsplit/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bwbDoc = `<?xml version="1.0" encoding="UTF-8"?>
<toestand>
  <wetgeving>
    <wet-besluit>
      <wettekst>
        <hoofdstuk>
          <kop><label>Hoofdstuk</label><nr>1</nr><titel>Algemeen</titel></kop>
          <artikel>
            <kop><label>Artikel</label><nr>1</nr></kop>
            <lid><lidnr>1</lidnr><al>Eerste.</al><al>Tweede.</al></lid>
            <lid><lidnr>2.</lidnr><al>Derde.</al></lid>
          </artikel>
        </hoofdstuk>
      </wettekst>
    </wet-besluit>
  </wetgeving>
</toestand>`

const htmlPage = `<html><head><title>Nieuws</title></head><body>
<p>Het kabinet <b>investeert</b> in dijken.</p>
</body></html>`

func newDeps(t *testing.T, files map[string]string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	reg, err := split.NewRegistry(split.Options{Boilerplate: split.BoilerplateNone})
	require.NoError(t, err)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Config:    &main.Config{},
		Registry:  reg,
		Converter: &mock.Converter{ConvertFn: func(html string) (string, error) { return "MD:" + html, nil }},
		ReadFile: func(path string) ([]byte, error) {
			s, ok := files[path]
			if !ok {
				return nil, os.ErrNotExist
			}
			return []byte(s), nil
		},
	}, stdout, stderr
}

func TestSniffCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the format of each file", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, map[string]string{"a.xml": bwbDoc, "b.html": htmlPage})

		err := (&main.SniffCmd{Files: []string{"a.xml", "b.html"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "xml\ta.xml\nhtml\tb.html\n", stdout.String())
	})

	t.Run("missing file is invalid", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t, nil)

		err := (&main.SniffCmd{Files: []string{"nope.xml"}}).Run(deps)

		assert.Equal(t, wetsplit.EINVALID, wetsplit.ErrorCode(err))
		assert.Contains(t, stderr.String(), "does not exist")
	})
}

func TestDecideCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists candidates by score", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, map[string]string{"a.xml": bwbDoc})

		err := (&main.DecideCmd{File: "a.xml"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "     5  bwb-xml\n   500  xml-fallback\n", stdout.String())
	})

	t.Run("first only keeps the best candidate", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, map[string]string{"a.xml": bwbDoc})

		err := (&main.DecideCmd{File: "a.xml", DecisionFlags: main.DecisionFlags{FirstOnly: true}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "     5  bwb-xml\n", stdout.String())
	})

	t.Run("threshold drops the fallback", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, map[string]string{"a.xml": bwbDoc})

		err := (&main.DecideCmd{File: "a.xml", DecisionFlags: main.DecisionFlags{Threshold: 100}}).Run(deps)

		require.NoError(t, err)
		assert.NotContains(t, stdout.String(), "xml-fallback")
	})

	t.Run("reports documents nothing accepts", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, map[string]string{"a.txt": "gewoon tekst"})

		err := (&main.DecideCmd{File: "a.txt"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No suitable extractor for a.txt")
	})
}

func TestFragmentsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints hints part names and text", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, map[string]string{"a.xml": bwbDoc})

		err := (&main.FragmentsCmd{File: "a.xml"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t,
			"[mergedpart] hoofdstuk 1, artikel 1, lid 1\nEerste.\nTweede.\n\n"+
				"[mergedpart] hoofdstuk 1, artikel 1, lid 2\nDerde.\n\n",
			stdout.String())
	})

	t.Run("prints JSON lines", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, map[string]string{"a.xml": bwbDoc})

		err := (&main.FragmentsCmd{File: "a.xml", JSON: true}).Run(deps)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 2)
		var f wetsplit.Fragment
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &f))
		assert.Equal(t, "Derde.", f.Text)
	})

	t.Run("named extractor overrides the decision", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, map[string]string{"a.xml": bwbDoc})

		err := (&main.FragmentsCmd{File: "a.xml", DecisionFlags: main.DecisionFlags{Extractor: "xml-fallback"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "[alinea]")
		assert.NotContains(t, stdout.String(), "[mergedpart]")
	})

	t.Run("unknown extractor is not found", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(t, map[string]string{"a.xml": bwbDoc})

		err := (&main.FragmentsCmd{File: "a.xml", DecisionFlags: main.DecisionFlags{Extractor: "nope"}}).Run(deps)

		assert.Equal(t, wetsplit.ENOTFOUND, wetsplit.ErrorCode(err))
	})

	t.Run("plain text has no suitable extractor", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t, map[string]string{"a.txt": "gewoon tekst"})

		err := (&main.FragmentsCmd{File: "a.txt"}).Run(deps)

		assert.Equal(t, wetsplit.ENOTFOUND, wetsplit.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no suitable extractor")
	})
}

func TestTextCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("joins fragment texts", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, map[string]string{"a.xml": bwbDoc})

		err := (&main.TextCmd{File: "a.xml"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Eerste.\nTweede.\n\nDerde.\n", stdout.String())
	})

	t.Run("markdown converts html fragments and marks headings", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, map[string]string{"a.html": htmlPage})

		err := (&main.TextCmd{File: "a.html", Markdown: true}).Run(deps)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout.String(), "## Nieuws\n\n"), stdout.String())
	})
}

func TestProcessCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes JSONL files into the output directory", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(t, map[string]string{"in/BWBR0001840.xml": bwbDoc, "in/leeg.txt": "tekst"})
		out := filepath.Join(t.TempDir(), "out")

		err := (&main.ProcessCmd{Files: []string{"in/BWBR0001840.xml", "in/leeg.txt"}, Out: out}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 1 documents")
		assert.Contains(t, stdout.String(), "1 failed")
		assert.Contains(t, stderr.String(), "skip in/leeg.txt")

		frags, err := fs.ReadFragments(filepath.Join(out, "BWBR0001840.jsonl"))
		require.NoError(t, err)
		assert.Len(t, frags, 2)
	})

	t.Run("saves to the fragment service", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(t, map[string]string{"a.xml": bwbDoc})
		var saved []*wetsplit.Document
		deps.Fragments = &mock.FragmentService{
			SaveFn: func(_ context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error {
				saved = append(saved, doc)
				return nil
			},
		}

		err := (&main.ProcessCmd{Files: []string{"a.xml"}, DB: true}).Run(deps)

		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, "bwb-xml", saved[0].Extractor)
		assert.Equal(t, wetsplit.FormatXML, saved[0].Format)
	})

	t.Run("requires exactly one destination", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(t, nil)

		err := (&main.ProcessCmd{Files: []string{"a.xml"}}).Run(deps)

		assert.Equal(t, wetsplit.EINVALID, wetsplit.ErrorCode(err))
	})

	t.Run("commits the store after saving", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(t, map[string]string{"a.xml": bwbDoc})
		var dirs []string
		var saved, committed, aborted int
		deps.NewStore = func(dir string) wetsplit.FragmentStore {
			dirs = append(dirs, dir)
			return &mock.FragmentStore{
				SaveFn: func(context.Context, *wetsplit.Document, []wetsplit.Fragment) error {
					saved++
					return nil
				},
				CommitFn: func() error { committed++; return nil },
				AbortFn:  func() error { aborted++; return nil },
			}
		}

		err := (&main.ProcessCmd{Files: []string{"a.xml"}, Out: "out", Concurrency: 1}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"out"}, dirs)
		assert.Equal(t, 1, saved)
		assert.Equal(t, 1, committed)
		assert.Equal(t, 0, aborted)
	})

	t.Run("aborts the store when every input fails", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, map[string]string{"leeg.txt": "tekst"})
		var committed, aborted int
		deps.NewStore = func(string) wetsplit.FragmentStore {
			return &mock.FragmentStore{
				SaveFn: func(context.Context, *wetsplit.Document, []wetsplit.Fragment) error {
					t.Fatal("nothing should be saved")
					return nil
				},
				CommitFn: func() error { committed++; return nil },
				AbortFn:  func() error { aborted++; return nil },
			}
		}

		err := (&main.ProcessCmd{Files: []string{"leeg.txt"}, Out: "out", Concurrency: 1}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 0 documents")
		assert.Equal(t, 0, committed)
		assert.Equal(t, 1, aborted)
	})

	t.Run("keeps earlier output when every input fails", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "out")
		deps, _, _ := newDeps(t, map[string]string{"in/BWBR0001840.xml": bwbDoc})
		require.NoError(t, (&main.ProcessCmd{Files: []string{"in/BWBR0001840.xml"}, Out: out}).Run(deps))

		deps, _, _ = newDeps(t, map[string]string{"in/leeg.txt": "tekst"})
		err := (&main.ProcessCmd{Files: []string{"in/leeg.txt"}, Out: out}).Run(deps)

		require.NoError(t, err)
		frags, err := fs.ReadFragments(filepath.Join(out, "BWBR0001840.jsonl"))
		require.NoError(t, err)
		assert.Len(t, frags, 2)
	})
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("filters by extractor", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, nil)
		deps.Fragments = &mock.FragmentService{
			FindDocumentsFn: func(_ context.Context, filter wetsplit.DocumentFilter) ([]*wetsplit.Document, error) {
				require.NotNil(t, filter.Extractor)
				assert.Equal(t, "bwb-xml", *filter.Extractor)
				return []*wetsplit.Document{{ID: "doc-1", Path: "a.xml", Extractor: "bwb-xml", Fragments: 2}}, nil
			},
		}

		err := (&main.ListCmd{Extractor: "bwb-xml", Limit: 10}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "doc-1")
		assert.Contains(t, stdout.String(), "a.xml")
	})

	t.Run("says when nothing is stored", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, nil)
		deps.Fragments = &mock.FragmentService{
			FindDocumentsFn: func(context.Context, wetsplit.DocumentFilter) ([]*wetsplit.Document, error) {
				return nil, nil
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No documents found")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints document and fragments", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, nil)
		deps.Fragments = &mock.FragmentService{
			FindDocumentByIDFn: func(_ context.Context, id string) (*wetsplit.Document, error) {
				return &wetsplit.Document{ID: id, Path: "a.xml", Format: wetsplit.FormatXML, Extractor: "bwb-xml", Score: 5}, nil
			},
			FindFragmentsFn: func(_ context.Context, id string) ([]wetsplit.Fragment, error) {
				assert.Equal(t, "doc-1", id)
				return []wetsplit.Fragment{
					{Meta: wetsplit.Metadata{Hints: []wetsplit.Hint{wetsplit.HintHeader}}, Text: "Besluit"},
					wetsplit.Marker(wetsplit.HintEnd),
				}, nil
			},
		}

		err := (&main.ShowCmd{ID: "doc-1"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "a.xml (xml, bwb-xml, score 5)\n\n[header]\nBesluit\n\n-- end --\n", stdout.String())
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t, nil)
		deps.Fragments = &mock.FragmentService{
			FindDocumentByIDFn: func(context.Context, string) (*wetsplit.Document, error) {
				return nil, wetsplit.Errorf(wetsplit.ENOTFOUND, "document not found")
			},
		}

		err := (&main.ShowCmd{ID: "x"}).Run(deps)

		assert.Equal(t, wetsplit.ENOTFOUND, wetsplit.ErrorCode(err))
		assert.Contains(t, stderr.String(), "document not found")
	})
}

func TestPagesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("non pdf input is invalid", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(t, map[string]string{"a.xml": bwbDoc})

		err := (&main.PagesCmd{File: "a.xml"}).Run(deps)

		assert.Equal(t, wetsplit.EINVALID, wetsplit.ErrorCode(err))
	})

	t.Run("scanned pages go through the injected OCR", func(t *testing.T) {
		t.Parallel()

		var img bytes.Buffer
		require.NoError(t, jpeg.Encode(&img, image.NewRGBA(image.Rect(0, 0, 8, 8)), nil))
		doc := pdftest.Build(pdftest.Page{
			Texts: []pdftest.Text{{X: 72, Y: 700, Size: 10, S: " "}},
			JPEG:  img.Bytes(), JPEGW: 8, JPEGH: 8,
		})
		deps, stdout, stderr := newDeps(t, map[string]string{"scan.pdf": string(doc)})
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
		deps.OCR = &mock.OCR{RecognizeFn: func(context.Context, wetsplit.PageImage) (string, error) {
			return "Artikel 1 herkend", nil
		}}

		err := (&main.PagesCmd{File: "scan.pdf", Threshold: 5}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "page 1\tocr\t17 chars")
		assert.Contains(t, stdout.String(), "1 of 1 pages have text")
	})
}
