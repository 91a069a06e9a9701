package split_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decide(t *testing.T, doc []byte) *wetsplit.Decision {
	t.Helper()
	reg, err := split.NewRegistry(split.Options{Boilerplate: split.BoilerplateNone})
	require.NoError(t, err)
	d, err := wetsplit.Decide(reg, doc, wetsplit.DecideOptions{})
	require.NoError(t, err)
	return d
}

func names(d *wetsplit.Decision) []string {
	var out []string
	for _, c := range d.Candidates {
		out = append(out, c.Name)
	}
	return out
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("registers in order with the fallbacks last", func(t *testing.T) {
		t.Parallel()

		reg, err := split.NewRegistry(split.Options{})

		require.NoError(t, err)
		got := reg.Names()
		require.Len(t, got, 23)
		assert.Equal(t, "bwb-xml", got[0])
		assert.Equal(t, []string{"pdf-fallback", "xml-fallback", "html-fallback"}, got[20:])
	})

	t.Run("rejects an unknown boilerplate strategy", func(t *testing.T) {
		t.Parallel()

		_, err := split.NewRegistry(split.Options{Boilerplate: "boilerpipe"})

		assert.Equal(t, wetsplit.EINVALID, wetsplit.ErrorCode(err))
	})
}

func TestDecide(t *testing.T) {
	t.Parallel()

	t.Run("prefers BWB over the XML fallback", func(t *testing.T) {
		t.Parallel()

		d := decide(t, []byte(`<?xml version="1.0"?><toestand><wetgeving><wet-besluit><wettekst><artikel><kop><nr>1</nr></kop><al>Tekst.</al></artikel></wettekst></wet-besluit></wetgeving></toestand>`))

		assert.Equal(t, []string{"bwb-xml", "xml-fallback"}, names(d))
		frags, err := d.Candidates[0].Fragments()
		require.NoError(t, err)
		require.Len(t, frags, 1)
		assert.Equal(t, "Tekst.", frags[0].Text)
	})

	t.Run("routes a zipped Staatscourant page to the HTML extractor", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create("stcrt-2024-1.html")
		require.NoError(t, err)
		_, err = w.Write([]byte(`<html><head><meta name="OVERHEIDop.publicationName" content="Staatscourant"></head><body><div class="stuk"><p>Mededeling</p></div></body></html>`))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		d := decide(t, buf.Bytes())

		best, err := d.Best()
		require.NoError(t, err)
		assert.Equal(t, "op-html-stcrt", best.Name)
		assert.Equal(t, wetsplit.ScoreSpecific, best.Score)
		assert.Contains(t, names(d), "html-fallback")
		assert.NotContains(t, names(d), "op-html-stb")
	})

	t.Run("finds nothing for plain text", func(t *testing.T) {
		t.Parallel()

		d := decide(t, []byte("gewoon tekst"))

		_, err := d.Best()
		assert.Equal(t, wetsplit.ENOTFOUND, wetsplit.ErrorCode(err))
	})
}
