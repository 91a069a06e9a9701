package goquery_test

import (
	"testing"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func split(t *testing.T, html string) []wetsplit.Fragment {
	t.Helper()
	doc, err := goquery.Parse([]byte(html))
	require.NoError(t, err)
	frags, err := goquery.SplitOfficielePublicaties(doc)
	require.NoError(t, err)
	return frags
}

func TestSplitOfficielePublicaties(t *testing.T) {
	t.Parallel()

	t.Run("uses _p_ marked blocks when present", func(t *testing.T) {
		t.Parallel()

		frags := split(t, `<html><body>
<div id="menu"><p>Menu</p></div>
<div class="stuk">
<div class="_p_ kop"><p>Artikel 1</p></div>
<div class="_p_ al"><p>Deze regeling   treedt in werking</p><p>met ingang van morgen.</p></div>
</div>
</body></html>`)

		require.Len(t, frags, 2)
		assert.Equal(t, "Artikel 1", frags[0].Text)
		assert.Equal(t, "Deze regeling treedt in werking met ingang van morgen.", frags[1].Text)
		assert.Equal(t, "_p_ al", frags[1].Meta.Class)
		assert.Equal(t, "2", frags[1].Meta.Nr)
		assert.True(t, frags[1].Meta.HasHint(wetsplit.HintPBlock))
		assert.Equal(t, wetsplit.RawHTML, frags[1].Intermediate.RawType)
	})

	t.Run("falls back to paragraphs and headings", func(t *testing.T) {
		t.Parallel()

		frags := split(t, `<html><body><article>
<h2>Artikel 3a Toezicht</h2>
<p>Met het toezicht zijn belast de ambtenaren.</p>
<p>Zij <b>mogen</b> inlichtingen vorderen.</p>
</article></body></html>`)

		require.Len(t, frags, 3)
		assert.True(t, frags[0].Meta.HasHint(wetsplit.HintHeader))
		assert.Equal(t, "3a", frags[0].Meta.LastNr)
		assert.Equal(t, "Artikel 3a Toezicht", frags[2].Meta.LastHeader)
		assert.Equal(t, "Zij mogen inlichtingen vorderen.", frags[2].Text)
		assert.False(t, frags[2].Meta.HasHint(wetsplit.HintHeader))
	})

	t.Run("prefers the officiele-publicatie container", func(t *testing.T) {
		t.Parallel()

		frags := split(t, `<html><body>
<article><p>Gerelateerde documenten</p></article>
<div class="officiele-publicatie"><p>Besluit</p></div>
</body></html>`)

		require.Len(t, frags, 1)
		assert.Equal(t, "Besluit", frags[0].Text)
	})

	t.Run("uses body without a known container", func(t *testing.T) {
		t.Parallel()

		frags := split(t, `<html><body><p>Een</p><p> </p><p>Twee</p></body></html>`)

		require.Len(t, frags, 2)
		assert.Equal(t, []string{"Een", "Twee"}, []string{frags[0].Text, frags[1].Text})
	})
}
