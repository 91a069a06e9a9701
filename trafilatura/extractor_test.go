package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html lang="nl">
<head>
<title>Besluit van de minister | Overheid.nl</title>
<meta property="og:title" content="Besluit van de minister">
</head>
<body>
<nav><a href="/">Home</a><a href="/zoeken">Zoeken</a><a href="/contact">Contact</a></nav>
<article>
<h1>Besluit van de minister</h1>
<p>De minister heeft besloten de regeling met ingang van 1 januari te wijzigen. Deze wijziging betreft de tarieven voor het komende kalenderjaar en de voorwaarden voor aanvragen.</p>
<p>Aanvragen die voor die datum zijn ingediend worden behandeld volgens de oude regeling, tenzij de aanvrager uitdrukkelijk om toepassing van de nieuwe regeling verzoekt.</p>
</article>
<footer>Copyright Rijksoverheid</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(page)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(page)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "tarieven")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("  ")

		assert.Equal(t, wetsplit.EINVALID, wetsplit.ErrorCode(err))
	})
}
