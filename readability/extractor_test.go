package readability_test

import (
	"testing"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the article body", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Verordening afvalstoffen</title></head>
<body>
<div class="menu"><a href="/">Home</a></div>
<article>
<h1>Verordening afvalstoffen</h1>
<p>Het college kan regels stellen over het aanbieden van huishoudelijke afvalstoffen bij de inzamelvoorziening. Deze regels gelden voor alle inwoners van de gemeente.</p>
<p>Het is verboden huishoudelijke afvalstoffen op een andere wijze aan te bieden dan in de daartoe bestemde containers, tenzij het college anders bepaalt.</p>
</article>
</body>
</html>`

		result, err := readability.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Verordening afvalstoffen", result.Title)
		assert.Contains(t, result.ContentHTML, "huishoudelijke afvalstoffen")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract("")

		assert.Equal(t, wetsplit.EINVALID, wetsplit.ErrorCode(err))
	})
}
