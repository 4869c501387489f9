package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererHTML(t *testing.T) {
	r := New("")

	t.Run("basic markdown", func(t *testing.T) {
		out, err := r.HTML("# Title\n\nsome *emphasis* here\n")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1>Title</h1>")
		assert.Contains(t, out, "<em>emphasis</em>")
	})

	t.Run("gfm tables", func(t *testing.T) {
		out, err := r.HTML("| a | b |\n| - | - |\n| 1 | 2 |\n")
		require.NoError(t, err)
		assert.Contains(t, out, "<table>")
		assert.Contains(t, out, "<td>1</td>")
	})

	t.Run("gfm strikethrough", func(t *testing.T) {
		out, err := r.HTML("~~gone~~\n")
		require.NoError(t, err)
		assert.Contains(t, out, "<del>gone</del>")
	})

	t.Run("fenced code is highlighted", func(t *testing.T) {
		out, err := r.HTML("```go\nfmt.Println(\"hi\")\n```\n")
		require.NoError(t, err)
		assert.Contains(t, out, "<pre")
		assert.Contains(t, out, "Println")
		assert.NotContains(t, out, "```")
	})

	t.Run("raw html passes through", func(t *testing.T) {
		out, err := r.HTML(`<Callout kind="warn">careful</Callout>`)
		require.NoError(t, err)
		assert.Contains(t, out, `<Callout kind="warn">careful</Callout>`)
	})
}

func TestRendererArticle(t *testing.T) {
	r := New("")

	body := `## TL;DR

the short version

## Deep Dive

the long version

---
`

	article, err := r.Article(body)
	require.NoError(t, err)

	require.Len(t, article.TOC, 2)
	assert.Equal(t, "TL;DR", article.TOC[0].Text)
	assert.Equal(t, "Deep Dive", article.TOC[1].Text)

	// Every TOC entry must have a matching anchor in the HTML.
	for _, s := range article.TOC {
		assert.Contains(t, article.HTML, `id="`+s.ID+`"`)
	}

	// The dangling rule at the end is dropped.
	assert.NotContains(t, article.HTML, "<hr")

	require.NotEmpty(t, article.KeySections)
	assert.Equal(t, "TL;DR", article.KeySections[0].Text)
}

func TestNewDefaultsHighlightStyle(t *testing.T) {
	assert.NotNil(t, New(""))
	assert.NotNil(t, New("dracula"))
}
