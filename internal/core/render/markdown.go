// Package render compiles catalog bodies to HTML and extracts the navigation
// data (table of contents, key sections) the site builds from long-form posts.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultHighlightStyle is the chroma style used when config leaves it unset.
const DefaultHighlightStyle = "monokai"

// Renderer converts Markdown (or MDX treated as Markdown) into HTML with GFM
// tables, strikethrough, and syntax-highlighted code blocks. It is stateless
// per call and safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New builds a renderer with the given chroma highlight style.
func New(highlightStyle string) *Renderer {
	if highlightStyle == "" {
		highlightStyle = DefaultHighlightStyle
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(highlightStyle),
				),
			),
			// Raw HTML and MDX component tags pass through untouched;
			// authored content is trusted.
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// HTML renders a body to HTML. Heading anchors are injected afterwards by
// InjectIDs so the ids match the extracted table of contents.
func (r *Renderer) HTML(body string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Article runs the full long-form pipeline: HTML conversion, heading id
// injection, trailing-rule cleanup, and TOC plus key-section extraction.
func (r *Renderer) Article(body string) (Article, error) {
	raw, err := r.HTML(body)
	if err != nil {
		return Article{}, err
	}

	toc := ExtractTOC(raw)
	return Article{
		HTML:        TrimTrailingHR(InjectIDs(raw)),
		TOC:         toc,
		KeySections: KeySections(toc),
	}, nil
}

// Article is a rendered long-form document.
type Article struct {
	HTML        string    `json:"html"`
	TOC         []Section `json:"toc"`
	KeySections []Section `json:"key_sections"`
}
