// Package tmpl provides template rendering for content scaffolds.
package tmpl

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"
	"time"
)

var nonSlugRe = regexp.MustCompile(`[^a-z0-9\s-]`)

// slugify converts free text to a kebab-case identifier.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugRe.ReplaceAllString(s, "")
	s = regexp.MustCompile(`\s+`).ReplaceAllString(s, "-")
	return strings.Trim(regexp.MustCompile(`-+`).ReplaceAllString(s, "-"), "-")
}

var funcs = template.FuncMap{
	"slug":  slugify,
	"join":  strings.Join,
	"today": func() string { return time.Now().Format("2006-01-02") },
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - slug: Convert free text to a kebab-case identifier
//   - join: Join string slice with separator (e.g., join .Tags ", ")
//   - today: Current date as YYYY-MM-DD
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
