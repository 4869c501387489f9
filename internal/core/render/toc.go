package render

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Section is one second-level heading in a rendered document.
type Section struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Index int    `json:"index"`
}

var (
	h2Re         = regexp.MustCompile(`(?is)<h2([^>]*)>(.*?)</h2>`)
	idAttrRe     = regexp.MustCompile(`(?i)\sid="([^"]+)"`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
	trailingHRRe = regexp.MustCompile(`(?i)(?:<hr[^>]*>\s*)+$`)
)

// headingSlug derives a stable anchor id from heading text: tags stripped,
// lowercased, punctuation removed, whitespace collapsed to dashes.
func headingSlug(s string) string {
	s = tagRe.ReplaceAllString(strings.ToLower(s), "")
	s = strings.TrimSpace(s)
	s = nonWordRe.ReplaceAllString(s, "")
	return spaceRunRe.ReplaceAllString(s, "-")
}

// ExtractTOC scans rendered HTML for h2 elements and returns them in document
// order. Each entry uses the element's own id attribute when present, else an
// id derived from its text, so it always matches what InjectIDs writes back.
func ExtractTOC(html string) []Section {
	var items []Section
	for i, m := range h2Re.FindAllStringSubmatch(html, -1) {
		attrs, inner := m[1], m[2]

		id := headingSlug(inner)
		if idm := idAttrRe.FindStringSubmatch(attrs); idm != nil {
			id = idm[1]
		}

		text := strings.TrimSpace(tagRe.ReplaceAllString(inner, ""))
		items = append(items, Section{ID: id, Text: text, Index: i})
	}
	return items
}

// InjectIDs ensures every h2 carries an id attribute so anchor links from the
// TOC resolve. Headings that already have an id are left alone.
func InjectIDs(html string) string {
	return h2Re.ReplaceAllStringFunc(html, func(full string) string {
		m := h2Re.FindStringSubmatch(full)
		attrs, inner := m[1], m[2]
		if idAttrRe.MatchString(attrs) {
			return full
		}
		return fmt.Sprintf(`<h2 id="%s"%s>%s</h2>`, headingSlug(inner), attrs, inner)
	})
}

// TrimTrailingHR drops any horizontal rules dangling at the very end of an
// article body.
func TrimTrailingHR(html string) string {
	return trailingHRRe.ReplaceAllString(html, "")
}

// keySectionPatterns ranks heading text for the quick-jump pills, most
// interesting first.
var keySectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)tl;?dr|summary`),
	regexp.MustCompile(`(?i)goals?`),
	regexp.MustCompile(`(?i)why|context|background`),
	regexp.MustCompile(`(?i)how|implementation`),
	regexp.MustCompile(`(?i)checklist`),
	regexp.MustCompile(`(?i)conclusion`),
}

// KeySections picks up to four headings worth surfacing as quick-jump pills,
// preferring summaries, goals, and conclusions, then restores document order.
func KeySections(toc []Section) []Section {
	score := func(text string) int {
		for i, re := range keySectionPatterns {
			if re.MatchString(text) {
				return i
			}
		}
		return len(keySectionPatterns) + 1
	}

	picked := slices.Clone(toc)
	slices.SortStableFunc(picked, func(a, b Section) int {
		return score(a.Text) - score(b.Text)
	})

	if len(picked) > 4 {
		picked = picked[:4]
	}

	slices.SortFunc(picked, func(a, b Section) int {
		return a.Index - b.Index
	})
	return picked
}
