package catalog

import "strings"

// wordsPerMinute is the reading speed used for the reading-time estimate.
const wordsPerMinute = 220

// Item is one fully normalized content entry.
type Item struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Updated     string   `json:"updated"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Order       int      `json:"order"`
	Pinned      bool     `json:"pinned"`
	Published   bool     `json:"published"`
	Category    string   `json:"category"`
	Repo        string   `json:"repo,omitempty"`
	URL         string   `json:"url,omitempty"`
	ReadingTime int      `json:"reading_time"`

	// Body is the raw marked-up text after the front matter, retained for
	// rendering. Path is the source file, useful in diagnostics.
	Body string `json:"-"`
	Path string `json:"-"`
}

// HasTag reports whether the item carries the tag, case-insensitively.
func (it Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// normalize maps raw front matter plus derived fields into an Item. Defaults
// follow the data model: title falls back to the slug, description to the
// summary, updated to the date, and absent order to the kind's sentinel. The
// authored date string is passed through untouched; timestamp normalization
// happens at sort time.
func normalize(fm Frontmatter, body, path string, kind Kind, category string) Item {
	slug := ResolveSlug(fm.Slug, path)

	title := fm.Title
	if title == "" {
		title = slug
	}

	description := fm.Description
	if description == "" {
		description = fm.Summary
	}

	updated := fm.Updated
	if updated == "" {
		updated = fm.Date
	}

	order := kind.OrderDefault
	if fm.Order != nil {
		order = *fm.Order
	}

	published := true
	if fm.Published != nil {
		published = *fm.Published
	}

	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}

	return Item{
		Slug:        slug,
		Title:       title,
		Date:        fm.Date,
		Updated:     updated,
		Description: description,
		Tags:        tags,
		Order:       order,
		Pinned:      fm.IsPinned(),
		Published:   published,
		Category:    category,
		Repo:        fm.Repo,
		URL:         fm.URL,
		ReadingTime: readingTime(body),
		Body:        body,
		Path:        path,
	}
}

// readingTime estimates minutes to read at 220 wpm, rounded up, never below
// one. Tokens are whitespace-separated so the count is locale-independent.
func readingTime(body string) int {
	words := len(strings.Fields(body))
	return max(1, (words+wordsPerMinute-1)/wordsPerMinute)
}
