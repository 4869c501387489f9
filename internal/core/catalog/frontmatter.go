// Package catalog loads, normalizes, and queries the file-backed content
// catalogs (posts, labs, playbooks).
package catalog

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds metadata parsed from a content file's YAML front matter.
// All fields are best-effort: missing or malformed frontmatter produces zero
// values and the caller supplies defaults.
type Frontmatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Summary     string   `yaml:"summary"`
	Date        string   `yaml:"date"`
	Updated     string   `yaml:"updated"`
	Slug        string   `yaml:"slug"`
	Tags        []string `yaml:"tags"`
	Order       *int     `yaml:"order"`
	Pinned      bool     `yaml:"pinned"`
	Featured    bool     `yaml:"featured"`
	Favorite    bool     `yaml:"favorite"`
	Published   *bool    `yaml:"published"`
	Repo        string   `yaml:"repo"`
	URL         string   `yaml:"url"`
}

// IsPinned consolidates the legacy spotlight aliases. Older files use
// "featured" or "favorite" instead of "pinned"; any truthy alias wins.
func (fm Frontmatter) IsPinned() bool {
	return fm.Pinned || fm.Featured || fm.Favorite
}

// ParseFrontmatter splits file content into YAML front matter and body text.
// Front matter must be delimited by "---" on its own line at the start of the
// file. A file with no front matter block is treated as all body with empty
// metadata. A block without a closing delimiter consumes the whole file.
func ParseFrontmatter(content string) (Frontmatter, string) {
	var fm Frontmatter

	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return fm, content
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			_ = yaml.Unmarshal([]byte(strings.Join(lines[1:i], "\n")), &fm)
			return fm, strings.Join(lines[i+1:], "\n")
		}
	}

	// No closing delimiter; treat the remainder as metadata.
	_ = yaml.Unmarshal([]byte(strings.Join(lines[1:], "\n")), &fm)
	return fm, ""
}
