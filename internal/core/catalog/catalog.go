package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Kind describes one catalog's loading and ordering rules. The three catalogs
// share all of their mechanics; only these knobs differ.
type Kind struct {
	// Name is the singular kind name used in CLI flags and API routes.
	Name string
	// Dir is the subdirectory under the content root holding this kind.
	Dir string
	// OrderDefault is the sentinel order meaning "no manual preference,
	// sort by date".
	OrderDefault int
	// TitleTieBreak breaks order/date ties alphabetically by title.
	TitleTieBreak bool
	// SortByUpdated prefers the updated field over date for freshness.
	SortByUpdated bool
	// FilterUnpublished drops items with published: false from every query.
	FilterUnpublished bool
	// SeriesTag, when set, names a tag whose members are presented in
	// authored order rather than by relatedness scoring.
	SeriesTag string
}

// The three content kinds. Posts live under nested category directories and
// participate in the email security series; labs hide unpublished drafts and
// break ties by title; playbooks surface freshness via their updated field.
var (
	Posts     = Kind{Name: "post", Dir: "dispatch", OrderDefault: 999, SeriesTag: "email security"}
	Labs      = Kind{Name: "lab", Dir: "labs", OrderDefault: 9999, TitleTieBreak: true, FilterUnpublished: true}
	Playbooks = Kind{Name: "playbook", Dir: "playbooks", OrderDefault: 9999, SortByUpdated: true}
)

// Kinds lists every known kind in display order.
var Kinds = []Kind{Posts, Labs, Playbooks}

// KindByName looks a kind up by its singular name.
func KindByName(name string) (Kind, bool) {
	for _, k := range Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// Catalog is a read-only query surface over one content kind. Every query
// re-reads the filesystem; there is no cross-call cache, so file edits show
// up on the next query without any invalidation logic.
type Catalog struct {
	kind Kind
	root string
}

// New returns a catalog for the given kind rooted at contentRoot.
func New(kind Kind, contentRoot string) *Catalog {
	return &Catalog{kind: kind, root: contentRoot}
}

// Kind returns the catalog's kind descriptor.
func (c *Catalog) Kind() Kind { return c.kind }

func (c *Catalog) dir() string {
	return filepath.Join(c.root, c.kind.Dir)
}

// load scans, parses, and normalizes every file in the catalog. Unreadable
// files are skipped with a warning; duplicate slugs fail the whole load so a
// collision cannot silently shadow a published page.
func (c *Catalog) load() ([]Item, error) {
	dir := c.dir()

	paths, err := ScanDir(dir)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(paths))
	seen := make(map[string]string, len(paths))

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("component", "catalog").Str("path", path).Msg("skipping unreadable content file")
			continue
		}

		fm, body := ParseFrontmatter(string(raw))
		item := normalize(fm, body, path, c.kind, CategoryOf(dir, path))

		if c.kind.FilterUnpublished && !item.Published {
			continue
		}

		if prev, ok := seen[item.Slug]; ok {
			return nil, fmt.Errorf("duplicate %s slug %q: %s and %s", c.kind.Name, item.Slug, prev, path)
		}
		seen[item.Slug] = path

		items = append(items, item)
	}

	return items, nil
}

// freshness is the timestamp used for date-descending ordering. Playbooks
// prefer their updated field; other kinds use the publish date.
func (c *Catalog) freshness(it Item) time.Time {
	if c.kind.SortByUpdated {
		return ParseDate(it.Updated)
	}
	return ParseDate(it.Date)
}

// All returns every listed item in catalog order: order ascending, then
// freshness descending, then (labs only) title. Pinned is not a sort key
// here; it is consulted only by Pinned.
func (c *Catalog) All() ([]Item, error) {
	items, err := c.load()
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		if d := c.freshness(b).Compare(c.freshness(a)); d != 0 {
			return d
		}
		if c.kind.TitleTieBreak {
			return strings.Compare(a.Title, b.Title)
		}
		return 0
	})

	return items, nil
}

// BySlug loads a single item. It probes the direct file paths first, then
// falls back to a full scan matching explicit frontmatter slugs. A missing
// item returns (nil, nil); absence is a contractual signal, not an error.
func (c *Catalog) BySlug(slug string) (*Item, error) {
	for _, name := range []string{slug + ".mdx", slug + ".md"} {
		path := filepath.Join(c.dir(), name)
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		fm, body := ParseFrontmatter(string(raw))
		item := normalize(fm, body, path, c.kind, CategoryOf(c.dir(), path))
		if item.Slug != slug {
			// Frontmatter slug overrides the filename; keep scanning.
			break
		}
		if c.kind.FilterUnpublished && !item.Published {
			return nil, nil
		}
		return &item, nil
	}

	items, err := c.All()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Slug == slug {
			return &items[i], nil
		}
	}
	return nil, nil
}

// ByTag returns items carrying the tag, case-insensitively, in catalog order.
func (c *Catalog) ByTag(tag string) ([]Item, error) {
	items, err := c.All()
	if err != nil {
		return nil, err
	}

	matched := make([]Item, 0)
	for _, it := range items {
		if it.HasTag(tag) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

// Pinned returns up to limit spotlight items, freshest first. When nothing is
// pinned the whole catalog stands in, so a non-empty catalog always yields a
// result.
func (c *Catalog) Pinned(limit int) ([]Item, error) {
	items, err := c.All()
	if err != nil {
		return nil, err
	}

	pinned := make([]Item, 0)
	for _, it := range items {
		if it.Pinned {
			pinned = append(pinned, it)
		}
	}

	source := pinned
	if len(source) == 0 {
		source = items
	}

	c.sortByFreshness(source)

	if limit < len(source) {
		source = source[:limit]
	}
	return source, nil
}

// Latest returns the single freshest item, or nil for an empty catalog.
func (c *Catalog) Latest() (*Item, error) {
	recent, err := c.Recent(1)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, nil
	}
	return &recent[0], nil
}

// Recent returns up to limit items in pure freshness order, ignoring manual
// order preferences.
func (c *Catalog) Recent(limit int) ([]Item, error) {
	items, err := c.All()
	if err != nil {
		return nil, err
	}

	c.sortByFreshness(items)

	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

// Related returns up to limit items related to the one identified by slug.
// Members of the kind's series tag are returned in catalog order, so the
// authored sequence survives. Everything else is scored by shared-tag count
// (case-insensitive), freshest first among equals; zero-score items are
// dropped. An unknown slug yields an empty result.
func (c *Catalog) Related(slug string, limit int) ([]Item, error) {
	items, err := c.All()
	if err != nil {
		return nil, err
	}

	var self *Item
	for i := range items {
		if items[i].Slug == slug {
			self = &items[i]
			break
		}
	}
	if self == nil {
		return nil, nil
	}

	if c.kind.SeriesTag != "" && self.HasTag(c.kind.SeriesTag) {
		series := make([]Item, 0)
		for _, it := range items {
			if it.Slug != slug && it.HasTag(c.kind.SeriesTag) {
				series = append(series, it)
			}
		}
		if limit < len(series) {
			series = series[:limit]
		}
		return series, nil
	}

	tagSet := make(map[string]struct{}, len(self.Tags))
	for _, t := range self.Tags {
		tagSet[strings.ToLower(t)] = struct{}{}
	}

	type scored struct {
		item  Item
		score int
	}
	candidates := make([]scored, 0)
	for _, it := range items {
		if it.Slug == slug {
			continue
		}
		score := 0
		for _, t := range it.Tags {
			if _, ok := tagSet[strings.ToLower(t)]; ok {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{item: it, score: score})
		}
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		if a.score != b.score {
			return b.score - a.score
		}
		return c.freshness(b.item).Compare(c.freshness(a.item))
	})

	related := make([]Item, 0, len(candidates))
	for _, s := range candidates {
		related = append(related, s.item)
	}
	if limit < len(related) {
		related = related[:limit]
	}
	return related, nil
}

func (c *Catalog) sortByFreshness(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return c.freshness(b).Compare(c.freshness(a))
	})
}
