package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heyosj/dispatch/internal/core/catalog"
)

// ContentCheck inspects one catalog's files for the problems the loaders
// deliberately absorb: duplicate slugs, unparseable dates, and missing titles.
// The query layer never fails a listing over these; this is where they become
// visible to the author.
type ContentCheck struct {
	Kind catalog.Kind
	Root string
}

func (c *ContentCheck) Name() string { return c.Kind.Name + "s" }

func (c *ContentCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	dir := filepath.Join(c.Root, c.Kind.Dir)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		result.Items = append(result.Items, CheckItem{
			Label:  "content root",
			Status: StatusWarn,
			Detail: fmt.Sprintf("%s does not exist; catalog is empty", dir),
		})
		return result
	}

	paths, err := catalog.ScanDir(dir)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "content root",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "content root",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d files", len(paths)),
	})

	epoch := time.Unix(0, 0).UTC()
	seen := make(map[string]string, len(paths))

	for _, path := range paths {
		rel, _ := filepath.Rel(c.Root, path)

		raw, err := os.ReadFile(path)
		if err != nil {
			result.Items = append(result.Items, CheckItem{
				Label:  rel,
				Status: StatusFail,
				Detail: fmt.Sprintf("unreadable: %v", err),
			})
			continue
		}

		fm, _ := catalog.ParseFrontmatter(string(raw))
		slug := catalog.ResolveSlug(fm.Slug, path)

		if prev, ok := seen[slug]; ok {
			result.Items = append(result.Items, CheckItem{
				Label:  rel,
				Status: StatusFail,
				Detail: fmt.Sprintf("slug %q already used by %s", slug, prev),
			})
		} else {
			seen[slug] = rel
		}

		if fm.Title == "" {
			result.Items = append(result.Items, CheckItem{
				Label:  rel,
				Status: StatusWarn,
				Detail: fmt.Sprintf("missing title; listings will show %q", slug),
			})
		}

		if fm.Description == "" && fm.Summary == "" {
			result.Items = append(result.Items, CheckItem{
				Label:  rel,
				Status: StatusWarn,
				Detail: "missing description; listings will show an empty summary",
			})
		}

		switch {
		case strings.TrimSpace(fm.Date) == "":
			result.Items = append(result.Items, CheckItem{
				Label:  rel,
				Status: StatusWarn,
				Detail: "missing date; sorts as oldest",
			})
		case catalog.ParseDate(fm.Date).Equal(epoch):
			result.Items = append(result.Items, CheckItem{
				Label:  rel,
				Status: StatusWarn,
				Detail: fmt.Sprintf("unparseable date %q; sorts as oldest", fm.Date),
			})
		}
	}

	return result
}

// Checks builds the content check list for every kind under root.
func Checks(root string) []Check {
	checks := make([]Check, 0, len(catalog.Kinds))
	for _, k := range catalog.Kinds {
		checks = append(checks, &ContentCheck{Kind: k, Root: root})
	}
	return checks
}
