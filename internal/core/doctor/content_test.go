package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyosj/dispatch/internal/core/catalog"
)

func writeContent(t *testing.T, root string, kind catalog.Kind, rel, frontmatter string) {
	t.Helper()

	path := filepath.Join(root, kind.Dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("---\n%s---\nbody\n", frontmatter)), 0o644))
}

func itemsByStatus(r Result, status Status) []CheckItem {
	var out []CheckItem
	for _, item := range r.Items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

func TestContentCheckMissingRoot(t *testing.T) {
	check := &ContentCheck{Kind: catalog.Posts, Root: t.TempDir()}

	result := check.Run(context.Background())
	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusWarn, result.Items[0].Status)
	assert.Contains(t, result.Items[0].Detail, "catalog is empty")
}

func TestContentCheckHealthyCatalog(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, catalog.Posts, "email/spf.mdx", "title: SPF\ndescription: sender policy\ndate: \"2024-01-01\"\n")
	writeContent(t, root, catalog.Posts, "email/dkim.mdx", "title: DKIM\nsummary: signing mail\ndate: \"2024-02-01\"\n")

	check := &ContentCheck{Kind: catalog.Posts, Root: root}
	result := check.Run(context.Background())

	assert.Equal(t, "posts", result.Name)
	assert.Empty(t, itemsByStatus(result, StatusWarn))
	assert.Empty(t, itemsByStatus(result, StatusFail))

	passes := itemsByStatus(result, StatusPass)
	require.Len(t, passes, 1)
	assert.Equal(t, "2 files", passes[0].Detail)
}

func TestContentCheckFindsProblems(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, catalog.Posts, "a/original.mdx", "title: Original\ndescription: d\nslug: taken\ndate: \"2024-01-01\"\n")
	writeContent(t, root, catalog.Posts, "b/copy.mdx", "title: Copy\ndescription: d\nslug: taken\ndate: \"2024-01-01\"\n")
	writeContent(t, root, catalog.Posts, "a/untitled.mdx", "description: d\ndate: \"2024-01-01\"\n")
	writeContent(t, root, catalog.Posts, "a/undated.mdx", "title: Undated\ndescription: d\n")
	writeContent(t, root, catalog.Posts, "a/bad-date.mdx", "title: Bad\ndate: \"sometime in march\"\n")

	check := &ContentCheck{Kind: catalog.Posts, Root: root}
	result := check.Run(context.Background())

	fails := itemsByStatus(result, StatusFail)
	require.Len(t, fails, 1, "only the second file with the slug fails")
	assert.Contains(t, fails[0].Detail, `slug "taken" already used by`)

	warns := itemsByStatus(result, StatusWarn)
	require.Len(t, warns, 4)

	details := make([]string, 0, len(warns))
	for _, w := range warns {
		details = append(details, w.Detail)
	}
	assert.Contains(t, details, "missing date; sorts as oldest")
	assert.Contains(t, details, `unparseable date "sometime in march"; sorts as oldest`)
	assert.Contains(t, details, `missing title; listings will show "untitled"`)
	assert.Contains(t, details, "missing description; listings will show an empty summary")
}

func TestChecksCoverEveryKind(t *testing.T) {
	checks := Checks(t.TempDir())
	require.Len(t, checks, len(catalog.Kinds))

	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"posts", "labs", "playbooks"}, names)
}

func TestSummary(t *testing.T) {
	results := []Result{
		{Name: "a", Items: []CheckItem{
			{Status: StatusPass},
			{Status: StatusWarn},
		}},
		{Name: "b", Items: []CheckItem{
			{Status: StatusPass},
			{Status: StatusFail},
			{Status: StatusFail},
		}},
	}

	passed, warned, failed := Summary(results)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, warned)
	assert.Equal(t, 2, failed)
}
