package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContentFile(t *testing.T, root, rel string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("body\n"), 0o644))
	return path
}

func TestScanDir(t *testing.T) {
	t.Run("missing root is empty not error", func(t *testing.T) {
		paths, err := ScanDir(filepath.Join(t.TempDir(), "does-not-exist"))
		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("finds md and mdx recursively", func(t *testing.T) {
		root := t.TempDir()
		a := writeContentFile(t, root, "top.md")
		b := writeContentFile(t, root, "email/spf.mdx")
		c := writeContentFile(t, root, "email/deep/nested.md")
		writeContentFile(t, root, "email/notes.txt")
		writeContentFile(t, root, "image.png")

		paths, err := ScanDir(root)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{a, b, c}, paths)
	})

	t.Run("results are sorted", func(t *testing.T) {
		root := t.TempDir()
		writeContentFile(t, root, "zz.md")
		writeContentFile(t, root, "aa.md")
		writeContentFile(t, root, "mm/file.mdx")

		paths, err := ScanDir(root)
		require.NoError(t, err)
		require.Len(t, paths, 3)
		assert.True(t, paths[0] < paths[1] && paths[1] < paths[2])
	})
}

func TestCategoryOf(t *testing.T) {
	root := filepath.Join("content", "dispatch")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"file in subdirectory", filepath.Join(root, "email", "spf.mdx"), "email"},
		{"file nested deeper keeps first segment", filepath.Join(root, "cloud", "aws", "iam.md"), "cloud"},
		{"file directly under root", filepath.Join(root, "hello.md"), Uncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryOf(root, tt.path))
		})
	}
}
