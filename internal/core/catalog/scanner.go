package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Uncategorized is the category assigned to files sitting directly under a
// catalog root rather than in a subdirectory.
const Uncategorized = "uncategorized"

// ScanDir returns every Markdown file under rootDir, recursing into
// subdirectories. A missing root is an empty catalog, not an error. Results
// are sorted by path so load order is stable across platforms.
func ScanDir(rootDir string) ([]string, error) {
	if _, err := os.Stat(rootDir); os.IsNotExist(err) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(rootDir), "**/*.{md,mdx}")
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", rootDir, err)
	}

	slices.Sort(matches)

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(rootDir, filepath.FromSlash(m)))
	}
	return paths, nil
}

// CategoryOf returns the first path segment of fullPath below rootDir, or
// Uncategorized when the file sits directly under the root.
func CategoryOf(rootDir, fullPath string) string {
	rel, err := filepath.Rel(rootDir, fullPath)
	if err != nil {
		return Uncategorized
	}

	rel = filepath.ToSlash(rel)
	if i := strings.Index(rel, "/"); i > 0 {
		return rel[:i]
	}
	return Uncategorized
}
