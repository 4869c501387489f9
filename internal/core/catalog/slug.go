package catalog

import (
	"path/filepath"
	"regexp"
	"strings"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// ResolveSlug derives the canonical identifier for a content item. An explicit
// frontmatter slug wins (lowercased, otherwise unmodified); authors are
// responsible for its validity. Otherwise the slug is derived from the file
// name: extension stripped, lowercased, runs of non-alphanumerics collapsed to
// a single dash, dashes trimmed from both ends.
//
// Deterministic for the same inputs. Does not consult other files, so
// collisions across files are possible; the loader detects those.
func ResolveSlug(explicit, filename string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return strings.ToLower(s)
	}

	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	s := nonAlnumRun.ReplaceAllString(strings.ToLower(base), "-")
	return strings.Trim(s, "-")
}
