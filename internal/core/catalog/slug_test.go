package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSlug(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		filename string
		want     string
	}{
		{
			name:     "explicit slug wins over filename",
			explicit: "custom-slug",
			filename: "totally-different.mdx",
			want:     "custom-slug",
		},
		{
			name:     "explicit slug is lowercased",
			explicit: "My-Custom-SLUG",
			filename: "file.md",
			want:     "my-custom-slug",
		},
		{
			name:     "whitespace-only explicit falls back to filename",
			explicit: "   ",
			filename: "fallback-name.mdx",
			want:     "fallback-name",
		},
		{
			name:     "filename extension stripped",
			explicit: "",
			filename: "spf-records.md",
			want:     "spf-records",
		},
		{
			name:     "uppercase and spaces collapse to dashes",
			explicit: "",
			filename: "My First Post.mdx",
			want:     "my-first-post",
		},
		{
			name:     "punctuation runs collapse to a single dash",
			explicit: "",
			filename: "what's new?? (2024).mdx",
			want:     "what-s-new-2024",
		},
		{
			name:     "leading and trailing dashes trimmed",
			explicit: "",
			filename: "--draft--.md",
			want:     "draft",
		},
		{
			name:     "directory components ignored",
			explicit: "",
			filename: "content/dispatch/email/DMARC Basics.mdx",
			want:     "dmarc-basics",
		},
		{
			name:     "all punctuation yields empty slug",
			explicit: "",
			filename: "!!!.md",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSlug(tt.explicit, tt.filename))
		})
	}
}

func TestResolveSlugDeterministic(t *testing.T) {
	first := ResolveSlug("", "Some Post (v2).mdx")
	for range 5 {
		assert.Equal(t, first, ResolveSlug("", "Some Post (v2).mdx"))
	}
}
