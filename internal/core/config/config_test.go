package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := Load("", "content")
		require.NoError(t, err)

		assert.Equal(t, "content", cfg.ContentDir)
		assert.Equal(t, "monokai", cfg.Render.HighlightStyle)
		assert.Equal(t, "dark", cfg.Render.TerminalStyle)
		assert.Equal(t, ":8080", cfg.Serve.Addr)
		assert.Equal(t, "dispatch", cfg.Site.Title)
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "content")
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Serve.Addr)
	})
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
site:
  title: "heyosj"
  url: "https://heyosj.com"
render:
  highlight_style: "dracula"
serve:
  addr: ":9090"
`), 0o644))

	cfg, err := Load(path, "/srv/content")
	require.NoError(t, err)

	assert.Equal(t, "heyosj", cfg.Site.Title)
	assert.Equal(t, "https://heyosj.com", cfg.Site.URL)
	assert.Equal(t, "dracula", cfg.Render.HighlightStyle)
	assert.Equal(t, ":9090", cfg.Serve.Addr)

	// Unset keys still get defaults; content dir comes from the flag.
	assert.Equal(t, "dark", cfg.Render.TerminalStyle)
	assert.Equal(t, "/srv/content", cfg.ContentDir)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: [unclosed"), 0o644))

	_, err := Load(path, "content")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.ContentDir = "content"

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("empty content dir", func(t *testing.T) {
		cfg := valid
		cfg.ContentDir = "  "
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content_dir")
	})

	t.Run("relative site url", func(t *testing.T) {
		cfg := valid
		cfg.Site.URL = "/just/a/path"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "site.url")
	})

	t.Run("addr without port separator", func(t *testing.T) {
		cfg := valid
		cfg.Serve.Addr = "8080"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "serve.addr")
	})
}

func TestValidateDeep(t *testing.T) {
	t.Run("missing content dir is allowed", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ContentDir = filepath.Join(t.TempDir(), "not-created-yet")
		assert.NoError(t, cfg.ValidateDeep())
	})

	t.Run("existing directory is allowed", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ContentDir = t.TempDir()
		assert.NoError(t, cfg.ValidateDeep())
	})

	t.Run("regular file is rejected", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		cfg := DefaultConfig()
		cfg.ContentDir = file
		assert.Error(t, cfg.ValidateDeep())
	})
}
