package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("content_dir", c.ContentDir, notEmpty),
		criterio.Run("site.url", c.Site.URL, isAbsoluteURL),
		criterio.Run("serve.addr", c.Serve.Addr, isListenAddr),
	)
}

// ValidateDeep adds filesystem checks on top of Validate. The content root is
// allowed to be missing (empty catalogs), but if present it must be a
// directory.
func (c *Config) ValidateDeep() error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		criterio.Run("content_dir", c.ContentDir, isDirectoryOrNotExist),
	)
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func isAbsoluteURL(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be absolute, got %q", s)
	}
	return nil
}

func isListenAddr(s string) error {
	if s == "" {
		return nil
	}
	if !strings.Contains(s, ":") {
		return fmt.Errorf("must be host:port or :port, got %q", s)
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // empty catalogs
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
