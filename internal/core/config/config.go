// Package config handles configuration loading and validation for dispatch.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Render RenderConfig `yaml:"render"`
	Serve  ServeConfig  `yaml:"serve"`

	// ContentDir is set by the caller from flags, not from the config file.
	ContentDir string `yaml:"-"`
}

// SiteConfig describes the site identity used in feeds and page metadata.
type SiteConfig struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
}

// RenderConfig holds rendering options.
type RenderConfig struct {
	// HighlightStyle is the chroma style for HTML code blocks.
	HighlightStyle string `yaml:"highlight_style"`
	// TerminalStyle is the glamour style used by `dispatch show`.
	TerminalStyle string `yaml:"terminal_style"`
}

// ServeConfig holds the HTTP server options.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Title:       "dispatch",
			URL:         "http://localhost:8080",
			Description: "security notes, simply said.",
		},
		Render: RenderConfig{
			HighlightStyle: "monokai",
			TerminalStyle:  "dark",
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

// Load reads configuration from the given path and sets the content root.
// If configPath is empty or doesn't exist, defaults are used as-is.
func Load(configPath, contentDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.ContentDir = contentDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set contentDir since Unmarshal may have cleared it
			cfg.ContentDir = contentDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Render.HighlightStyle == "" {
		c.Render.HighlightStyle = defaults.Render.HighlightStyle
	}
	if c.Render.TerminalStyle == "" {
		c.Render.TerminalStyle = defaults.Render.TerminalStyle
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = defaults.Serve.Addr
	}
	if c.Site.Title == "" {
		c.Site.Title = defaults.Site.Title
	}
	if c.Site.URL == "" {
		c.Site.URL = defaults.Site.URL
	}
}
