package commands

import (
	"os"
	"path/filepath"

	"github.com/heyosj/dispatch/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	ContentDir string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dispatch", "config.yaml")
}

// DefaultContentDir returns the content root relative to the working
// directory, matching the site repo layout.
func DefaultContentDir() string {
	return "content"
}
