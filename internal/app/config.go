package app

import (
	"mdnsbrowse/internal/config"
)

// Output formats for no-TUI mode.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath is an extra config file layered over the user and project files.
	ConfigPath string

	// Output is the record format printed in no-TUI mode.
	Output string

	// Overrides carries values set on the command line. Zero fields keep
	// whatever the config files say.
	Overrides config.BrowserConfig

	// SubTypeSet makes Overrides.Browse.SubType win even when it is empty, so
	// an explicit empty sub-type clears one set in a config file.
	SubTypeSet bool

	// Resolved configuration, filled in by NewApplication.
	BrowserConfig *config.BrowserConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
		Output:     OutputText,
	}
}
