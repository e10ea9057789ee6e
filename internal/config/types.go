package config

import (
	"time"
)

// BrowserConfig is the top-level configuration structure for mdnsbrowse.
type BrowserConfig struct {
	Browse  BrowseConfig  `yaml:"browse"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// IPTraffic selects which IP families the resolver queries on.
type IPTraffic string

const (
	IPTrafficV4   IPTraffic = "v4"
	IPTrafficV6   IPTraffic = "v6"
	IPTrafficBoth IPTraffic = "both"
)

// BrowseConfig scopes the discovery session.
type BrowseConfig struct {
	Name          string        `yaml:"name,omitempty"`          // Service name without underscore, e.g. "http"
	Protocol      string        `yaml:"protocol,omitempty"`      // "tcp" or "udp"
	SubType       string        `yaml:"subType,omitempty"`       // Optional sub-type, e.g. "printer"
	Domain        string        `yaml:"domain,omitempty"`        // Browse domain, "local." by default
	IPTraffic     IPTraffic     `yaml:"ipTraffic,omitempty"`     // "v4", "v6" or "both"
	RetryInterval time.Duration `yaml:"retryInterval,omitempty"` // Wait between failed browse attempts
	EventBuffer   int           `yaml:"eventBuffer,omitempty"`   // Capacity of the discovery event channel
}

// UIConfig controls the terminal browser.
type UIConfig struct {
	RefreshInterval time.Duration `yaml:"refreshInterval,omitempty"` // Redraw cadence
	MaxRecords      int           `yaml:"maxRecords,omitempty"`      // 0 keeps every discovered record
	Title           string        `yaml:"title,omitempty"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
}
