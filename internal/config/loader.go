package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/mdnsbrowse"
	projectConfigDir = ".mdnsbrowse"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user and project
// settings. If extraPath is not empty that file is layered on top and must exist.
func LoadConfig(extraPath string) (BrowserConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Optional; keep going with what we have.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		config, err = mergeOptionalFile(config, userConfigPath)
		if err != nil {
			return BrowserConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		config, err = mergeOptionalFile(config, projectConfigPath)
		if err != nil {
			return BrowserConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	// 4. Explicit --config file
	if extraPath != "" {
		extra, err := loadConfigFromFile(extraPath)
		if err != nil {
			return BrowserConfig{}, fmt.Errorf("error loading config from %s: %w", extraPath, err)
		}
		config = mergeConfigs(config, extra)
	}

	if err := config.Validate(); err != nil {
		return BrowserConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func mergeOptionalFile(base BrowserConfig, path string) (BrowserConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return BrowserConfig{}, err
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a BrowserConfig from a YAML file.
func loadConfigFromFile(filePath string) (BrowserConfig, error) {
	var config BrowserConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return BrowserConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return BrowserConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay leave the base untouched, so a higher layer cannot clear a
// string or reset a number to 0; callers that need that apply it afterwards.
func mergeConfigs(base, overlay BrowserConfig) BrowserConfig {
	merged := base

	// Browse
	if overlay.Browse.Name != "" {
		merged.Browse.Name = overlay.Browse.Name
	}
	if overlay.Browse.Protocol != "" {
		merged.Browse.Protocol = overlay.Browse.Protocol
	}
	if overlay.Browse.SubType != "" {
		merged.Browse.SubType = overlay.Browse.SubType
	}
	if overlay.Browse.Domain != "" {
		merged.Browse.Domain = overlay.Browse.Domain
	}
	if overlay.Browse.IPTraffic != "" {
		merged.Browse.IPTraffic = overlay.Browse.IPTraffic
	}
	if overlay.Browse.RetryInterval != 0 {
		merged.Browse.RetryInterval = overlay.Browse.RetryInterval
	}
	if overlay.Browse.EventBuffer != 0 {
		merged.Browse.EventBuffer = overlay.Browse.EventBuffer
	}

	// UI
	if overlay.UI.RefreshInterval != 0 {
		merged.UI.RefreshInterval = overlay.UI.RefreshInterval
	}
	if overlay.UI.MaxRecords != 0 {
		merged.UI.MaxRecords = overlay.UI.MaxRecords
	}
	if overlay.UI.Title != "" {
		merged.UI.Title = overlay.UI.Title
	}

	// Logging
	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	return merged
}

// WithOverrides layers command line values on top of the loaded
// configuration. Unset (zero) fields keep the loaded value.
func (c BrowserConfig) WithOverrides(overrides BrowserConfig) BrowserConfig {
	return mergeConfigs(c, overrides)
}

// Validate checks values that cannot be fixed up later. Service type
// validation happens in the discovery package, where the type is built.
func (c BrowserConfig) Validate() error {
	switch c.Browse.IPTraffic {
	case IPTrafficV4, IPTrafficV6, IPTrafficBoth:
	default:
		return fmt.Errorf("invalid browse.ipTraffic %q: must be one of v4, v6, both", c.Browse.IPTraffic)
	}
	if c.Browse.RetryInterval <= 0 {
		return fmt.Errorf("browse.retryInterval must be positive, got %s", c.Browse.RetryInterval)
	}
	if c.Browse.EventBuffer < 0 {
		return fmt.Errorf("browse.eventBuffer must not be negative, got %d", c.Browse.EventBuffer)
	}
	if c.UI.RefreshInterval <= 0 {
		return fmt.Errorf("ui.refreshInterval must be positive, got %s", c.UI.RefreshInterval)
	}
	if c.UI.MaxRecords < 0 {
		return fmt.Errorf("ui.maxRecords must not be negative, got %d", c.UI.MaxRecords)
	}
	return nil
}
