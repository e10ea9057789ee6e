package config

import "time"

const (
	DefaultServiceName     = "http"
	DefaultProtocol        = "tcp"
	DefaultDomain          = "local."
	DefaultRetryInterval   = 5 * time.Second
	DefaultEventBuffer     = 64
	DefaultRefreshInterval = 100 * time.Millisecond
	DefaultTitle           = "mDNS Browser"
	DefaultLogLevel        = "info"
)

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() BrowserConfig {
	return BrowserConfig{
		Browse: BrowseConfig{
			Name:          DefaultServiceName,
			Protocol:      DefaultProtocol,
			Domain:        DefaultDomain,
			IPTraffic:     IPTrafficBoth,
			RetryInterval: DefaultRetryInterval,
			EventBuffer:   DefaultEventBuffer,
		},
		UI: UIConfig{
			RefreshInterval: DefaultRefreshInterval,
			Title:           DefaultTitle,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}
