package app

import (
	"mdnsbrowse/internal/config"
	"mdnsbrowse/internal/discovery"
	"mdnsbrowse/internal/registry"
)

// Services holds the pieces shared by both run modes.
type Services struct {
	Registry    *registry.Registry
	Resolver    discovery.Resolver
	ServiceType registry.ServiceType

	browse config.BrowseConfig
}

// InitializeServices creates the registry and the mDNS resolver for the
// browse session described by cfg.
func InitializeServices(cfg *config.BrowserConfig, serviceType registry.ServiceType) *Services {
	return &Services{
		Registry:    registry.New(cfg.UI.MaxRecords),
		Resolver:    discovery.NewZeroconfResolver(cfg.Browse.Domain, cfg.Browse.IPTraffic),
		ServiceType: serviceType,
		browse:      cfg.Browse,
	}
}

// NewFeed wires a discovery feed to the registry. onAppend may be nil.
func (s *Services) NewFeed(onAppend func(registry.ServiceRecord)) *discovery.Feed {
	return discovery.NewFeed(s.Registry, s.Resolver, s.ServiceType, discovery.FeedOptions{
		RetryInterval: s.browse.RetryInterval,
		EventBuffer:   s.browse.EventBuffer,
		OnAppend:      onAppend,
	})
}
