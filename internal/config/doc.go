// Package config provides configuration management for mdnsbrowse.
//
// Configuration is loaded from several YAML sources and merged in order, with
// later sources overriding earlier ones:
//
//  1. Defaults compiled into the binary (GetDefaultConfig)
//  2. User configuration (~/.config/mdnsbrowse/config.yaml)
//  3. Project configuration (./.mdnsbrowse/config.yaml)
//  4. A file passed with --config
//
// Command-line flags are applied by the cmd package on top of the result.
// Missing user and project files are ignored; a file that exists but cannot
// be parsed is an error.
//
// # Configuration Structure
//
//	browse:
//	  name: http            # service name, without the leading underscore
//	  protocol: tcp         # tcp or udp
//	  subType: ""           # optional sub-type
//	  domain: local.
//	  ipTraffic: both       # v4, v6 or both
//	  retryInterval: 5s     # wait before browsing again after a resolver failure
//	  eventBuffer: 64       # discovery event channel capacity
//	ui:
//	  refreshInterval: 100ms
//	  maxRecords: 0         # 0 keeps everything
//	  title: "mDNS Browser"
//	logging:
//	  level: info
//
// # Usage Example
//
//	cfg, err := config.LoadConfig("")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Browse.Name, cfg.Browse.Protocol)
package config
