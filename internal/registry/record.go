package registry

import (
	"fmt"
	"strings"
)

// ServiceType describes the DNS-SD service type a record was discovered under,
// e.g. name "http", protocol "tcp" for "_http._tcp".
type ServiceType struct {
	Name     string   `yaml:"name"`
	Protocol string   `yaml:"protocol"`
	SubTypes []string `yaml:"subTypes,omitempty"`
}

// String returns the DNS-SD form of the type without sub-types, e.g. "_http._tcp".
func (t ServiceType) String() string {
	return fmt.Sprintf("_%s._%s", t.Name, t.Protocol)
}

// BrowseString returns the type in the comma separated form understood by
// zeroconf resolvers: "_http._tcp,_printer".
func (t ServiceType) BrowseString() string {
	if len(t.SubTypes) == 0 {
		return t.String()
	}
	parts := make([]string, 0, len(t.SubTypes)+1)
	parts = append(parts, t.String())
	for _, sub := range t.SubTypes {
		parts = append(parts, "_"+sub)
	}
	return strings.Join(parts, ",")
}

// TxtPair is a single key/value entry of a service's TXT record.
type TxtPair struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// ServiceRecord is one discovered service. Records are created once per
// discovery event and never modified afterwards.
type ServiceRecord struct {
	Name      string      `yaml:"name"`
	HostName  string      `yaml:"hostName"`
	Address   string      `yaml:"address"`
	Addresses []string    `yaml:"addresses,omitempty"`
	Port      int         `yaml:"port"`
	Domain    string      `yaml:"domain,omitempty"`
	Type      ServiceType `yaml:"type"`
	// Txt is nil when the service supplied no TXT data.
	Txt []TxtPair `yaml:"txt,omitempty"`
}

// HostPort returns "address:port", or "host:port" when no address was resolved.
func (r ServiceRecord) HostPort() string {
	host := r.Address
	if host == "" {
		host = r.HostName
	}
	if strings.Contains(host, ":") {
		return fmt.Sprintf("[%s]:%d", host, r.Port)
	}
	return fmt.Sprintf("%s:%d", host, r.Port)
}

// Clone returns a deep copy of the record.
func (r ServiceRecord) Clone() ServiceRecord {
	out := r
	if r.Addresses != nil {
		out.Addresses = append([]string(nil), r.Addresses...)
	}
	if r.Type.SubTypes != nil {
		out.Type.SubTypes = append([]string(nil), r.Type.SubTypes...)
	}
	if r.Txt != nil {
		out.Txt = append([]TxtPair(nil), r.Txt...)
	}
	return out
}
