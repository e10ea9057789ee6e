package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdnsbrowse/internal/registry"
)

func TestParseServiceType_Valid(t *testing.T) {
	tests := []struct {
		name     string
		svc      string
		proto    string
		sub      string
		expected registry.ServiceType
	}{
		{"defaults", "http", "tcp", "", registry.ServiceType{Name: "http", Protocol: "tcp"}},
		{"leading underscores", "_ipp", "_tcp", "", registry.ServiceType{Name: "ipp", Protocol: "tcp"}},
		{"upper case protocol", "raop", "UDP", "", registry.ServiceType{Name: "raop", Protocol: "udp"}},
		{"hyphenated name", "companion-link", "tcp", "", registry.ServiceType{Name: "companion-link", Protocol: "tcp"}},
		{"with sub-type", "http", "tcp", "_printer", registry.ServiceType{Name: "http", Protocol: "tcp", SubTypes: []string{"printer"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := ParseServiceType(tt.svc, tt.proto, tt.sub)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, st)
		})
	}
}

func TestParseServiceType_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		svc   string
		proto string
		sub   string
	}{
		{"empty name", "", "tcp", ""},
		{"name too long", "averyveryverylongname", "tcp", ""},
		{"name with dot", "http.tcp", "tcp", ""},
		{"name with space", "my service", "tcp", ""},
		{"digits only", "1234", "tcp", ""},
		{"leading hyphen", "-http", "tcp", ""},
		{"double hyphen", "ht--tp", "tcp", ""},
		{"unknown protocol", "http", "sctp", ""},
		{"empty protocol", "http", "", ""},
		{"sub-type with comma", "http", "tcp", "a,b"},
		{"sub-type with dot", "http", "tcp", "a.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseServiceType(tt.svc, tt.proto, tt.sub)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidServiceType)
		})
	}
}

func TestParseServiceString(t *testing.T) {
	assert.Equal(t, registry.ServiceType{Name: "http", Protocol: "tcp"}, parseServiceString("_http._tcp"))
	assert.Equal(t, registry.ServiceType{Name: "ipp", Protocol: "tcp"}, parseServiceString("_ipp._tcp."))
	assert.Equal(t, registry.ServiceType{Name: "odd"}, parseServiceString("_odd"))
}
