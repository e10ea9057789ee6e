package discovery

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"mdnsbrowse/internal/registry"
)

// ErrInvalidServiceType is returned when a service type filter cannot be browsed.
var ErrInvalidServiceType = errors.New("invalid service type")

const (
	maxServiceNameLen = 15 // RFC 6335 section 5.1
	maxLabelLen       = 63
)

// ParseServiceType validates the name, protocol and optional sub-type used to
// scope a discovery session. Leading underscores are accepted and stripped,
// so "http" and "_http" are equivalent.
func ParseServiceType(name, protocol, subType string) (registry.ServiceType, error) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "_")
	protocol = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(protocol), "_"))
	subType = strings.TrimPrefix(strings.TrimSpace(subType), "_")

	if err := validateServiceName(name); err != nil {
		return registry.ServiceType{}, err
	}
	if protocol != "tcp" && protocol != "udp" {
		return registry.ServiceType{}, fmt.Errorf("%w: protocol must be tcp or udp, got %q", ErrInvalidServiceType, protocol)
	}

	st := registry.ServiceType{Name: name, Protocol: protocol}
	if subType != "" {
		if err := validateSubType(subType); err != nil {
			return registry.ServiceType{}, err
		}
		st.SubTypes = []string{subType}
	}
	return st, nil
}

func validateServiceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: service name is empty", ErrInvalidServiceType)
	}
	if len(name) > maxServiceNameLen {
		return fmt.Errorf("%w: service name %q is longer than %d characters", ErrInvalidServiceType, name, maxServiceNameLen)
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") || strings.Contains(name, "--") {
		return fmt.Errorf("%w: service name %q has a misplaced hyphen", ErrInvalidServiceType, name)
	}

	hasLetter := false
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			hasLetter = true
		case r >= '0' && r <= '9', r == '-':
		default:
			return fmt.Errorf("%w: service name %q contains %q", ErrInvalidServiceType, name, r)
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: service name %q must contain a letter", ErrInvalidServiceType, name)
	}
	return nil
}

func validateSubType(sub string) error {
	if len(sub) > maxLabelLen {
		return fmt.Errorf("%w: sub-type %q is longer than %d bytes", ErrInvalidServiceType, sub, maxLabelLen)
	}
	for _, r := range sub {
		if r == '.' || r == ',' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return fmt.Errorf("%w: sub-type %q contains %q", ErrInvalidServiceType, sub, r)
		}
	}
	return nil
}

// parseServiceString splits "_http._tcp" (optionally with a trailing dot)
// into a ServiceType. It is lenient and used for resolver responses only.
func parseServiceString(s string) registry.ServiceType {
	s = strings.TrimSuffix(s, ".")
	parts := strings.SplitN(s, ".", 2)
	st := registry.ServiceType{Name: strings.TrimPrefix(parts[0], "_")}
	if len(parts) == 2 {
		st.Protocol = strings.TrimPrefix(parts[1], "_")
	}
	return st
}
