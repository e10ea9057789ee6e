package discovery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/grandcat/zeroconf"

	"mdnsbrowse/internal/config"
	"mdnsbrowse/internal/registry"
)

// ErrBrowseStopped is returned when the resolver closed its result stream
// while the caller still wanted results.
var ErrBrowseStopped = errors.New("mdns browse stopped unexpectedly")

const entryBufferSize = 32

// entryBrowser is the part of *zeroconf.Resolver we use.
type entryBrowser interface {
	Browse(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error
}

// newEntryBrowser is replaced in tests.
var newEntryBrowser = func(opts ...zeroconf.ClientOption) (entryBrowser, error) {
	return zeroconf.NewResolver(opts...)
}

// ZeroconfResolver browses the local network with github.com/grandcat/zeroconf.
type ZeroconfResolver struct {
	domain    string
	ipTraffic config.IPTraffic
}

// NewZeroconfResolver creates a resolver for the given domain ("local." when
// empty) and IP families.
func NewZeroconfResolver(domain string, ipTraffic config.IPTraffic) *ZeroconfResolver {
	if domain == "" {
		domain = config.DefaultDomain
	}
	return &ZeroconfResolver{domain: domain, ipTraffic: ipTraffic}
}

// Browse implements Resolver. Each call opens a new multicast session.
func (z *ZeroconfResolver) Browse(ctx context.Context, serviceType registry.ServiceType, events chan<- Event) error {
	browser, err := newEntryBrowser(zeroconf.SelectIPTraffic(z.ipType()))
	if err != nil {
		return fmt.Errorf("failed to create mdns resolver: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry, entryBufferSize)
	if err := browser.Browse(ctx, serviceType.BrowseString(), z.domain, entries); err != nil {
		return fmt.Errorf("failed to browse %s: %w", serviceType.BrowseString(), err)
	}

	for {
		select {
		case <-ctx.Done():
			// The resolver may still be sending; keep it from blocking
			// until it notices the cancellation and closes the channel.
			go drainEntries(entries)
			return nil
		case entry, ok := <-entries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrBrowseStopped
			}
			if entry == nil {
				continue
			}
			select {
			case events <- Discovered(entryToRecord(entry, serviceType)):
			case <-ctx.Done():
				go drainEntries(entries)
				return nil
			}
		}
	}
}

func (z *ZeroconfResolver) ipType() zeroconf.IPType {
	switch z.ipTraffic {
	case config.IPTrafficV4:
		return zeroconf.IPv4
	case config.IPTrafficV6:
		return zeroconf.IPv6
	default:
		return zeroconf.IPv4AndIPv6
	}
}

func drainEntries(entries <-chan *zeroconf.ServiceEntry) {
	for range entries {
	}
}

// entryToRecord converts a resolver answer into a ServiceRecord. The type is
// taken from the answer when present, sub-types from the browse filter since
// answers do not carry them.
func entryToRecord(entry *zeroconf.ServiceEntry, browsed registry.ServiceType) registry.ServiceRecord {
	st := parseServiceString(entry.Service)
	if st.Name == "" || st.Protocol == "" {
		st = registry.ServiceType{Name: browsed.Name, Protocol: browsed.Protocol}
	}
	if len(browsed.SubTypes) > 0 {
		st.SubTypes = append([]string(nil), browsed.SubTypes...)
	}

	addrs := ipStrings(entry.AddrIPv4, entry.AddrIPv6)
	rec := registry.ServiceRecord{
		Name:      entry.Instance,
		HostName:  entry.HostName,
		Addresses: addrs,
		Port:      entry.Port,
		Domain:    entry.Domain,
		Type:      st,
		Txt:       parseTxt(entry.Text),
	}
	if len(addrs) > 0 {
		rec.Address = addrs[0]
	}
	return rec
}

func ipStrings(groups ...[]net.IP) []string {
	var out []string
	for _, group := range groups {
		for _, ip := range group {
			if ip != nil {
				out = append(out, ip.String())
			}
		}
	}
	return out
}

// parseTxt splits "key=value" strings on the first '='. A bare key gets an
// empty value. It returns nil when there is no TXT data.
func parseTxt(text []string) []registry.TxtPair {
	var pairs []registry.TxtPair
	for _, t := range text {
		if t == "" {
			continue
		}
		key, value, _ := strings.Cut(t, "=")
		pairs = append(pairs, registry.TxtPair{Key: key, Value: value})
	}
	return pairs
}
