package discovery

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdnsbrowse/internal/config"
	"mdnsbrowse/internal/registry"
)

// fakeBrowser replays canned entries and then either closes the stream or
// waits for cancellation.
type fakeBrowser struct {
	entries    []*zeroconf.ServiceEntry
	closeEarly bool
	browseErr  error

	gotService string
	gotDomain  string
}

func (f *fakeBrowser) Browse(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error {
	f.gotService = service
	f.gotDomain = domain
	if f.browseErr != nil {
		return f.browseErr
	}
	go func() {
		defer close(entries)
		for _, e := range f.entries {
			select {
			case entries <- e:
			case <-ctx.Done():
				return
			}
		}
		if !f.closeEarly {
			<-ctx.Done()
		}
	}()
	return nil
}

func useFakeBrowser(t *testing.T, fb *fakeBrowser) {
	t.Helper()
	original := newEntryBrowser
	t.Cleanup(func() { newEntryBrowser = original })
	newEntryBrowser = func(opts ...zeroconf.ClientOption) (entryBrowser, error) {
		return fb, nil
	}
}

func printerEntry() *zeroconf.ServiceEntry {
	e := zeroconf.NewServiceEntry("Office Printer", "_ipp._tcp", "local.")
	e.HostName = "printer.local."
	e.Port = 631
	e.AddrIPv4 = []net.IP{net.ParseIP("192.168.1.20")}
	e.AddrIPv6 = []net.IP{net.ParseIP("fe80::20")}
	e.Text = []string{"rp=ipp/print", "color=T", "duplex"}
	return e
}

func TestEntryToRecord(t *testing.T) {
	browsed := registry.ServiceType{Name: "ipp", Protocol: "tcp", SubTypes: []string{"universal"}}
	rec := entryToRecord(printerEntry(), browsed)

	assert.Equal(t, "Office Printer", rec.Name)
	assert.Equal(t, "printer.local.", rec.HostName)
	assert.Equal(t, "192.168.1.20", rec.Address)
	assert.Equal(t, []string{"192.168.1.20", "fe80::20"}, rec.Addresses)
	assert.Equal(t, 631, rec.Port)
	assert.Equal(t, "local.", rec.Domain)
	assert.Equal(t, browsed, rec.Type)
	assert.Equal(t, []registry.TxtPair{
		{Key: "rp", Value: "ipp/print"},
		{Key: "color", Value: "T"},
		{Key: "duplex", Value: ""},
	}, rec.Txt)
}

func TestEntryToRecord_NoTxtNoAddress(t *testing.T) {
	e := zeroconf.NewServiceEntry("bare", "_http._tcp", "local.")
	rec := entryToRecord(e, registry.ServiceType{Name: "http", Protocol: "tcp"})

	assert.Nil(t, rec.Txt)
	assert.Empty(t, rec.Address)
	assert.Empty(t, rec.Addresses)
	assert.Nil(t, rec.Type.SubTypes)
}

func TestParseTxt_KeepsFirstEquals(t *testing.T) {
	pairs := parseTxt([]string{"", "path=/a=b"})
	assert.Equal(t, []registry.TxtPair{{Key: "path", Value: "/a=b"}}, pairs)
}

func TestZeroconfResolver_DeliversEntries(t *testing.T) {
	fb := &fakeBrowser{entries: []*zeroconf.ServiceEntry{printerEntry()}}
	useFakeBrowser(t, fb)

	st := registry.ServiceType{Name: "ipp", Protocol: "tcp", SubTypes: []string{"universal"}}
	z := NewZeroconfResolver("", config.IPTrafficBoth)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan Event, 4)
	done := make(chan error, 1)
	go func() { done <- z.Browse(ctx, st, events) }()

	select {
	case ev := <-events:
		require.False(t, ev.IsError())
		assert.Equal(t, "Office Printer", ev.Record.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Browse did not return after cancel")
	}

	assert.Equal(t, "_ipp._tcp,_universal", fb.gotService)
	assert.Equal(t, "local.", fb.gotDomain)
}

func TestZeroconfResolver_StreamClosedEarly(t *testing.T) {
	useFakeBrowser(t, &fakeBrowser{closeEarly: true})

	z := NewZeroconfResolver("example.", config.IPTrafficV4)
	err := z.Browse(context.Background(), registry.ServiceType{Name: "http", Protocol: "tcp"}, make(chan Event, 1))
	assert.ErrorIs(t, err, ErrBrowseStopped)
}

func TestZeroconfResolver_BrowseError(t *testing.T) {
	useFakeBrowser(t, &fakeBrowser{browseErr: errors.New("no multicast interface")})

	z := NewZeroconfResolver("", config.IPTrafficV6)
	err := z.Browse(context.Background(), registry.ServiceType{Name: "http", Protocol: "tcp"}, make(chan Event, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no multicast interface")
}

func TestZeroconfResolver_IPType(t *testing.T) {
	assert.Equal(t, zeroconf.IPType(zeroconf.IPv4), NewZeroconfResolver("", config.IPTrafficV4).ipType())
	assert.Equal(t, zeroconf.IPType(zeroconf.IPv6), NewZeroconfResolver("", config.IPTrafficV6).ipType())
	assert.Equal(t, zeroconf.IPType(zeroconf.IPv4AndIPv6), NewZeroconfResolver("", config.IPTrafficBoth).ipType())
}
