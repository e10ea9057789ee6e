package discovery

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdnsbrowse/internal/registry"
	"mdnsbrowse/pkg/logging"
)

// scriptedResolver sends a fixed list of events on the first Browse call and
// then blocks until cancelled. Later calls return failErr straight away.
type scriptedResolver struct {
	events  []Event
	failErr error
	calls   atomic.Int32
}

func (s *scriptedResolver) Browse(ctx context.Context, st registry.ServiceType, out chan<- Event) error {
	if s.calls.Add(1) > 1 && s.failErr != nil {
		return s.failErr
	}
	for _, ev := range s.events {
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
	<-ctx.Done()
	return nil
}

// failingResolver always fails to start.
type failingResolver struct {
	calls atomic.Int32
}

func (f *failingResolver) Browse(ctx context.Context, st registry.ServiceType, out chan<- Event) error {
	f.calls.Add(1)
	return errors.New("no multicast interface")
}

func init() {
	logging.InitForCLI(logging.LevelError, io.Discard)
}

func httpType() registry.ServiceType {
	return registry.ServiceType{Name: "http", Protocol: "tcp"}
}

func rec(name string) registry.ServiceRecord {
	return registry.ServiceRecord{Name: name, HostName: name + ".local.", Address: "10.0.0.2", Port: 80, Type: httpType()}
}

func runFeed(t *testing.T, f *Feed) (cancel func() error) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()
	return func() error {
		stop()
		select {
		case err := <-done:
			return err
		case <-time.After(2 * time.Second):
			t.Fatal("feed did not stop after cancel")
			return nil
		}
	}
}

func TestFeed_AppendsInOrderAndSkipsErrors(t *testing.T) {
	reg := registry.New(0)
	resolver := &scriptedResolver{events: []Event{
		Discovered(rec("A")),
		Failed(errors.New("bad packet")),
		Discovered(rec("B")),
		Discovered(rec("C")),
	}}

	var mu sync.Mutex
	var appended []string
	f := NewFeed(reg, resolver, httpType(), FeedOptions{
		EventBuffer: 1,
		OnAppend: func(r registry.ServiceRecord) {
			mu.Lock()
			appended = append(appended, r.Name)
			mu.Unlock()
		},
	})
	stop := runFeed(t, f)

	require.Eventually(t, func() bool { return reg.Len() == 3 }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return f.Stats().Errors == 1 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, stop())

	for i, want := range []string{"A", "B", "C"} {
		got, ok := reg.Get(i)
		require.True(t, ok)
		assert.Equal(t, want, got.Name)
	}
	assert.Equal(t, FeedStats{Discovered: 3, Errors: 1}, f.Stats())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"A", "B", "C"}, appended)
}

func TestFeed_RetriesAfterResolverFailure(t *testing.T) {
	reg := registry.New(0)
	resolver := &failingResolver{}
	f := NewFeed(reg, resolver, httpType(), FeedOptions{RetryInterval: 10 * time.Millisecond})
	stop := runFeed(t, f)

	require.Eventually(t, func() bool { return resolver.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, stop())

	assert.True(t, reg.IsEmpty())
	assert.GreaterOrEqual(t, f.Stats().Errors, int64(2))
}

func TestFeed_RetryWaitsBetweenAttempts(t *testing.T) {
	resolver := &failingResolver{}
	f := NewFeed(registry.New(0), resolver, httpType(), FeedOptions{RetryInterval: time.Hour})
	stop := runFeed(t, f)

	require.Eventually(t, func() bool { return f.Stats().Errors == 1 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), resolver.calls.Load(), "resolver must not be polled in a tight loop")

	require.NoError(t, stop())
}

func TestFeed_CountsDroppedRecords(t *testing.T) {
	reg := registry.New(1)
	resolver := &scriptedResolver{events: []Event{Discovered(rec("A")), Discovered(rec("B"))}}
	f := NewFeed(reg, resolver, httpType(), FeedOptions{})
	stop := runFeed(t, f)

	require.Eventually(t, func() bool { return f.Stats().Dropped == 1 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, stop())

	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, int64(1), f.Stats().Discovered)
}

func TestFeed_StopsOnCancel(t *testing.T) {
	f := NewFeed(registry.New(0), &scriptedResolver{}, httpType(), FeedOptions{})
	stop := runFeed(t, f)
	assert.NoError(t, stop())
}

func TestEvent(t *testing.T) {
	assert.False(t, Discovered(rec("A")).IsError())
	assert.True(t, Failed(errors.New("x")).IsError())
}
