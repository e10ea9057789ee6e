package discovery

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"mdnsbrowse/internal/registry"
	"mdnsbrowse/pkg/logging"
)

const feedSubsystem = "DiscoveryFeed"

// FeedStats counts what the feed has processed so far.
type FeedStats struct {
	Discovered int64
	Errors     int64
	Dropped    int64
}

// FeedOptions tunes a Feed. Zero values fall back to defaults.
type FeedOptions struct {
	// RetryInterval is how long to wait before browsing again after the
	// resolver failed.
	RetryInterval time.Duration
	// EventBuffer is the capacity of the channel between resolver and feed.
	EventBuffer int
	// OnAppend is called from the feed goroutine after each successful append.
	OnAppend func(registry.ServiceRecord)
}

// Feed turns resolver events into registry appends. The resolver produces
// events onto a channel; Run drains it from a single goroutine, so the feed
// is the only writer of records.
type Feed struct {
	registry    *registry.Registry
	resolver    Resolver
	serviceType registry.ServiceType
	opts        FeedOptions

	discovered atomic.Int64
	errors     atomic.Int64
	dropped    atomic.Int64
}

// NewFeed creates a feed that browses serviceType with resolver and appends
// results to reg.
func NewFeed(reg *registry.Registry, resolver Resolver, serviceType registry.ServiceType, opts FeedOptions) *Feed {
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = 5 * time.Second
	}
	if opts.EventBuffer < 0 {
		opts.EventBuffer = 0
	}
	return &Feed{
		registry:    reg,
		resolver:    resolver,
		serviceType: serviceType,
		opts:        opts,
	}
}

// Stats returns a copy of the feed counters.
func (f *Feed) Stats() FeedStats {
	return FeedStats{
		Discovered: f.discovered.Load(),
		Errors:     f.errors.Load(),
		Dropped:    f.dropped.Load(),
	}
}

// Run browses until ctx is cancelled. Discovery errors never stop the feed.
// Run returns after both the resolver goroutine and the consumer loop have
// exited.
func (f *Feed) Run(ctx context.Context) error {
	events := make(chan Event, f.opts.EventBuffer)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(events)
		f.produce(gctx, events)
		return nil
	})
	g.Go(func() error {
		f.consume(events)
		return nil
	})

	logging.Info(feedSubsystem, "Browsing for %s", f.serviceType.BrowseString())
	err := g.Wait()
	logging.Debug(feedSubsystem, "Stopped after %d discoveries, %d errors", f.discovered.Load(), f.errors.Load())
	return err
}

// produce runs browse sessions back to back, waiting RetryInterval after
// each failed one, until ctx is done.
func (f *Feed) produce(ctx context.Context, events chan<- Event) {
	for {
		err := f.resolver.Browse(ctx, f.serviceType, events)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			select {
			case events <- Failed(err):
			case <-ctx.Done():
				return
			}
		}

		timer := time.NewTimer(f.opts.RetryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// consume drains events until the channel is closed.
func (f *Feed) consume(events <-chan Event) {
	for ev := range events {
		f.handle(ev)
	}
}

func (f *Feed) handle(ev Event) {
	if ev.IsError() {
		f.errors.Add(1)
		logging.Error(feedSubsystem, ev.Err, "Service discovery error")
		return
	}

	rec := ev.Record
	if !f.registry.Append(rec) {
		f.dropped.Add(1)
		logging.Warn(feedSubsystem, "Registry full, dropped %q", rec.Name)
		return
	}
	f.discovered.Add(1)
	logging.Info(feedSubsystem, "Service discovered: %s (%s)", rec.Name, rec.HostPort())
	if f.opts.OnAppend != nil {
		f.opts.OnAppend(rec)
	}
}
