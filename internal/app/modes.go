package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"mdnsbrowse/internal/registry"
	"mdnsbrowse/internal/tui/controller"
	"mdnsbrowse/internal/tui/design"
	"mdnsbrowse/internal/tui/model"
	"mdnsbrowse/pkg/logging"
)

// shutdownTimeout bounds how long the foreground waits for the discovery feed
// to stop after the UI has exited.
var shutdownTimeout = 5 * time.Second

var errShutdownTimeout = errors.New("discovery feed did not stop in time")

// runCLIMode prints every new record until the context is cancelled.
func runCLIMode(ctx context.Context, a *Application) error {
	logging.InitForCLI(a.logLevel, a.logOut)

	printer := &recordPrinter{out: a.out, format: a.config.Output}
	feed := a.services.NewFeed(printer.Print)

	logging.Info("CLI", "Browsing for %s. Press Ctrl+C to stop.", a.services.ServiceType.BrowseString())
	if err := feed.Run(ctx); err != nil {
		return err
	}

	stats := feed.Stats()
	logging.Info("CLI", "Stopped after %d discoveries (%d errors, %d dropped).", stats.Discovered, stats.Errors, stats.Dropped)
	return printer.err
}

// runTUIMode runs the feed in the background and the browser in the foreground.
func runTUIMode(ctx context.Context, a *Application) error {
	design.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(a.logLevel)
	defer logging.CloseTUIChannel()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	feed := a.services.NewFeed(nil)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return feed.Run(gctx)
	})

	cfg := a.config.BrowserConfig
	m := model.InitialModel(a.services.Registry, model.Options{
		Title:           cfg.UI.Title,
		ServiceType:     a.services.ServiceType.BrowseString(),
		RefreshInterval: cfg.UI.RefreshInterval,
	}, logChan)
	p := controller.NewProgram(m, a.programOptions...)

	// A signal cancels ctx; take the UI down with it.
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, runErr := p.Run()
	cancel()
	waitErr := waitWithTimeout(g, shutdownTimeout)

	if runErr != nil {
		return fmt.Errorf("error running browser: %w", runErr)
	}
	return waitErr
}

// waitWithTimeout joins the group, giving up after d.
func waitWithTimeout(g *errgroup.Group, d time.Duration) error {
	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		return errShutdownTimeout
	}
}

// recordPrinter writes records as they are appended in no-TUI mode. It is
// only called from the feed's consumer goroutine.
type recordPrinter struct {
	out    io.Writer
	format string
	err    error
}

// Print writes one record. The first write error is kept and later records
// are skipped.
func (p *recordPrinter) Print(rec registry.ServiceRecord) {
	if p.err != nil {
		return
	}
	switch p.format {
	case OutputYAML:
		data, err := yaml.Marshal(rec)
		if err != nil {
			p.err = fmt.Errorf("failed to encode %q: %w", rec.Name, err)
			return
		}
		_, p.err = fmt.Fprintf(p.out, "---\n%s", data)
	default:
		_, p.err = fmt.Fprintf(p.out, "%s, Hostname: %s, IP: %s, Port: %d\n", rec.Name, rec.HostName, rec.Address, rec.Port)
	}
}
