package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"mdnsbrowse/internal/config"
	"mdnsbrowse/internal/discovery"
	"mdnsbrowse/pkg/logging"
)

// Application is the main application structure that bootstraps and runs mdnsbrowse
type Application struct {
	config   *Config
	services *Services
	logLevel logging.LogLevel
	out      io.Writer // records in no-TUI mode
	logOut   io.Writer

	// Extra options for the browser program, after the alternate screen.
	programOptions []tea.ProgramOption
}

// NewApplication loads configuration, validates the browse target and
// prepares the shared services. Nothing runs in the background yet, so a bad
// service type fails here without side effects.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, os.Stderr)

	switch cfg.Output {
	case "", OutputText, OutputYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q: must be %s or %s", cfg.Output, OutputText, OutputYAML)
	}

	browserCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	browserCfg = browserCfg.WithOverrides(cfg.Overrides)
	if cfg.SubTypeSet {
		browserCfg.Browse.SubType = cfg.Overrides.Browse.SubType
	}
	if err := browserCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.BrowserConfig = &browserCfg

	if !cfg.Debug {
		appLogLevel, err = logging.ParseLevel(browserCfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid logging.level: %w", err)
		}
	}

	serviceType, err := discovery.ParseServiceType(browserCfg.Browse.Name, browserCfg.Browse.Protocol, browserCfg.Browse.SubType)
	if err != nil {
		return nil, err
	}
	logging.Debug("Bootstrap", "Browsing %s in domain %s", serviceType.BrowseString(), browserCfg.Browse.Domain)

	return &Application{
		config:   cfg,
		services: InitializeServices(&browserCfg, serviceType),
		logLevel: appLogLevel,
		out:      os.Stdout,
		logOut:   os.Stderr,
	}, nil
}

// Run executes the application in the appropriate mode. SIGINT and SIGTERM
// cancel the same context the discovery feed runs under.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.config.NoTUI {
		return runCLIMode(ctx, a)
	}
	return runTUIMode(ctx, a)
}
