package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mdnsbrowse/internal/app"
)

// Flag values for the root command.
var (
	browseName     string
	browseProtocol string
	browseSubType  string
	browseDomain   string
	configPath     string
	noTUI          bool
	outputFormat   string
	debug          bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mdnsbrowse",
	Short: "Browse mDNS / DNS-SD services on the local network",
	Long: `mdnsbrowse continuously browses the local network for services advertised
over multicast DNS and shows them in an interactive terminal list.

Use the arrow keys (or j/k) to move the selection, Enter to inspect a service
and Esc to go back. Esc on the list, or Ctrl+C anywhere, quits.

Configuration is layered: built-in defaults, ~/.config/mdnsbrowse/config.yaml,
./.mdnsbrowse/config.yaml, the file given with --config, and finally flags.

With --no-tui every newly discovered service is printed to stdout instead,
as a text line or a YAML document, until the process is interrupted.`,
	Args: cobra.NoArgs,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. an invalid service type)
	SilenceUsage: true,
	RunE:         runBrowse,
}

// runBrowse is the main entry point for the root command
func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(noTUI, debug, configPath)
	cfg.Output = outputFormat
	cfg.Overrides.Browse.Name = browseName
	cfg.Overrides.Browse.Protocol = browseProtocol
	cfg.Overrides.Browse.SubType = browseSubType
	cfg.Overrides.Browse.Domain = browseDomain
	cfg.SubTypeSet = cmd.Flags().Changed("sub-type")

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mdnsbrowse version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())

	// Empty defaults leave the value to the config files.
	flags := rootCmd.Flags()
	flags.StringVarP(&browseName, "name", "n", "", `service name to browse, e.g. "http" or "ipp" (default from config, "http")`)
	flags.StringVarP(&browseProtocol, "protocol", "p", "", `service protocol, tcp or udp (default from config, "tcp")`)
	flags.StringVarP(&browseSubType, "sub-type", "s", "", `optional service sub-type, e.g. printer; -s "" clears one set in config`)
	flags.StringVarP(&browseDomain, "domain", "d", "", `browse domain (default from config, "local.")`)
	flags.StringVar(&configPath, "config", "", "extra config file layered on top of the user and project config")
	flags.BoolVar(&noTUI, "no-tui", false, "print discovered services to stdout instead of starting the browser")
	flags.StringVarP(&outputFormat, "output", "o", app.OutputText, "output format for --no-tui: text or yaml")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
}
