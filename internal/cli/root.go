// Package cli wires the amphi commands: the terminal page, the web
// server and a one-shot search.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"amphi/internal/config"
	"amphi/internal/search"
)

// options holds the global flags
type options struct {
	configPath string
	noColor    bool
	noMouse    bool
	backend    string
	remoteURL  string
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the terminal page.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "amphi",
		Short: "Amphi landing page with global search",
		Long: `Amphi renders the landing page in the terminal. Press Ctrl+K anywhere
to search the site, Tab to move between controls and ? for help.

Use "amphi serve" to publish the same page over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is "+config.DefaultPath()+")")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "search backend (static, remote)")
	root.PersistentFlags().StringVar(&opts.remoteURL, "remote-url", "", "base URL of a running amphi server for the remote backend")
	root.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")

	root.AddCommand(
		newServeCommand(opts),
		newSearchCommand(opts),
		newVersionCommand(),
	)
	return root
}

// loadConfig reads the config file and applies flag overrides on top
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Search.Backend = strings.ToLower(opts.backend)
	}
	if flags.Changed("remote-url") {
		cfg.Search.RemoteURL = opts.remoteURL
	}
	if flags.Changed("no-mouse") && opts.noMouse {
		cfg.UI.Mouse = false
	}
	if opts.noColor {
		cfg.UI.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// applyColor strips colors when disabled by flag, config or NO_COLOR
func applyColor(cfg *config.Config) {
	if !cfg.UI.Color || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// newBackend selects the search backend named in the config
func newBackend(cfg *config.Config) search.Backend {
	if cfg.Search.Backend == config.BackendRemote {
		return search.NewRemoteBackend(cfg.Search.RemoteURL, cfg.Search.Timeout.Duration)
	}
	return search.NewStaticBackend(cfg.Search.Latency.Duration)
}
