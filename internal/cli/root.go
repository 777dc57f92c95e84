package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zonetree/internal/config"
	"zonetree/internal/format"
	"zonetree/internal/gateway"
	"zonetree/internal/journal"
	"zonetree/internal/model"
	"zonetree/internal/tui"
)

type App struct {
	Token    string
	Endpoint string
	DataDir  string
	Format   string
	Pretty   bool
	Verbose  bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "zonetree",
		Short:        "DNS zone and record manager (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  zonetree

  # Scriptable commands
  zonetree zones
  zonetree records list example.com
  zonetree records create example.com --type A --name www --content 1.2.3.4

  # Export zones as BIND-style files
  zonetree export --out ./zones
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Token, "token", envOr("ZONETREE_API_TOKEN", ""), "API token (default: CLOUDFLARE_API_TOKEN / ZONETREE_API_TOKEN / config file)")
	cmd.PersistentFlags().StringVar(&app.Endpoint, "endpoint", envOr("ZONETREE_API_ENDPOINT", ""), "API endpoint (default: Cloudflare v4)")
	cmd.PersistentFlags().StringVar(&app.DataDir, "data", envOr("ZONETREE_DATA_DIR", ""), "Data dir for the mutation journal (default: ~/.zonetree)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("ZONETREE_FORMAT", "table"), "Output format (table|json|yaml)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().BoolVar(&app.Verbose, "verbose", false, "Trace API requests to stderr")

	cmd.AddCommand(newZonesCmd(app))
	cmd.AddCommand(newRecordsCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// resolveConfig layers flags over the env/file config.
func resolveConfig(app *App) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if app.Token != "" {
		cfg.Token = app.Token
	}
	if app.Endpoint != "" {
		cfg.Endpoint = app.Endpoint
	}
	if app.DataDir != "" {
		cfg.DataDir = app.DataDir
	}
	return cfg, nil
}

// newGateway builds the API client. A missing token is fatal here, before
// any component is constructed.
func newGateway(app *App) (*gateway.Client, config.Config, error) {
	cfg, err := resolveConfig(app)
	if err != nil {
		return nil, config.Config{}, err
	}
	if err := cfg.RequireToken(); err != nil {
		return nil, config.Config{}, err
	}
	c := gateway.NewClient(cfg.Endpoint, cfg.Token)
	if app.Verbose {
		c.SetTrace(log.New(os.Stderr, "zonetree ", log.Lmicroseconds))
	}
	return c, cfg, nil
}

func runTUI(app *App) error {
	gw, cfg, err := newGateway(app)
	if err != nil {
		return err
	}
	return tui.Run(gw, journal.New(cfg.DataDir))
}

// resolveZone accepts a zone name or a zone ID.
func resolveZone(ctx context.Context, gw gateway.Gateway, nameOrID string) (model.Zone, error) {
	zones, err := gw.ListZones(ctx)
	if err != nil {
		return model.Zone{}, err
	}
	for _, z := range zones {
		if z.Name == nameOrID || z.ID == nameOrID {
			return z, nil
		}
	}
	return model.Zone{}, fmt.Errorf("zone not found: %q", nameOrID)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.Pretty)
}
