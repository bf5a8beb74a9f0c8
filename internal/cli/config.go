package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration resolved from the environment and an optional
.env file in the working directory.

Variables:
  PALETTE_DB             Database file (default: $XDG_DATA_HOME/palette/palettes.db)
  PALETTE_SYNC_URL       Remote primary for embedded-replica sync
  PALETTE_AUTH_TOKEN     Auth token for the remote primary
  PALETTE_CSS_PREFIX     Default CSS custom property prefix
  PALETTE_LOG_LEVEL      debug, info, warn, error
  PALETTE_LOG_FORMAT     text or json
  PALETTE_OTEL_ENABLED   Export metrics over OTLP/gRPC
  PALETTE_OTEL_ENDPOINT  Collector endpoint, e.g. localhost:4317
  PALETTE_OTEL_INSECURE  Disable TLS for the collector connection`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	return withApp(cmd, false, func(ctx context.Context, app *AppContext) error {
		cfg := app.Config

		sync := "-"
		if cfg.Database.SyncURL != "" {
			sync = cfg.Database.SyncURL
		}
		otlp := "disabled"
		if cfg.OTEL.Enabled {
			otlp = cfg.OTEL.Endpoint
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "database\t%s\n", cfg.Database.Path)
		fmt.Fprintf(w, "sync\t%s\n", sync)
		fmt.Fprintf(w, "css prefix\t%s\n", cfg.CSSPrefix)
		fmt.Fprintf(w, "log\t%s (%s)\n", cfg.Log.Level, cfg.Log.Format)
		fmt.Fprintf(w, "metrics\t%s\n", otlp)
		return w.Flush()
	})
}
