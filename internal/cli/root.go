package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "palette",
	Short: "Generate, audit and export colour palettes",
	Long: `palette builds colour palettes from a seed colour using hue-rotation
harmonies, grades them against WCAG 2.1 contrast thresholds, and exports
them as CSS variables, Tailwind config, JSON, YAML or an HTML swatch sheet.

Saved palettes live in a local libSQL database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var verbose bool

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
