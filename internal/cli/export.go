package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/palette/internal/export"
)

var cssCmd = &cobra.Command{
	Use:   "css <id|name>",
	Short: "Print CSS custom properties for a palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runCSS,
}

var tailwindCmd = &cobra.Command{
	Use:   "tailwind <id|name>",
	Short: "Print a Tailwind config for a palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runTailwind,
}

var exportCmd = &cobra.Command{
	Use:   "export <id|name>",
	Short: "Export a palette to one or more formats",
	Long: `Export a saved palette.

Formats: css, tailwind, json, yaml, html. Without --out a single format is
written to stdout. With --out every requested format is written to that
directory, named after the palette.

Examples:
  palette export Ocean                          # JSON to stdout
  palette export Ocean --format yaml
  palette export Ocean --format css,html --out ./theme
  palette export Ocean --format all --out ./theme`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

// Flags
var (
	cssPrefix    string
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(cssCmd)
	rootCmd.AddCommand(tailwindCmd)
	rootCmd.AddCommand(exportCmd)

	cssCmd.Flags().StringVarP(&cssPrefix, "prefix", "p", "", "Custom property prefix (default: $PALETTE_CSS_PREFIX or \"palette\")")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Comma-separated formats, or \"all\"")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Output directory (default: stdout)")
}

func runCSS(cmd *cobra.Command, args []string) error {
	return withApp(cmd, true, func(ctx context.Context, app *AppContext) error {
		p, err := resolvePalette(ctx, app.Palettes, args[0])
		if err != nil {
			return err
		}

		prefix := cssPrefix
		if prefix == "" {
			prefix = app.Config.CSSPrefix
		}
		app.recordMetric(app.Metrics.RecordExport(ctx, string(export.FormatCSS)))
		_, err = fmt.Fprintln(cmd.OutOrStdout(), export.CSS(p, prefix))
		return err
	})
}

func runTailwind(cmd *cobra.Command, args []string) error {
	return withApp(cmd, true, func(ctx context.Context, app *AppContext) error {
		p, err := resolvePalette(ctx, app.Palettes, args[0])
		if err != nil {
			return err
		}

		app.recordMetric(app.Metrics.RecordExport(ctx, string(export.FormatTailwind)))
		_, err = fmt.Fprintln(cmd.OutOrStdout(), export.Tailwind(p))
		return err
	})
}

func parseFormats(value string) ([]export.Format, error) {
	if strings.TrimSpace(value) == "all" {
		return export.Formats, nil
	}

	var formats []export.Format
	seen := make(map[export.Format]bool)
	for _, name := range strings.Split(value, ",") {
		f, err := export.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	formats, err := parseFormats(exportFormat)
	if err != nil {
		return err
	}
	if exportOutput == "" && len(formats) > 1 {
		return errors.New("multiple formats require --out")
	}

	return withApp(cmd, true, func(ctx context.Context, app *AppContext) error {
		p, err := resolvePalette(ctx, app.Palettes, args[0])
		if err != nil {
			return err
		}

		opts := export.Options{CSSPrefix: app.Config.CSSPrefix}
		out := cmd.OutOrStdout()

		if exportOutput == "" {
			if err := export.Render(ctx, out, p, formats[0], opts); err != nil {
				return err
			}
			app.recordMetric(app.Metrics.RecordExport(ctx, string(formats[0])))
			return nil
		}

		paths, err := export.WriteFiles(ctx, p, exportOutput, formats, opts)
		if err != nil {
			return err
		}
		for i, path := range paths {
			app.recordMetric(app.Metrics.RecordExport(ctx, string(formats[i])))
			fmt.Fprintf(out, "Wrote %s\n", path)
		}
		app.Log.Debug("exported palette", "id", p.ID, "formats", len(formats), "dir", exportOutput)
		return nil
	})
}
