package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/palette/internal/domain"
	"github.com/emiliopalmerini/palette/internal/render"
)

var a11yCmd = &cobra.Command{
	Use:   "a11y <id|name>",
	Short: "Check text/background pairings of a palette",
	Long: `Grade the text-like swatches of a palette (text, primary, secondary,
accent) against its surface-like swatches (background, surface, muted),
companions included.

Examples:
  palette a11y Ocean
  palette a11y Ocean --background "#0f172a"`,
	Args: cobra.ExactArgs(1),
	RunE: runA11y,
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <color> <color>",
	Short: "Compute the WCAG contrast ratio of two colours",
	Args:  cobra.ExactArgs(2),
	RunE:  runContrast,
}

var blendCmd = &cobra.Command{
	Use:   "blend <color> <color>",
	Short: "Blend two colours or print a gradient between them",
	Long: `Blend two colours in RGB space.

Examples:
  palette blend "#ff0000" "#0000ff"               # midpoint
  palette blend "#ff0000" "#0000ff" --ratio 0.25
  palette blend "#ff0000" "#0000ff" --stops 5     # five-step gradient`,
	Args: cobra.ExactArgs(2),
	RunE: runBlend,
}

var scaleCmd = &cobra.Command{
	Use:   "scale <seed>",
	Short: "Print the nine-stop tint/shade scale of a colour",
	Args:  cobra.ExactArgs(1),
	RunE:  runScale,
}

var semanticCmd = &cobra.Command{
	Use:   "semantic <seed>",
	Short: "Print success/warning/error/info tokens derived from a colour",
	Args:  cobra.ExactArgs(1),
	RunE:  runSemantic,
}

// Flags
var (
	a11yBackground string
	blendRatio     float64
	blendStops     int
)

func init() {
	rootCmd.AddCommand(a11yCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(blendCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(semanticCmd)

	a11yCmd.Flags().StringVarP(&a11yBackground, "background", "b", "", "Extra background colour to test against")
	blendCmd.Flags().Float64VarP(&blendRatio, "ratio", "r", 0.5, "Weight of the second colour, 0 to 1")
	blendCmd.Flags().IntVarP(&blendStops, "stops", "s", 0, "Print a gradient with this many stops (at least 2) instead")
}

func runA11y(cmd *cobra.Command, args []string) error {
	background, err := parseOptionalColor(a11yBackground)
	if err != nil {
		return err
	}

	return withApp(cmd, true, func(ctx context.Context, app *AppContext) error {
		p, err := resolvePalette(ctx, app.Palettes, args[0])
		if err != nil {
			return err
		}

		report := domain.CheckAccessibility(p, background)
		results := make([]domain.ContrastResult, len(report.Checks))
		for i, c := range report.Checks {
			results[i] = c.Result
		}
		app.recordMetric(app.Metrics.RecordContrast(ctx, results))

		return render.A11y(cmd.OutOrStdout(), report)
	})
}

func runContrast(cmd *cobra.Command, args []string) error {
	a, err := domain.ParseColor(args[0])
	if err != nil {
		return err
	}
	b, err := domain.ParseColor(args[1])
	if err != nil {
		return err
	}

	return withApp(cmd, false, func(ctx context.Context, app *AppContext) error {
		r := domain.Contrast(a, b)
		app.recordMetric(app.Metrics.RecordContrast(ctx, []domain.ContrastResult{r}))
		return render.Contrast(cmd.OutOrStdout(), r)
	})
}

func runBlend(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("stops") && blendStops < 2 {
		return fmt.Errorf("--stops must be at least 2, got %d", blendStops)
	}
	a, err := domain.ParseColor(args[0])
	if err != nil {
		return err
	}
	b, err := domain.ParseColor(args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if blendStops >= 2 {
		return render.Strip(out, domain.Gradient(a, b, blendStops))
	}
	mixed := domain.Blend(a, b, blendRatio)
	return render.Strip(out, []domain.Color{a, mixed, b})
}

func runScale(cmd *cobra.Command, args []string) error {
	stops, err := domain.TintShadeScale(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for stop := range stops {
		if err := render.Scale(out, []domain.ScaleStop{stop}); err != nil {
			return err
		}
	}
	return nil
}

func runSemantic(cmd *cobra.Command, args []string) error {
	tokens, err := domain.SemanticTokensFor(args[0])
	if err != nil {
		return err
	}
	seed, err := domain.ParseColor(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := render.Named(out, tokens.Ordered()); err != nil {
		return err
	}
	return render.Named(out, []domain.NamedColor{{Name: "neutral", Color: domain.NeutralFor(seed)}})
}
