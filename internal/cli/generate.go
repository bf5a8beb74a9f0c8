package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/palette/internal/domain"
	"github.com/emiliopalmerini/palette/internal/export"
	"github.com/emiliopalmerini/palette/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate <seed> <harmony>",
	Short: "Generate a palette from a seed colour",
	Long: `Generate a palette by rotating the hue of a seed colour.

Harmonies: complementary, triadic, analogous, monochromatic,
split-complementary, tetradic.

Examples:
  palette generate "#3b82f6" triadic
  palette generate 3b82f6 analogous --name Ocean --tag brand --save
  palette generate "#e11d48" complementary --background "#ffffff"
  palette generate "#16a34a" monochromatic --json`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

// Flags
var (
	generateName       string
	generateDesc       string
	generateTags       []string
	generateSave       bool
	generateJSON       bool
	generateBackground string
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateName, "name", "n", "", "Palette name (default: \"<Harmony> Palette\")")
	generateCmd.Flags().StringVarP(&generateDesc, "desc", "d", "", "Palette description")
	generateCmd.Flags().StringSliceVarP(&generateTags, "tag", "t", nil, "Extra tags (repeatable)")
	generateCmd.Flags().BoolVarP(&generateSave, "save", "s", false, "Save the palette to the store")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the full JSON export instead of swatches")
	generateCmd.Flags().StringVarP(&generateBackground, "background", "b", "", "Also audit every swatch against this background")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	background, err := parseOptionalColor(generateBackground)
	if err != nil {
		return err
	}

	p, err := domain.GenerateHarmonyByName(args[0], args[1], generateName)
	if err != nil {
		return err
	}
	p.Description = generateDesc
	p.Tags = append(p.Tags, generateTags...)

	return withApp(cmd, generateSave, func(ctx context.Context, app *AppContext) error {
		out := cmd.OutOrStdout()
		app.recordMetric(app.Metrics.RecordGeneration(ctx, p.Harmony, len(p.Swatches)))

		if generateSave {
			if err := app.Palettes.Save(ctx, p); err != nil {
				return err
			}
			app.Sync()
			app.Log.Info("saved palette", "id", p.ID, "name", p.Name)
		}

		if generateJSON {
			b, err := export.JSON(p)
			if err != nil {
				return err
			}
			app.recordMetric(app.Metrics.RecordExport(ctx, string(export.FormatJSON)))
			_, err = fmt.Fprintln(out, string(b))
			return err
		}

		if err := render.Palette(out, p); err != nil {
			return err
		}

		if background != nil {
			results := domain.AuditPalette(p, background)
			app.recordMetric(app.Metrics.RecordContrast(ctx, results))
			fmt.Fprintf(out, "\nContrast (swatch pairs, then against %s)\n", background.Hex())
			if err := render.Audit(out, results); err != nil {
				return err
			}
		}

		if generateSave {
			fmt.Fprintf(out, "\nSaved palette %s\n", p.ID)
		}
		return nil
	})
}
