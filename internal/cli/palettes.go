package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/palette/internal/domain"
	"github.com/emiliopalmerini/palette/internal/export"
	"github.com/emiliopalmerini/palette/internal/render"
	"github.com/emiliopalmerini/palette/internal/util"
)

var showCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show a saved palette",
	Long: `Show a saved palette with its swatches, tint/shade scale and semantic tokens.

A palette can be referenced by ID or by name; when several palettes share a
name the most recent one is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete a saved palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

// Flags
var showJSON bool

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the full JSON export")
}

func runShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, true, func(ctx context.Context, app *AppContext) error {
		p, err := resolvePalette(ctx, app.Palettes, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showJSON {
			b, err := export.JSON(p)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(b))
			return err
		}

		if err := render.Palette(out, p); err != nil {
			return err
		}
		fmt.Fprintln(out, "\nScale")
		if err := render.Scale(out, domain.ScaleOf(p.Seed)); err != nil {
			return err
		}
		fmt.Fprintln(out, "\nSemantic")
		tokens := append(domain.SemanticTokensOf(p).Ordered(), domain.NamedColor{Name: "neutral", Color: domain.NeutralFor(p.Seed)})
		return render.Named(out, tokens)
	})
}

func runList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, true, func(ctx context.Context, app *AppContext) error {
		summaries, err := app.Palettes.List(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(summaries) == 0 {
			fmt.Fprintln(out, "No palettes found")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tHARMONY\tSEED\tCREATED\tTAGS")
		fmt.Fprintln(w, "--\t----\t-------\t----\t-------\t----")
		for _, s := range summaries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				s.ID, s.Name, s.Harmony, s.BaseColor,
				util.FormatDateTime(s.CreatedAt), strings.Join(s.Tags, ","))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\nShowing %d palette(s)\n", len(summaries))
		return nil
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	return withApp(cmd, true, func(ctx context.Context, app *AppContext) error {
		p, err := resolvePalette(ctx, app.Palettes, args[0])
		if err != nil {
			return err
		}

		deleted, err := app.Palettes.Delete(ctx, p.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("%w: %s", errPaletteNotFound, args[0])
		}
		app.Sync()

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted palette %s (%s)\n", p.Name, p.ID)
		return nil
	})
}
