package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/emiliopalmerini/palette/internal/domain"
)

// BlockWidth is the number of cells used for a colour chip.
const BlockWidth = 6

var (
	passMark = color.New(color.FgGreen, color.Bold)
	warnMark = color.New(color.FgYellow)
	failMark = color.New(color.FgRed, color.Bold)
)

// Block returns a chip of width cells filled with c.
func Block(c domain.Color, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

// GradeMark returns the grade with a pass/fail mark.
func GradeMark(g domain.Grade) string {
	switch g {
	case domain.GradeAAA, domain.GradeAA:
		return passMark.Sprintf("✓ %s", g)
	case domain.GradeAALarge:
		return warnMark.Sprintf("~ %s", g)
	default:
		return failMark.Sprintf("✗ %s", g)
	}
}

func formatHSL(c domain.Color) string {
	hsl := c.HSL()
	return fmt.Sprintf("hsl(%.1f, %.0f%%, %.0f%%)", hsl.H, hsl.S*100, hsl.L*100)
}

func widest(values []string) int {
	n := 0
	for _, v := range values {
		n = max(n, lipgloss.Width(v))
	}
	return n
}

func writeSwatches(w io.Writer, swatches []domain.Swatch) error {
	names := make([]string, len(swatches))
	roles := make([]string, len(swatches))
	for i, sw := range swatches {
		names[i], roles[i] = sw.Name, sw.Role
	}
	nw, rw := widest(names), widest(roles)

	for _, sw := range swatches {
		if _, err := fmt.Fprintf(w, "  %s  %-*s  %s  %-*s  %s\n",
			Block(sw.Color, BlockWidth), nw, sw.Name, sw.Color.Hex(), rw, sw.Role, formatHSL(sw.Color)); err != nil {
			return err
		}
	}
	return nil
}

// Palette writes a header and one line per swatch, followed by the
// companion colours when present.
func Palette(w io.Writer, p *domain.Palette) error {
	s := Default()
	if _, err := fmt.Fprintf(w, "%s\n%s\n",
		s.Title.Render(p.Name),
		s.Subtitle.Render(fmt.Sprintf("%s · seed %s", p.Harmony.Title(), p.Seed.Hex()))); err != nil {
		return err
	}
	if p.Description != "" {
		if _, err := fmt.Fprintln(w, s.Body.Render(p.Description)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, s.Muted.Render("id "+p.ID)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := writeSwatches(w, p.Swatches); err != nil {
		return err
	}
	if len(p.Companions) > 0 {
		if _, err := fmt.Fprintf(w, "\n%s\n", s.Muted.Render("companions")); err != nil {
			return err
		}
		return writeSwatches(w, p.Companions)
	}
	return nil
}

// Scale writes one chip per tint/shade stop.
func Scale(w io.Writer, stops []domain.ScaleStop) error {
	for _, stop := range stops {
		if _, err := fmt.Fprintf(w, "  %s  %3d  %s  L=%.3f\n",
			Block(stop.Color, BlockWidth), stop.Label, stop.Color.Hex(), stop.Lightness); err != nil {
			return err
		}
	}
	return nil
}

// Named writes labelled chips, e.g. semantic tokens.
func Named(w io.Writer, colors []domain.NamedColor) error {
	names := make([]string, len(colors))
	for i, nc := range colors {
		names[i] = nc.Name
	}
	nw := widest(names)

	for _, nc := range colors {
		if _, err := fmt.Fprintf(w, "  %s  %-*s  %s\n",
			Block(nc.Color, BlockWidth), nw, nc.Name, nc.Color.Hex()); err != nil {
			return err
		}
	}
	return nil
}

// Strip writes colours side by side followed by their hex codes.
func Strip(w io.Writer, colors []domain.Color) error {
	blocks := make([]string, len(colors))
	hexes := make([]string, len(colors))
	for i, c := range colors {
		blocks[i] = Block(c, len(c.Hex()))
		hexes[i] = c.Hex()
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", strings.Join(blocks, " "), strings.Join(hexes, " "))
	return err
}
