package render

import (
	"fmt"
	"io"

	"github.com/emiliopalmerini/palette/internal/domain"
)

// Contrast writes a single graded pair.
func Contrast(w io.Writer, r domain.ContrastResult) error {
	_, err := fmt.Fprintf(w, "  %s%s  %s on %s  %5.2f:1  %s\n",
		Block(r.A, BlockWidth/2), Block(r.B, BlockWidth/2),
		r.A.Hex(), r.B.Hex(), r.Ratio, GradeMark(r.Grade))
	return err
}

// Audit writes every graded pair of an audit.
func Audit(w io.Writer, results []domain.ContrastResult) error {
	for _, r := range results {
		if err := Contrast(w, r); err != nil {
			return err
		}
	}
	return nil
}

// A11y writes an accessibility report and its AA summary.
func A11y(w io.Writer, report domain.A11yReport) error {
	s := Default()
	if _, err := fmt.Fprintf(w, "%s\n\n", s.Title.Render("Accessibility: "+report.PaletteName)); err != nil {
		return err
	}
	for _, c := range report.Checks {
		if _, err := fmt.Fprintf(w, "  %s%s  %-12s on %-12s  %5.2f:1  %s\n",
			Block(c.Foreground.Color, BlockWidth/2), Block(c.Background.Color, BlockWidth/2),
			c.Foreground.Name, c.Background.Name, c.Result.Ratio, GradeMark(c.Result.Grade)); err != nil {
			return err
		}
	}

	sum := report.Summary
	_, err := fmt.Fprintf(w, "\n%s\n", s.Card.Render(fmt.Sprintf(
		"%d checks  %d pass AA  %d fail  %.1f%% pass rate",
		sum.Total, sum.PassAA, sum.FailAA, sum.PassRate)))
	return err
}
