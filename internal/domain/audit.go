package domain

// AuditPalette grades every unordered pair of swatch colours, in index
// order, and then each swatch against background when one is given.
func AuditPalette(p *Palette, background *Color) []ContrastResult {
	colors := p.Colors()
	n := len(colors)

	size := n * (n - 1) / 2
	if background != nil {
		size += n
	}
	results := make([]ContrastResult, 0, size)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			results = append(results, Contrast(colors[i], colors[j]))
		}
	}
	if background != nil {
		for _, c := range colors {
			results = append(results, Contrast(c, *background))
		}
	}
	return results
}

var (
	foregroundRoles = map[string]bool{RoleText: true, RolePrimary: true, RoleSecondary: true, RoleAccent: true}
	backgroundRoles = map[string]bool{RoleBackground: true, RoleSurface: true, RoleMuted: true}
)

// A11yCheck is one foreground/background pairing of an accessibility report.
type A11yCheck struct {
	Foreground Swatch
	Background Swatch
	Result     ContrastResult
}

// A11ySummary aggregates AA results.
type A11ySummary struct {
	Total    int     `json:"total"`
	PassAA   int     `json:"pass_aa"`
	FailAA   int     `json:"fail_aa"`
	PassRate float64 `json:"pass_rate"`
}

// A11yReport grades text-like swatches against surface-like swatches.
type A11yReport struct {
	PaletteID   string
	PaletteName string
	Checks      []A11yCheck
	Summary     A11ySummary
}

// CheckAccessibility pairs every foreground-role swatch with every
// background-role swatch, swatches and companions alike. When a palette has
// no swatch of a side, the first two swatches act as foregrounds and the
// rest as backgrounds.
func CheckAccessibility(p *Palette, background *Color) A11yReport {
	all := p.AllSwatches()

	var fgs, bgs []Swatch
	for _, s := range all {
		if foregroundRoles[s.Role] {
			fgs = append(fgs, s)
		}
		if backgroundRoles[s.Role] {
			bgs = append(bgs, s)
		}
	}
	if len(fgs) == 0 {
		fgs = all[:min(2, len(all))]
	}
	if background != nil {
		bgs = append(bgs, Swatch{Color: *background, Name: "background", Role: RoleBackground})
	}
	if len(bgs) == 0 && len(all) > 2 {
		bgs = all[2:]
	}

	report := A11yReport{PaletteID: p.ID, PaletteName: p.Name}
	for _, fg := range fgs {
		for _, bg := range bgs {
			res := Contrast(fg.Color, bg.Color)
			report.Checks = append(report.Checks, A11yCheck{Foreground: fg, Background: bg, Result: res})
			if res.PassesAA() {
				report.Summary.PassAA++
			}
		}
	}
	report.Summary.Total = len(report.Checks)
	report.Summary.FailAA = report.Summary.Total - report.Summary.PassAA
	report.Summary.PassRate = roundTo(float64(report.Summary.PassAA)/float64(max(1, report.Summary.Total))*100, 1)
	return report
}

// MatrixEntry is one cell of a contrast matrix.
type MatrixEntry struct {
	Ratio float64 `json:"ratio" yaml:"ratio"`
	Grade Grade   `json:"grade" yaml:"grade"`
}

// ContrastMatrix grades every ordered pair of distinct swatches by name.
func ContrastMatrix(p *Palette) map[string]map[string]MatrixEntry {
	all := p.AllSwatches()
	matrix := make(map[string]map[string]MatrixEntry, len(all))
	for _, a := range all {
		row := make(map[string]MatrixEntry, len(all)-1)
		for _, b := range all {
			if a.Name == b.Name {
				continue
			}
			res := Contrast(a.Color, b.Color)
			row[b.Name] = MatrixEntry{Ratio: res.Ratio, Grade: res.Grade}
		}
		matrix[a.Name] = row
	}
	return matrix
}
