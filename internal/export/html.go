package export

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/palette/internal/domain"
)

type sheetView struct {
	Name        string
	Harmony     string
	Seed        string
	Description string
	Rows        []rowView
}

type rowView struct {
	Heading string
	Chips   []chipView
}

type chipView struct {
	Title   string
	Caption string
	Hex     string
}

// HTML returns a standalone swatch sheet showing the palette, its scale and
// the semantic tokens.
func HTML(p *domain.Palette) templ.Component {
	return sheet(newSheetView(p))
}

func newSheetView(p *domain.Palette) sheetView {
	var swatches, scale, semantic []chipView
	for _, sw := range p.AllSwatches() {
		swatches = append(swatches, chipView{Title: sw.Name, Caption: sw.Role, Hex: sw.Color.Hex()})
	}
	for _, stop := range domain.ScaleOf(p.Seed) {
		scale = append(scale, chipView{Title: strconv.Itoa(stop.Label), Hex: stop.Color.Hex()})
	}
	for _, tok := range domain.SemanticTokensOf(p).Ordered() {
		semantic = append(semantic, chipView{Title: tok.Name, Hex: tok.Color.Hex()})
	}

	return sheetView{
		Name:        p.Name,
		Harmony:     p.Harmony.Title(),
		Seed:        p.Seed.Hex(),
		Description: p.Description,
		Rows: []rowView{
			{Heading: "Swatches", Chips: swatches},
			{Heading: "Scale", Chips: scale},
			{Heading: "Semantic", Chips: semantic},
		},
	}
}

// chipStyle is safe because hex is always a canonical #rrggbb value.
func chipStyle(hex string) templ.SafeCSS {
	return templ.SafeCSS("background:" + hex)
}
