package export

import (
	"fmt"
	"strings"

	"github.com/emiliopalmerini/palette/internal/domain"
)

// Tailwind renders a tailwind.config.js extending theme colours with the
// palette scale and a "<name>-roles" map.
func Tailwind(p *domain.Palette) string {
	name := Slug(p.Name)

	var b strings.Builder
	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n  theme: {\n    extend: {\n      colors: {\n")
	fmt.Fprintf(&b, "        '%s': {\n", name)
	for _, stop := range domain.ScaleOf(p.Seed) {
		fmt.Fprintf(&b, "          %d: '%s',\n", stop.Label, stop.Color.Hex())
	}
	b.WriteString("        },\n")
	fmt.Fprintf(&b, "        '%s-roles': {\n", name)
	for _, sw := range p.AllSwatches() {
		fmt.Fprintf(&b, "          '%s': '%s',\n", sw.Role, sw.Color.Hex())
	}
	b.WriteString("        },\n      },\n    },\n  },\n};")
	return b.String()
}
