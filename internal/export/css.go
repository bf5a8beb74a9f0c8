package export

import (
	"fmt"
	"strings"

	"github.com/emiliopalmerini/palette/internal/domain"
)

// CSS renders three :root blocks: one variable plus an -rgb triplet per
// swatch, the tint/shade scale, and the semantic tokens.
func CSS(p *domain.Palette, prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  /* %s - %s */\n", p.Name, p.Harmony)
	for _, sw := range p.AllSwatches() {
		slug := Slug(sw.Name)
		rgb := sw.Color.RGB()
		fmt.Fprintf(&b, "  --%s-%s: %s;\n", prefix, slug, sw.Color.Hex())
		fmt.Fprintf(&b, "  --%s-%s-rgb: %d, %d, %d;\n", prefix, slug, rgb.R, rgb.G, rgb.B)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "/* %s tint/shade scale */\n:root {\n", p.Name)
	for _, stop := range domain.ScaleOf(p.Seed) {
		fmt.Fprintf(&b, "  --%s-%d: %s;\n", prefix, stop.Label, stop.Color.Hex())
	}
	b.WriteString("}\n\n")

	b.WriteString("/* Semantic tokens */\n:root {\n")
	for _, tok := range domain.SemanticTokensOf(p).Ordered() {
		fmt.Fprintf(&b, "  --%s-%s: %s;\n", prefix, tok.Name, tok.Color.Hex())
	}
	b.WriteString("}")
	return b.String()
}
