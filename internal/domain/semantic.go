package domain

import "math"

// Semantic token roles.
const (
	TokenSuccess = "success"
	TokenWarning = "warning"
	TokenError   = "error"
	TokenInfo    = "info"
)

// semanticHues is the fixed hue target of each token role.
var semanticHues = []struct {
	role string
	hue  float64
}{
	{TokenSuccess, 120},
	{TokenWarning, 38},
	{TokenError, 4},
	{TokenInfo, 207},
}

const (
	semanticMinSaturation = 0.55
	semanticMinLightness  = 0.35
	semanticMaxLightness  = 0.60
	neutralLightness      = 0.5
	neutralSaturation     = 0.05
)

// SemanticTokens maps the fixed UI roles to colours derived from a seed.
type SemanticTokens struct {
	Success Color `json:"success" yaml:"success"`
	Warning Color `json:"warning" yaml:"warning"`
	Error   Color `json:"error" yaml:"error"`
	Info    Color `json:"info" yaml:"info"`
}

// Ordered returns the tokens as role/colour pairs in canonical order.
func (t SemanticTokens) Ordered() []NamedColor {
	return []NamedColor{
		{Name: TokenSuccess, Color: t.Success},
		{Name: TokenWarning, Color: t.Warning},
		{Name: TokenError, Color: t.Error},
		{Name: TokenInfo, Color: t.Info},
	}
}

// NamedColor pairs a label with a colour.
type NamedColor struct {
	Name  string
	Color Color
}

// SemanticTokensFor derives success/warning/error/info colours for seedHex.
func SemanticTokensFor(seedHex string) (SemanticTokens, error) {
	seed, err := ParseColor(seedHex)
	if err != nil {
		return SemanticTokens{}, err
	}
	return semanticTokensOf(seed), nil
}

func semanticTokensOf(seed Color) SemanticTokens {
	base := seed.HSL()
	s := math.Max(semanticMinSaturation, base.S)
	l := math.Max(semanticMinLightness, math.Min(semanticMaxLightness, base.L))

	var t SemanticTokens
	for _, target := range semanticHues {
		c := FromHSL(HSL{H: target.hue, S: s, L: l})
		switch target.role {
		case TokenSuccess:
			t.Success = c
		case TokenWarning:
			t.Warning = c
		case TokenError:
			t.Error = c
		case TokenInfo:
			t.Info = c
		}
	}
	return t
}

// SemanticTokensOf derives the tokens for a palette's seed.
func SemanticTokensOf(p *Palette) SemanticTokens {
	return semanticTokensOf(p.Seed)
}

// NeutralFor returns a near-grey at the seed hue, for borders and muted text.
func NeutralFor(seed Color) Color {
	return FromHSL(HSL{H: seed.HSL().H, S: neutralSaturation, L: neutralLightness})
}
