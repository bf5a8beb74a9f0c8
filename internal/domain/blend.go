package domain

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func toColorful(c Color) colorful.Color {
	rgb := c.RGB()
	return colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
}

// fromColorful rounds channels to nearest.
func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return FromRGB(RGB{R: r, G: g, B: b})
}

// Blend mixes a and b linearly in sRGB. t=0 yields a, t=1 yields b; t is
// clamped to [0,1].
func Blend(a, b Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	return fromColorful(toColorful(a).BlendRgb(toColorful(b), t))
}

// Gradient returns stops evenly spaced colours from a to b inclusive.
// Fewer than two stops yields just a.
func Gradient(a, b Color, stops int) []Color {
	if stops < 2 {
		return []Color{a}
	}
	out := make([]Color, stops)
	for i := range out {
		out[i] = Blend(a, b, float64(i)/float64(stops-1))
	}
	return out
}
