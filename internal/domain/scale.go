package domain

import "iter"

const (
	scaleSteps     = 9
	scaleLightest  = 0.95
	scaleLightSpan = 0.90
)

// scaleLabels names the stops of a tint/shade scale.
var scaleLabels = [scaleSteps]int{50, 100, 200, 300, 400, 500, 600, 700, 800}

// ScaleStop is one entry of a tint/shade scale.
type ScaleStop struct {
	Label     int     `json:"label" yaml:"label"`
	Lightness float64 `json:"lightness" yaml:"lightness"`
	Color     Color   `json:"color" yaml:"color"`
}

// TintShadeScale returns the nine-stop lightness sweep for seedHex, from
// near-white (L=0.95) down to near-black (L=0.05) at the seed's hue and
// saturation. Stops are computed on demand; each range over the sequence
// starts from the first stop again.
func TintShadeScale(seedHex string) (iter.Seq[ScaleStop], error) {
	seed, err := ParseColor(seedHex)
	if err != nil {
		return nil, err
	}
	return scaleOf(seed), nil
}

func scaleOf(seed Color) iter.Seq[ScaleStop] {
	base := seed.HSL()
	return func(yield func(ScaleStop) bool) {
		for i := 0; i < scaleSteps; i++ {
			l := scaleLightest - float64(i)*(scaleLightSpan/float64(scaleSteps-1))
			stop := ScaleStop{
				Label:     scaleLabels[i],
				Lightness: l,
				Color:     FromHSL(HSL{H: base.H, S: base.S, L: l}),
			}
			if !yield(stop) {
				return
			}
		}
	}
}

// ScaleOf collects the tint/shade scale of c.
func ScaleOf(c Color) []ScaleStop {
	out := make([]ScaleStop, 0, scaleSteps)
	for s := range scaleOf(c) {
		out = append(out, s)
	}
	return out
}
