package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownHarmony is returned for unrecognised harmony type names.
var ErrUnknownHarmony = errors.New("unknown harmony type")

// UnknownHarmonyError carries the rejected harmony name.
type UnknownHarmonyError struct {
	Name string
}

func (e *UnknownHarmonyError) Error() string {
	return fmt.Sprintf("unknown harmony type: %q", e.Name)
}

func (e *UnknownHarmonyError) Unwrap() error {
	return ErrUnknownHarmony
}

// HarmonyType names a hue-rotation rule.
type HarmonyType string

const (
	Complementary      HarmonyType = "complementary"
	Triadic            HarmonyType = "triadic"
	Analogous          HarmonyType = "analogous"
	Monochromatic      HarmonyType = "monochromatic"
	SplitComplementary HarmonyType = "split-complementary"
	Tetradic           HarmonyType = "tetradic"
)

// HarmonyTypes lists every supported harmony in display order.
var HarmonyTypes = []HarmonyType{
	Complementary,
	Triadic,
	Analogous,
	Monochromatic,
	SplitComplementary,
	Tetradic,
}

var harmonyOffsets = map[HarmonyType][]float64{
	Complementary:      {0, 180},
	Triadic:            {0, 120, 240},
	Analogous:          {0, 30, 60},
	Monochromatic:      {0},
	SplitComplementary: {0, 150, 210},
	Tetradic:           {0, 90, 180, 270},
}

// Monochromatic palettes keep the seed hue and walk these lightness stops.
var monochromaticStops = []struct {
	lightness float64
	role      string
}{
	{0.92, RoleBackground},
	{0.75, RoleSurface},
	{0.55, RolePrimary},
	{0.35, RoleSecondary},
	{0.15, RoleText},
}

const companionLightnessDelta = 0.38

// Swatch roles.
const (
	RolePrimary    = "primary"
	RoleSecondary  = "secondary"
	RoleAccent     = "accent"
	RoleQuaternary = "quaternary"
	RoleBackground = "background"
	RoleSurface    = "surface"
	RoleMuted      = "muted"
	RoleText       = "text"
)

var rotationRoles = []string{RolePrimary, RoleSecondary, RoleAccent, RoleQuaternary}

// ParseHarmony resolves a harmony name.
func ParseHarmony(name string) (HarmonyType, error) {
	h := HarmonyType(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := harmonyOffsets[h]; !ok {
		return "", &UnknownHarmonyError{Name: name}
	}
	return h, nil
}

// Offsets returns a copy of the hue offsets for h.
func (h HarmonyType) Offsets() []float64 {
	return append([]float64(nil), harmonyOffsets[h]...)
}

// Title returns the display form, e.g. "Split-Complementary".
func (h HarmonyType) Title() string {
	parts := strings.Split(string(h), "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "-")
}

// Swatch is a named colour with a role inside a palette.
type Swatch struct {
	Color Color
	Name  string
	Role  string
}

// Palette is an ordered set of swatches generated from a seed colour.
type Palette struct {
	ID          string
	Name        string
	Seed        Color
	Harmony     HarmonyType
	Swatches    []Swatch
	Companions  []Swatch
	Tags        []string
	Description string
	CreatedAt   time.Time
}

// Colors returns the swatch colours in order.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.Swatches))
	for i, s := range p.Swatches {
		out[i] = s.Color
	}
	return out
}

// AllSwatches returns swatches followed by companions.
func (p *Palette) AllSwatches() []Swatch {
	out := make([]Swatch, 0, len(p.Swatches)+len(p.Companions))
	out = append(out, p.Swatches...)
	return append(out, p.Companions...)
}

// GenerateHarmony builds a palette by rotating the seed hue through the
// offset table of harmony. Saturation and lightness of the seed are kept,
// except for monochromatic palettes which vary lightness only.
func GenerateHarmony(seedHex string, harmony HarmonyType, name string) (*Palette, error) {
	seed, err := ParseColor(seedHex)
	if err != nil {
		return nil, err
	}
	offsets, ok := harmonyOffsets[harmony]
	if !ok {
		return nil, &UnknownHarmonyError{Name: string(harmony)}
	}

	prefix := name
	if prefix == "" {
		prefix = "color"
	}
	swatchName := func(suffix string) string {
		return prefix + "-" + suffix
	}

	var swatches, companions []Swatch
	if harmony == Monochromatic {
		for i, stop := range monochromaticStops {
			swatches = append(swatches, Swatch{
				Color: seed.WithLightness(stop.lightness),
				Name:  swatchName(fmt.Sprint(i + 1)),
				Role:  stop.role,
			})
		}
	} else {
		for i, offset := range offsets {
			role := fmt.Sprintf("color-%d", i+1)
			if i < len(rotationRoles) {
				role = rotationRoles[i]
			}
			swatches = append(swatches, Swatch{
				Color: seed.RotateHue(offset),
				Name:  swatchName(fmt.Sprint(i + 1)),
				Role:  role,
			})
		}
		companions = []Swatch{
			{Color: seed.AdjustLightness(companionLightnessDelta), Name: swatchName("light"), Role: RoleBackground},
			{Color: seed.AdjustLightness(-companionLightnessDelta), Name: swatchName("dark"), Role: RoleText},
		}
	}

	if name == "" {
		name = harmony.Title() + " Palette"
	}

	return &Palette{
		ID:         uuid.NewString(),
		Name:       name,
		Seed:       seed,
		Harmony:    harmony,
		Swatches:   swatches,
		Companions: companions,
		Tags:       []string{string(harmony)},
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// GenerateHarmonyByName resolves harmonyName and calls GenerateHarmony.
// The seed is validated first.
func GenerateHarmonyByName(seedHex, harmonyName, name string) (*Palette, error) {
	if _, err := HexToRGB(seedHex); err != nil {
		return nil, err
	}
	h, err := ParseHarmony(harmonyName)
	if err != nil {
		return nil, err
	}
	return GenerateHarmony(seedHex, h, name)
}
