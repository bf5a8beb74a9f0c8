package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for malformed hex colour strings.
var ErrInvalidColor = errors.New("invalid color")

// InvalidColorError carries the rejected input.
type InvalidColorError struct {
	Input string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid hex color: %q", e.Input)
}

func (e *InvalidColorError) Unwrap() error {
	return ErrInvalidColor
}

// RGB holds three 8-bit channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in [0,1].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// Color is an immutable colour value. The hex string is canonical; RGB and
// HSL are derived from it at construction time.
type Color struct {
	hex string
	rgb RGB
	hsl HSL
}

// ParseColor builds a Color from a hex string.
func ParseColor(hex string) (Color, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Color{}, err
	}
	return FromRGB(rgb), nil
}

// MustParseColor is ParseColor for constants; it panics on bad input.
func MustParseColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB builds a Color from channel values.
func FromRGB(rgb RGB) Color {
	return Color{
		hex: RGBToHex(int(rgb.R), int(rgb.G), int(rgb.B)),
		rgb: rgb,
		hsl: RGBToHSL(rgb),
	}
}

// FromHSL builds a Color from an HSL triple. Components are normalised
// before conversion.
func FromHSL(hsl HSL) Color {
	return FromRGB(HSLToRGB(hsl))
}

func (c Color) Hex() string { return c.hex }
func (c Color) RGB() RGB    { return c.rgb }
func (c Color) HSL() HSL    { return c.hsl }

// IsZero reports whether c was never constructed.
func (c Color) IsZero() bool { return c.hex == "" }

func (c Color) String() string { return c.hex }

// RotateHue returns c with its hue shifted by deg degrees.
func (c Color) RotateHue(deg float64) Color {
	h := c.hsl
	h.H += deg
	return FromHSL(h)
}

// WithLightness returns c with lightness replaced.
func (c Color) WithLightness(l float64) Color {
	h := c.hsl
	h.L = l
	return FromHSL(h)
}

// AdjustLightness shifts lightness by delta, clamped to [0,1].
func (c Color) AdjustLightness(delta float64) Color {
	return c.WithLightness(c.hsl.L + delta)
}

// AdjustSaturation shifts saturation by delta, clamped to [0,1].
func (c Color) AdjustSaturation(delta float64) Color {
	h := c.hsl
	h.S += delta
	return FromHSL(h)
}

// MarshalText encodes the colour as its hex string.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.hex), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// NormalizeHex returns the canonical "#rrggbb" form of hex.
func NormalizeHex(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return RGBToHex(int(rgb.R), int(rgb.G), int(rgb.B)), nil
}

// HexToRGB parses "#rrggbb", "rrggbb" or the shorthand "#rgb".
func HexToRGB(hex string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, &InvalidColorError{Input: hex}
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, &InvalidColorError{Input: hex}
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// RGBToHex formats channels as lowercase "#rrggbb". Out-of-range channels
// are clamped to [0,255].
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

// RGBToHSL converts 8-bit RGB to HSL.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	sum := maxc + minc
	rng := maxc - minc
	l := sum / 2

	if rng == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l <= 0.5 {
		s = rng / sum
	} else {
		s = rng / (2.0 - sum)
	}

	rc := (maxc - r) / rng
	gc := (maxc - g) / rng
	bc := (maxc - b) / rng

	var h float64
	switch {
	case r == maxc:
		h = bc - gc
	case g == maxc:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}

	return HSL{H: wrapUnit(h/6.0) * 360, S: s, L: l}
}

// HSLToRGB converts HSL to 8-bit RGB, rounding to the nearest channel value.
func HSLToRGB(hsl HSL) RGB {
	h := wrapUnit(hsl.H / 360)
	s := clampUnit(hsl.S)
	l := clampUnit(hsl.L)

	if s == 0 {
		v := toChannel(l)
		return RGB{R: v, G: v, B: v}
	}

	var m2 float64
	if l <= 0.5 {
		m2 = l * (1.0 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2.0*l - m2

	return RGB{
		R: toChannel(hueToChannel(m1, m2, h+1.0/3.0)),
		G: toChannel(hueToChannel(m1, m2, h)),
		B: toChannel(hueToChannel(m1, m2, h-1.0/3.0)),
	}
}

func hueToChannel(m1, m2, hue float64) float64 {
	hue = wrapUnit(hue)
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6.0
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6.0
	default:
		return m1
	}
}

// wrapUnit maps x into [0,1).
func wrapUnit(x float64) float64 {
	x = math.Mod(x, 1.0)
	if x < 0 {
		x += 1.0
	}
	if x >= 1.0 {
		x = 0
	}
	return x
}

func clampUnit(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func toChannel(x float64) uint8 {
	return uint8(clampChannel(int(math.Round(x * 255))))
}
