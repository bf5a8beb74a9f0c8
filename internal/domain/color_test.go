package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func hueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"full with hash", "#3b82f6", RGB{59, 130, 246}},
		{"full without hash", "000000", RGB{0, 0, 0}},
		{"uppercase", "#FFAA00", RGB{255, 170, 0}},
		{"shorthand", "#fff", RGB{255, 255, 255}},
		{"shorthand without hash", "f00", RGB{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGB(tt.input)
			if err != nil {
				t.Fatalf("HexToRGB(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("HexToRGB(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexToRGB_Invalid(t *testing.T) {
	inputs := []string{"not-a-color", "zzzzzz", "#12345", "#1234567", "", "#", "#ggg", "+12345"}

	for _, in := range inputs {
		_, err := HexToRGB(in)
		if err == nil {
			t.Errorf("HexToRGB(%q) expected error", in)
			continue
		}
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("HexToRGB(%q) error = %v, want ErrInvalidColor", in, err)
		}
		var ice *InvalidColorError
		if !errors.As(err, &ice) || ice.Input != in {
			t.Errorf("HexToRGB(%q) error should carry the input, got %v", in, err)
		}
	}
}

func TestRGBToHex(t *testing.T) {
	if got := RGBToHex(59, 130, 246); got != "#3b82f6" {
		t.Errorf("RGBToHex = %s, want #3b82f6", got)
	}
	if got := RGBToHex(-10, 300, 0); got != "#00ff00" {
		t.Errorf("RGBToHex should clamp, got %s", got)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				hex := RGBToHex(r, g, b)
				rgb, err := HexToRGB(strings.ToUpper(hex))
				if err != nil {
					t.Fatalf("HexToRGB(%s) failed: %v", hex, err)
				}
				if back := RGBToHex(int(rgb.R), int(rgb.G), int(rgb.B)); back != hex {
					t.Fatalf("round trip %s -> %s", hex, back)
				}
			}
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	within := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -1 && d <= 1
	}

	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				in := RGB{uint8(r), uint8(g), uint8(b)}
				hsl := RGBToHSL(in)
				if hsl.H < 0 || hsl.H >= 360 {
					t.Fatalf("hue out of range for %+v: %f", in, hsl.H)
				}
				out := HSLToRGB(hsl)
				if !within(in.R, out.R) || !within(in.G, out.G) || !within(in.B, out.B) {
					t.Fatalf("RGB %+v -> HSL %+v -> RGB %+v", in, hsl, out)
				}
			}
		}
	}
}

func TestRGBToHSL_KnownValues(t *testing.T) {
	tests := []struct {
		hex  string
		want HSL
	}{
		{"#ff0000", HSL{0, 1, 0.5}},
		{"#00ff00", HSL{120, 1, 0.5}},
		{"#0000ff", HSL{240, 1, 0.5}},
		{"#ffffff", HSL{0, 0, 1}},
		{"#000000", HSL{0, 0, 0}},
	}

	for _, tt := range tests {
		c := MustParseColor(tt.hex)
		got := c.HSL()
		if !floatEquals(got.H, tt.want.H) || !floatEquals(got.S, tt.want.S) || !floatEquals(got.L, tt.want.L) {
			t.Errorf("%s HSL = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestHSLToRGB_WrapsAndClamps(t *testing.T) {
	if got := HSLToRGB(HSL{H: 540, S: 1, L: 0.5}); got != (RGB{0, 255, 255}) {
		t.Errorf("hue 540 should wrap to 180, got %+v", got)
	}
	if got := HSLToRGB(HSL{H: -120, S: 1, L: 0.5}); got != (RGB{0, 0, 255}) {
		t.Errorf("hue -120 should wrap to 240, got %+v", got)
	}
	if got := HSLToRGB(HSL{H: 0, S: 2, L: 1.5}); got != (RGB{255, 255, 255}) {
		t.Errorf("out of range S/L should clamp, got %+v", got)
	}
}

func TestColor_RotateHue(t *testing.T) {
	c := MustParseColor("#ff0000").RotateHue(180)
	if c.Hex() != "#00ffff" {
		t.Errorf("rotate 180 = %s, want #00ffff", c.Hex())
	}
	if d := hueDistance(c.HSL().H, 180); d > 2 {
		t.Errorf("rotated hue = %f, want ~180", c.HSL().H)
	}
}

func TestColor_AdjustLightnessClamps(t *testing.T) {
	c := MustParseColor("#ffffff").AdjustLightness(0.5)
	if c.Hex() != "#ffffff" {
		t.Errorf("expected white to stay white, got %s", c.Hex())
	}
	c = MustParseColor("#000000").AdjustLightness(-0.5)
	if c.Hex() != "#000000" {
		t.Errorf("expected black to stay black, got %s", c.Hex())
	}
}

func TestColor_AdjustSaturation(t *testing.T) {
	c := MustParseColor("#3b82f6").AdjustSaturation(-1)
	rgb := c.RGB()
	if rgb.R != rgb.G || rgb.G != rgb.B {
		t.Errorf("fully desaturated colour should be grey, got %s", c.Hex())
	}
}

func TestColor_TextMarshaling(t *testing.T) {
	c := MustParseColor("#3B82F6")
	b, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(b) != "#3b82f6" {
		t.Errorf("MarshalText = %s, want canonical lowercase hex", b)
	}

	var back Color
	if err := back.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if back != c {
		t.Errorf("UnmarshalText = %v, want %v", back, c)
	}
	if err := back.UnmarshalText([]byte("nope")); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("UnmarshalText(nope) error = %v", err)
	}
}

func TestNormalizeHex(t *testing.T) {
	got, err := NormalizeHex("F00")
	if err != nil {
		t.Fatalf("NormalizeHex failed: %v", err)
	}
	if got != "#ff0000" {
		t.Errorf("NormalizeHex = %s, want #ff0000", got)
	}
}
