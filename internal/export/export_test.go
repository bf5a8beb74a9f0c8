package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/palette/internal/domain"
)

func testPalette(t *testing.T, name string) *domain.Palette {
	t.Helper()

	p, err := domain.GenerateHarmony("#ff0000", domain.Complementary, name)
	if err != nil {
		t.Fatalf("GenerateHarmony failed: %v", err)
	}
	return p
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"css", FormatCSS, false},
		{"CSS", FormatCSS, false},
		{" json ", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"tw", FormatTailwind, false},
		{"html", FormatHTML, false},
		{"pdf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCSS(t *testing.T) {
	css := CSS(testPalette(t, "Brand"), "")

	for _, want := range []string{
		"--palette-brand-1: #ff0000;",
		"--palette-brand-1-rgb: 255, 0, 0;",
		"--palette-brand-2: #00ffff;",
		"--palette-brand-light:",
		"--palette-brand-dark:",
		"--palette-50:",
		"--palette-800:",
		"--palette-success:",
		"--palette-info:",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS output missing %q", want)
		}
	}
	if n := strings.Count(css, ":root {"); n != 3 {
		t.Errorf("expected 3 :root blocks, got %d", n)
	}
	if strings.Contains(css, "--palette-900:") {
		t.Error("scale should stop at 800")
	}
}

func TestCSS_CustomPrefix(t *testing.T) {
	css := CSS(testPalette(t, "Brand"), "acme")
	if !strings.Contains(css, "--acme-brand-1: #ff0000;") {
		t.Errorf("custom prefix not applied:\n%s", css)
	}
	if strings.Contains(css, "--palette-") {
		t.Error("default prefix leaked into custom prefix output")
	}
}

func TestTailwind(t *testing.T) {
	tw := Tailwind(testPalette(t, "Brand Kit"))

	for _, want := range []string{
		"module.exports = {",
		"'brand-kit': {",
		"'brand-kit-roles': {",
		"'primary': '#ff0000',",
		"'secondary': '#00ffff',",
		"50: '#",
		"800: '#",
	} {
		if !strings.Contains(tw, want) {
			t.Errorf("Tailwind output missing %q", want)
		}
	}
	if !strings.HasSuffix(tw, "};") {
		t.Error("Tailwind output should end with };")
	}
}

func TestJSON(t *testing.T) {
	p := testPalette(t, "Brand")
	b, err := JSON(p)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var doc struct {
		ID             string                                       `json:"id"`
		BaseColor      string                                       `json:"base_color"`
		Harmony        string                                       `json:"harmony"`
		Colors         []SwatchDoc                                  `json:"colors"`
		Tags           []string                                     `json:"tags"`
		Scale          []string                                     `json:"scale"`
		Semantic       map[string]string                            `json:"semantic"`
		Neutral        string                                       `json:"neutral"`
		ContrastMatrix map[string]map[string]map[string]interface{} `json:"contrast_matrix"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.ID != p.ID || doc.BaseColor != "#ff0000" || doc.Harmony != "complementary" {
		t.Errorf("unexpected header: id=%s base=%s harmony=%s", doc.ID, doc.BaseColor, doc.Harmony)
	}
	if len(doc.Colors) != 4 {
		t.Errorf("expected 4 colors (2 swatches + 2 companions), got %d", len(doc.Colors))
	}
	if doc.Colors[1].Hue != 180 {
		t.Errorf("complement hue = %f, want 180", doc.Colors[1].Hue)
	}
	if len(doc.Scale) != 9 {
		t.Errorf("expected 9 scale entries, got %d", len(doc.Scale))
	}
	for _, key := range []string{"success", "warning", "error", "info"} {
		if !strings.HasPrefix(doc.Semantic[key], "#") {
			t.Errorf("semantic %s = %q", key, doc.Semantic[key])
		}
	}
	if !strings.HasPrefix(doc.Neutral, "#") {
		t.Errorf("neutral = %q", doc.Neutral)
	}
	cell, ok := doc.ContrastMatrix["Brand-1"]["Brand-2"]
	if !ok {
		t.Fatal("contrast matrix missing Brand-1 -> Brand-2")
	}
	if cell["grade"] != "AA-Large" {
		t.Errorf("red/cyan grade = %v, want AA-Large", cell["grade"])
	}
	if _, self := doc.ContrastMatrix["Brand-1"]["Brand-1"]; self {
		t.Error("contrast matrix should skip self pairs")
	}
}

func TestJSON_EmptyTags(t *testing.T) {
	p := testPalette(t, "Brand")
	p.Tags = nil

	b, err := JSON(p)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if !bytes.Contains(b, []byte(`"tags": []`)) {
		t.Error("nil tags should encode as an empty array")
	}
}

func TestYAML(t *testing.T) {
	b, err := YAML(testPalette(t, "Brand"))
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if doc["base_color"] != "#ff0000" {
		t.Errorf("base_color = %v", doc["base_color"])
	}
	if _, ok := doc["neutral"].(string); !ok {
		t.Errorf("neutral should encode as a hex string, got %T", doc["neutral"])
	}
	if scale, ok := doc["scale"].([]interface{}); !ok || len(scale) != 9 {
		t.Errorf("unexpected scale: %v", doc["scale"])
	}
}

func TestHTML(t *testing.T) {
	p := testPalette(t, "<Brand>")
	p.Description = "a & b"

	var buf bytes.Buffer
	if err := HTML(p).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!doctype html>",
		"<title>&lt;Brand&gt;</title>",
		"<h1>&lt;Brand&gt;</h1>",
		"Complementary &middot; seed <code>#ff0000</code>",
		`style="background:#ff0000;"`,
		`style="background:#00ffff;"`,
		"<p>a &amp; b</p>",
		"<h2>Swatches</h2>",
		"<h2>Scale</h2>",
		"<h2>Semantic</h2>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
	if strings.Contains(out, "<Brand>") {
		t.Error("palette name was not escaped")
	}
	if got := strings.Count(out, `<div class="swatch">`); got != len(p.AllSwatches())+9+4 {
		t.Errorf("expected %d chips, got %d", len(p.AllSwatches())+9+4, got)
	}
}

func TestHTML_NoDescription(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(testPalette(t, "Brand")).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(buf.String(), "</code></p><p>") {
		t.Error("empty description should not render a paragraph")
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(context.Background(), &buf, testPalette(t, "Brand"), Format("pdf"), Options{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	p := testPalette(t, "Brand Kit")

	paths, err := WriteFiles(context.Background(), p, dir, Formats, Options{CSSPrefix: "bk"})
	if err != nil {
		t.Fatalf("WriteFiles failed: %v", err)
	}
	if len(paths) != len(Formats) {
		t.Fatalf("expected %d paths, got %d", len(Formats), len(paths))
	}

	wantNames := []string{
		"brand-kit.css",
		"brand-kit.tailwind.js",
		"brand-kit.json",
		"brand-kit.yaml",
		"brand-kit.html",
	}
	for i, path := range paths {
		if filepath.Base(path) != wantNames[i] {
			t.Errorf("path %d = %s, want %s", i, filepath.Base(path), wantNames[i])
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("reading %s: %v", path, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", path)
		}
	}

	css, _ := os.ReadFile(paths[0])
	if !bytes.Contains(css, []byte("--bk-brand-kit-1:")) {
		t.Error("CSS prefix option not honoured")
	}
}

func TestWriteFiles_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WriteFiles(ctx, testPalette(t, "Brand"), t.TempDir(), []Format{FormatCSS}, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
