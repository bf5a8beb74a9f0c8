package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/palette/internal/domain"
)

// SwatchDoc is the serialised form of a swatch.
type SwatchDoc struct {
	Hex        string  `json:"hex" yaml:"hex"`
	Name       string  `json:"name" yaml:"name"`
	Role       string  `json:"role" yaml:"role"`
	Hue        float64 `json:"hue" yaml:"hue"`
	Lightness  float64 `json:"lightness" yaml:"lightness"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
}

// Document is the full export of a palette with its derived data.
type Document struct {
	ID             string                                   `json:"id" yaml:"id"`
	Name           string                                   `json:"name" yaml:"name"`
	BaseColor      string                                   `json:"base_color" yaml:"base_color"`
	Harmony        string                                   `json:"harmony" yaml:"harmony"`
	Colors         []SwatchDoc                              `json:"colors" yaml:"colors"`
	Tags           []string                                 `json:"tags" yaml:"tags"`
	CreatedAt      string                                   `json:"created_at" yaml:"created_at"`
	Description    string                                   `json:"description" yaml:"description"`
	Scale          []string                                 `json:"scale" yaml:"scale"`
	Semantic       domain.SemanticTokens                    `json:"semantic" yaml:"semantic"`
	Neutral        domain.Color                             `json:"neutral" yaml:"neutral"`
	ContrastMatrix map[string]map[string]domain.MatrixEntry `json:"contrast_matrix" yaml:"contrast_matrix"`
}

// NewDocument assembles the export document for p.
func NewDocument(p *domain.Palette) Document {
	all := p.AllSwatches()
	colors := make([]SwatchDoc, len(all))
	for i, sw := range all {
		hsl := sw.Color.HSL()
		colors[i] = SwatchDoc{
			Hex:        sw.Color.Hex(),
			Name:       sw.Name,
			Role:       sw.Role,
			Hue:        round(hsl.H, 2),
			Lightness:  round(hsl.L, 4),
			Saturation: round(hsl.S, 4),
		}
	}

	var scale []string
	for _, stop := range domain.ScaleOf(p.Seed) {
		scale = append(scale, stop.Color.Hex())
	}

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return Document{
		ID:             p.ID,
		Name:           p.Name,
		BaseColor:      p.Seed.Hex(),
		Harmony:        string(p.Harmony),
		Colors:         colors,
		Tags:           tags,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
		Description:    p.Description,
		Scale:          scale,
		Semantic:       domain.SemanticTokensOf(p),
		Neutral:        domain.NeutralFor(p.Seed),
		ContrastMatrix: domain.ContrastMatrix(p),
	}
}

// JSON renders the export document with two-space indentation.
func JSON(p *domain.Palette) ([]byte, error) {
	b, err := json.MarshalIndent(NewDocument(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return b, nil
}

// YAML renders the export document as YAML.
func YAML(p *domain.Palette) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(p)); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}
