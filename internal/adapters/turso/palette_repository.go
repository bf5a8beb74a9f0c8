package turso

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emiliopalmerini/palette/internal/domain"
	"github.com/emiliopalmerini/palette/internal/ports"
)

// Fixed-width UTC timestamps keep created_at ordering lexical.
const timeLayout = "2006-01-02T15:04:05.000000Z"

type PaletteRepository struct {
	db *sql.DB
}

func NewPaletteRepository(db *sql.DB) *PaletteRepository {
	return &PaletteRepository{db: db}
}

type swatchRecord struct {
	Hex        string  `json:"hex"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Hue        float64 `json:"hue"`
	Lightness  float64 `json:"lightness"`
	Saturation float64 `json:"saturation"`
}

type paletteData struct {
	Swatches   []swatchRecord `json:"swatches"`
	Companions []swatchRecord `json:"companions,omitempty"`
}

func (r *PaletteRepository) Save(ctx context.Context, palette *domain.Palette) error {
	data, err := json.Marshal(paletteData{
		Swatches:   toRecords(palette.Swatches),
		Companions: toRecords(palette.Companions),
	})
	if err != nil {
		return fmt.Errorf("failed to encode swatches: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO palettes (id, name, base_color, harmony, data, tags, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		palette.ID,
		palette.Name,
		palette.Seed.Hex(),
		string(palette.Harmony),
		string(data),
		strings.Join(palette.Tags, ","),
		palette.Description,
		palette.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to save palette: %w", err)
	}
	return nil
}

const selectPalette = `SELECT id, name, base_color, harmony, data, tags, description, created_at FROM palettes`

func (r *PaletteRepository) GetByID(ctx context.Context, id string) (*domain.Palette, error) {
	row := r.db.QueryRowContext(ctx, selectPalette+` WHERE id = ?`, id)
	p, err := scanPalette(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get palette: %w", err)
	}
	return p, nil
}

func (r *PaletteRepository) GetByName(ctx context.Context, name string) (*domain.Palette, error) {
	row := r.db.QueryRowContext(ctx, selectPalette+` WHERE name = ? ORDER BY created_at DESC LIMIT 1`, name)
	p, err := scanPalette(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get palette by name: %w", err)
	}
	return p, nil
}

func (r *PaletteRepository) List(ctx context.Context) ([]ports.PaletteSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, base_color, harmony, tags, created_at
		FROM palettes
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []ports.PaletteSummary
	for rows.Next() {
		var s ports.PaletteSummary
		var tags string
		if err := rows.Scan(&s.ID, &s.Name, &s.BaseColor, &s.Harmony, &tags, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan palette: %w", err)
		}
		s.Tags = splitTags(tags)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	return out, nil
}

func (r *PaletteRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM palettes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete palette: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete palette: %w", err)
	}
	return n > 0, nil
}

func scanPalette(row *sql.Row) (*domain.Palette, error) {
	var (
		p                     domain.Palette
		base, harmony, data   string
		tags, desc, createdAt string
	)
	if err := row.Scan(&p.ID, &p.Name, &base, &harmony, &data, &tags, &desc, &createdAt); err != nil {
		return nil, err
	}

	seed, err := domain.ParseColor(base)
	if err != nil {
		return nil, fmt.Errorf("stored base color: %w", err)
	}

	var decoded paletteData
	if err := json.Unmarshal([]byte(data), &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode swatches: %w", err)
	}
	swatches, err := fromRecords(decoded.Swatches)
	if err != nil {
		return nil, err
	}
	companions, err := fromRecords(decoded.Companions)
	if err != nil {
		return nil, err
	}

	created, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("stored created_at: %w", err)
	}

	p.Seed = seed
	p.Harmony = domain.HarmonyType(harmony)
	p.Swatches = swatches
	p.Companions = companions
	p.Tags = splitTags(tags)
	p.Description = desc
	p.CreatedAt = created
	return &p, nil
}

func toRecords(swatches []domain.Swatch) []swatchRecord {
	if len(swatches) == 0 {
		return nil
	}
	out := make([]swatchRecord, len(swatches))
	for i, s := range swatches {
		hsl := s.Color.HSL()
		out[i] = swatchRecord{
			Hex:        s.Color.Hex(),
			Name:       s.Name,
			Role:       s.Role,
			Hue:        hsl.H,
			Lightness:  hsl.L,
			Saturation: hsl.S,
		}
	}
	return out
}

func fromRecords(records []swatchRecord) ([]domain.Swatch, error) {
	if len(records) == 0 {
		return nil, nil
	}
	out := make([]domain.Swatch, len(records))
	for i, rec := range records {
		c, err := domain.ParseColor(rec.Hex)
		if err != nil {
			return nil, fmt.Errorf("stored swatch %q: %w", rec.Name, err)
		}
		out[i] = domain.Swatch{Color: c, Name: rec.Name, Role: rec.Role}
	}
	return out, nil
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
