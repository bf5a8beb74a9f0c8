package ports

import (
	"context"

	"github.com/emiliopalmerini/palette/internal/domain"
)

// PaletteRepository persists generated palettes.
type PaletteRepository interface {
	// Save inserts the palette or replaces the row with the same ID.
	Save(ctx context.Context, palette *domain.Palette) error
	// GetByID returns nil, nil when no palette has the ID.
	GetByID(ctx context.Context, id string) (*domain.Palette, error)
	// GetByName returns the most recently created palette with the name,
	// or nil, nil when none exists.
	GetByName(ctx context.Context, name string) (*domain.Palette, error)
	List(ctx context.Context) ([]PaletteSummary, error)
	// Delete reports whether a palette was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// PaletteSummary is the listing view of a stored palette.
type PaletteSummary struct {
	ID        string
	Name      string
	BaseColor string
	Harmony   string
	Tags      []string
	CreatedAt string
}
