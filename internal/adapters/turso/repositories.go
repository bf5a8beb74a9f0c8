package turso

import (
	"database/sql"

	"github.com/emiliopalmerini/palette/internal/ports"
)

// Repositories holds all turso repository implementations as port interfaces.
type Repositories struct {
	Palettes ports.PaletteRepository
}

// NewRepositories creates all turso repository implementations from a database connection.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Palettes: NewPaletteRepository(db),
	}
}
