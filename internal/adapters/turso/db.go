package turso

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emiliopalmerini/palette/internal/infrastructure/config"
	"github.com/emiliopalmerini/palette/internal/infrastructure/database"
	"github.com/emiliopalmerini/palette/internal/migrate"
)

// DB is the palette store connection with its schema applied.
type DB struct {
	*database.Client
}

// NewDB opens the configured store and applies pending migrations.
func NewDB(ctx context.Context, cfg config.Database, log *slog.Logger) (*DB, error) {
	client, err := database.Open(database.Options{
		Path:      cfg.Path,
		SyncURL:   cfg.SyncURL,
		AuthToken: cfg.AuthToken,
		Ping:      true,
	})
	if err != nil {
		return nil, err
	}

	if client.IsReplica() {
		if err := client.Sync(); err != nil {
			log.Warn("initial sync failed, continuing with local replica", "error", err)
		}
	}

	n, err := migrate.New(client.DB, log).Up(ctx)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if n > 0 {
		log.Debug("applied migrations", "count", n, "path", cfg.Path)
	}

	return &DB{Client: client}, nil
}
