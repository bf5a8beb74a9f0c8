package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/palette/internal/adapters/otel"
	"github.com/emiliopalmerini/palette/internal/adapters/turso"
	"github.com/emiliopalmerini/palette/internal/domain"
	"github.com/emiliopalmerini/palette/internal/infrastructure/config"
	"github.com/emiliopalmerini/palette/internal/ports"
)

// testDBOverride replaces the configured store in tests.
var testDBOverride *sql.DB

var errPaletteNotFound = errors.New("palette not found")

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config   *config.Config
	Log      *slog.Logger
	DB       *turso.DB
	Palettes ports.PaletteRepository
	Metrics  ports.MetricsExporter
}

// NewAppContext loads configuration and wires the logger and metrics
// exporter. The palette store is opened only when withStore is set.
func NewAppContext(ctx context.Context, withStore bool) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log := newLogger(level, cfg.Log.Format, os.Stderr)

	a := &AppContext{Config: cfg, Log: log}

	exporter, err := otel.NewExporter(ctx, cfg.OTEL)
	switch {
	case errors.Is(err, otel.ErrDisabled):
		a.Metrics = otel.NewNoOpExporter()
	case err != nil:
		log.Warn("metrics exporter unavailable", "error", err)
		a.Metrics = otel.NewNoOpExporter()
	default:
		a.Metrics = exporter
	}

	if !withStore {
		return a, nil
	}

	if testDBOverride != nil {
		a.Palettes = turso.NewRepositories(testDBOverride).Palettes
		return a, nil
	}

	db, err := turso.NewDB(ctx, cfg.Database, log)
	if err != nil {
		_ = a.Metrics.Close(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.DB = db
	a.Palettes = turso.NewRepositories(db.DB).Palettes
	log.Debug("opened palette store", "path", cfg.Database.Path, "replica", db.IsReplica())
	return a, nil
}

// Sync pushes local writes to the remote primary when the store is a replica.
func (a *AppContext) Sync() {
	if a.DB == nil || !a.DB.IsReplica() {
		return
	}
	if err := a.DB.Sync(); err != nil {
		a.Log.Warn("sync failed", "error", err)
	}
}

// recordMetric logs a failed metrics write; metrics never fail a command.
func (a *AppContext) recordMetric(err error) {
	if err != nil {
		a.Log.Warn("failed to record metric", "error", err)
	}
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close(ctx context.Context) error {
	var errs []error
	if a.Metrics != nil {
		errs = append(errs, a.Metrics.Close(ctx))
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

// resolvePalette looks ref up as an ID first and then as a name.
func resolvePalette(ctx context.Context, repo ports.PaletteRepository, ref string) (*domain.Palette, error) {
	p, err := repo.GetByID(ctx, ref)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p, err = repo.GetByName(ctx, ref)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", errPaletteNotFound, ref)
	}
	return p, nil
}

// parseOptionalColor parses hex unless it is empty.
func parseOptionalColor(hex string) (*domain.Color, error) {
	if hex == "" {
		return nil, nil
	}
	c, err := domain.ParseColor(hex)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// withApp builds an AppContext for cmd, runs fn and closes the context.
func withApp(cmd *cobra.Command, withStore bool, fn func(ctx context.Context, app *AppContext) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := NewAppContext(ctx, withStore)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(context.WithoutCancel(ctx)); err != nil {
			app.Log.Warn("failed to release resources", "error", err)
		}
	}()

	return fn(ctx, app)
}
