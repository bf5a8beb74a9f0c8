package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/palette/migrations"
)

// ErrDirty is returned when a previous migration failed half-way.
var ErrDirty = errors.New("database is in dirty state")

// Migration represents a single database migration with up and down SQL.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

var upPattern = regexp.MustCompile(`^(\d+)_(.+)\.up\.sql$`)

// Migrator applies embedded migrations to a database.
type Migrator struct {
	db     *sql.DB
	source fs.FS
	log    *slog.Logger
}

// New returns a Migrator over the embedded palette migrations.
func New(db *sql.DB, log *slog.Logger) *Migrator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Migrator{db: db, source: migrations.FS, log: log}
}

// EnsureMigrationsTable creates the schema_migrations table if it doesn't exist.
func (m *Migrator) EnsureMigrationsTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			dirty INTEGER NOT NULL DEFAULT 0
		)
	`)
	return err
}

// CurrentVersion returns the current migration version and dirty state.
func (m *Migrator) CurrentVersion(ctx context.Context) (int, bool, error) {
	var version, dirty int

	err := m.db.QueryRowContext(ctx, `SELECT version, dirty FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&version, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return version, dirty == 1, nil
}

func (m *Migrator) setVersion(ctx context.Context, version int, dirty bool) error {
	dirtyInt := 0
	if dirty {
		dirtyInt = 1
	}

	if _, err := m.db.ExecContext(ctx, `DELETE FROM schema_migrations`); err != nil {
		return err
	}
	if version <= 0 {
		return nil
	}
	_, err := m.db.ExecContext(ctx, `INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`, version, dirtyInt)
	return err
}

// Load reads all migration files and returns them sorted by version.
func (m *Migrator) Load() ([]Migration, error) {
	var result []Migration

	err := fs.WalkDir(m.source, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		matches := upPattern.FindStringSubmatch(path.Base(p))
		if matches == nil {
			return nil
		}

		version, _ := strconv.Atoi(matches[1])
		name := matches[2]

		upSQL, err := fs.ReadFile(m.source, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		// Down migrations are optional.
		downPath := path.Join(path.Dir(p), fmt.Sprintf("%s_%s.down.sql", matches[1], name))
		downSQL, _ := fs.ReadFile(m.source, downPath)

		result = append(result, Migration{
			Version: version,
			Name:    name,
			UpSQL:   string(upSQL),
			DownSQL: string(downSQL),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})
	return result, nil
}

// Run executes a single migration (up or down). The version is marked dirty
// while its statements run.
func (m *Migrator) Run(ctx context.Context, mig Migration, up bool) error {
	direction := "up"
	sqlContent := mig.UpSQL
	targetVersion := mig.Version
	if !up {
		direction = "down"
		sqlContent = mig.DownSQL
		targetVersion = mig.Version - 1
	}

	m.log.Info("applying migration", "direction", direction, "version", mig.Version, "name", mig.Name)

	if err := m.setVersion(ctx, mig.Version, true); err != nil {
		return fmt.Errorf("failed to set dirty flag: %w", err)
	}

	for _, stmt := range SplitSQL(sqlContent) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute migration %d %s: %w\nSQL: %s", mig.Version, direction, err, stmt)
		}
	}

	if err := m.setVersion(ctx, targetVersion, false); err != nil {
		return fmt.Errorf("failed to clear dirty flag: %w", err)
	}
	return nil
}

// SplitSQL splits a SQL script on semicolons, dropping empty statements.
// Semicolons inside string literals are not supported.
func SplitSQL(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// prepare ensures the bookkeeping table, refuses dirty databases, and loads
// the migration set.
func (m *Migrator) prepare(ctx context.Context) ([]Migration, int, error) {
	if err := m.EnsureMigrationsTable(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, dirty, err := m.CurrentVersion(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get current version: %w", err)
	}
	if dirty {
		return nil, 0, fmt.Errorf("%w at version %d, manual intervention required", ErrDirty, current)
	}

	all, err := m.Load()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load migrations: %w", err)
	}
	return all, current, nil
}

// Up applies every pending migration and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	all, current, err := m.prepare(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range all {
		if mig.Version <= current {
			continue
		}
		if err := m.Run(ctx, mig, true); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// To migrates up or down until target is the current version.
func (m *Migrator) To(ctx context.Context, target int) error {
	all, current, err := m.prepare(ctx)
	if err != nil {
		return err
	}

	switch {
	case target > current:
		for _, mig := range all {
			if mig.Version <= current {
				continue
			}
			if mig.Version > target {
				break
			}
			if err := m.Run(ctx, mig, true); err != nil {
				return err
			}
		}
	case target < current:
		for i := len(all) - 1; i >= 0; i-- {
			mig := all[i]
			if mig.Version > current {
				continue
			}
			if mig.Version <= target {
				break
			}
			if mig.DownSQL == "" {
				return fmt.Errorf("no down migration for version %d", mig.Version)
			}
			if err := m.Run(ctx, mig, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// RunAll runs all pending migrations on the provided database.
func RunAll(ctx context.Context, db *sql.DB) error {
	_, err := New(db, nil).Up(ctx)
	return err
}
