package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/palette/internal/infrastructure/database"
	"github.com/emiliopalmerini/palette/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down as needed).

Examples:
  palette migrate      # Run all pending migrations
  palette migrate 1    # Migrate to version 1
  palette migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	target := -1
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %s", args[0])
		}
		target = v
	}

	return withApp(cmd, false, func(ctx context.Context, app *AppContext) error {
		db := testDBOverride
		var client *database.Client
		if db == nil {
			var err error
			client, err = database.Open(database.Options{
				Path:      app.Config.Database.Path,
				SyncURL:   app.Config.Database.SyncURL,
				AuthToken: app.Config.Database.AuthToken,
				Ping:      true,
			})
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer func() { _ = client.Close() }()
			db = client.DB
		}

		out := cmd.OutOrStdout()
		m := migrate.New(db, app.Log)
		before, err := currentVersion(ctx, m)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Current version: %d\n", before)

		if target < 0 {
			n, err := m.Up(ctx)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(out, "No pending migrations")
			}
		} else if target == before {
			fmt.Fprintln(out, "Already at target version")
			return nil
		} else if err := m.To(ctx, target); err != nil {
			return err
		}

		after, err := currentVersion(ctx, m)
		if err != nil {
			return err
		}
		if after != before {
			fmt.Fprintf(out, "Migrated to version %d\n", after)
		}

		if client != nil && client.IsReplica() {
			if err := client.Sync(); err != nil {
				app.Log.Warn("failed to sync migrations to remote", "error", err)
			}
		}
		return nil
	})
}

func currentVersion(ctx context.Context, m *migrate.Migrator) (int, error) {
	if err := m.EnsureMigrationsTable(ctx); err != nil {
		return 0, fmt.Errorf("failed to create migrations table: %w", err)
	}
	v, _, err := m.CurrentVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}
	return v, nil
}
