package cli

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	_ "github.com/tursodatabase/go-libsql"

	"github.com/emiliopalmerini/palette/internal/migrate"
)

// testDB creates a per-test SQLite database with all migrations applied.
// This is fast and suitable for most unit/integration tests.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	db, err := sql.Open("libsql", "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := migrate.RunAll(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		db.Close()
	}

	return db, cleanup
}

// testTursoDB creates a Turso (libsql-server) container for full integration testing.
// This is slower but tests against the real Turso server.
func testTursoDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "ghcr.io/tursodatabase/libsql-server:latest",
		ExposedPorts: []string{"8080/tcp"},
		WaitingFor:   wait.ForHTTP("/health").WithPort("8080/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Turso container: %v", err)
	}

	mappedPort, err := container.MappedPort(ctx, "8080")
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to get mapped port: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to get container host: %v", err)
	}

	url := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	db, err := sql.Open("libsql", url)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to connect to Turso: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		container.Terminate(ctx)
		t.Fatalf("Failed to ping Turso: %v", err)
	}

	if err := migrate.RunAll(ctx, db); err != nil {
		db.Close()
		container.Terminate(ctx)
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		db.Close()
		container.Terminate(ctx)
	}

	return db, cleanup
}

// useDB points the commands at db for the rest of the test.
func useDB(t *testing.T, db *sql.DB) {
	t.Helper()
	testDBOverride = db
	t.Cleanup(func() { testDBOverride = nil })
}

// runCLI executes the root command with args and returns what it wrote to
// stdout. Flags are reset afterwards so tests don't leak into each other.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("PALETTE_DB", filepath.Join(t.TempDir(), "palettes.db"))
	t.Setenv("PALETTE_OTEL_ENABLED", "false")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	defer resetFlags(rootCmd)

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func assertEqual[T comparable](t *testing.T, name string, expected, actual T) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", name, expected, actual)
	}
}
