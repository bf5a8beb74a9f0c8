package cli

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emiliopalmerini/palette/internal/domain"
)

// TestPaletteLifecycle_Memory runs the store-backed commands against in-memory SQLite.
func TestPaletteLifecycle_Memory(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	runPaletteLifecycle(t, db)
}

// TestPaletteLifecycle_Turso runs the same commands against a Turso container.
// This is slower and only runs when PALETTE_TEST_TURSO=1.
func TestPaletteLifecycle_Turso(t *testing.T) {
	if os.Getenv("PALETTE_TEST_TURSO") != "1" {
		t.Skip("Skipping Turso integration test: set PALETTE_TEST_TURSO=1 to run")
	}

	db, cleanup := testTursoDB(t)
	defer cleanup()

	runPaletteLifecycle(t, db)
}

func runPaletteLifecycle(t *testing.T, db *sql.DB) {
	t.Helper()
	useDB(t, db)

	out, err := runCLI(t, "generate", "#3b82f6", "triadic", "--name", "Ocean", "--desc", "calm", "--tag", "brand", "--save")
	if err != nil {
		t.Fatalf("generate --save failed: %v", err)
	}
	if !strings.Contains(out, "Saved palette") {
		t.Errorf("generate output missing save confirmation:\n%s", out)
	}

	out, err = runCLI(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"Ocean", "triadic", "#3b82f6", "triadic,brand", "Showing 1 palette(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "show", "Ocean")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{"Ocean-1", "Ocean-light", "calm", "Scale", "success", "neutral"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "css", "Ocean", "--prefix", "brand")
	if err != nil {
		t.Fatalf("css failed: %v", err)
	}
	if !strings.Contains(out, "--brand-ocean-1: #3b82f6;") {
		t.Errorf("css output missing seed variable:\n%s", out)
	}

	out, err = runCLI(t, "tailwind", "Ocean")
	if err != nil {
		t.Fatalf("tailwind failed: %v", err)
	}
	if !strings.Contains(out, "'ocean-roles': {") {
		t.Errorf("tailwind output missing roles map:\n%s", out)
	}

	out, err = runCLI(t, "export", "Ocean", "--format", "yaml")
	if err != nil {
		t.Fatalf("export yaml failed: %v", err)
	}
	if !strings.Contains(out, "base_color:") || !strings.Contains(out, "#3b82f6") {
		t.Errorf("yaml export missing base_color:\n%s", out)
	}

	dir := t.TempDir()
	out, err = runCLI(t, "export", "Ocean", "--format", "all", "--out", dir)
	if err != nil {
		t.Fatalf("export --out failed: %v", err)
	}
	if n := strings.Count(out, "Wrote "); n != 5 {
		t.Errorf("expected 5 files written, got %d:\n%s", n, out)
	}
	if _, err := os.Stat(filepath.Join(dir, "ocean.html")); err != nil {
		t.Errorf("html export missing: %v", err)
	}

	out, err = runCLI(t, "a11y", "Ocean", "--background", "#ffffff")
	if err != nil {
		t.Fatalf("a11y failed: %v", err)
	}
	if !strings.Contains(out, "Accessibility: Ocean") || !strings.Contains(out, "pass rate") {
		t.Errorf("unexpected a11y output:\n%s", out)
	}

	out, err = runCLI(t, "delete", "Ocean")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out, "Deleted palette Ocean") {
		t.Errorf("unexpected delete output:\n%s", out)
	}

	_, err = runCLI(t, "show", "Ocean")
	if !errors.Is(err, errPaletteNotFound) {
		t.Fatalf("expected errPaletteNotFound after delete, got %v", err)
	}
	assertEqual(t, "error message", "palette not found: Ocean", err.Error())
}

func TestList_Empty(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()
	useDB(t, db)

	out, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	assertEqual(t, "output", "No palettes found\n", out)
}

func TestDelete_Missing(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()
	useDB(t, db)

	_, err := runCLI(t, "delete", "nope")
	if !errors.Is(err, errPaletteNotFound) {
		t.Errorf("expected errPaletteNotFound, got %v", err)
	}
}

func TestGenerate_WithoutSaveDoesNotPersist(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()
	useDB(t, db)

	out, err := runCLI(t, "generate", "#ff0000", "complementary")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out, "#00ffff") {
		t.Errorf("complement missing from output:\n%s", out)
	}
	if strings.Contains(out, "Saved palette") {
		t.Error("palette should not be saved without --save")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM palettes`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	assertEqual(t, "stored palettes", 0, count)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"invalid seed", []string{"generate", "#zzzzzz", "triadic"}, domain.ErrInvalidColor},
		{"invalid seed and harmony", []string{"generate", "nope", "nope"}, domain.ErrInvalidColor},
		{"unknown harmony", []string{"generate", "#3b82f6", "pentadic"}, domain.ErrUnknownHarmony},
		{"invalid background", []string{"generate", "#3b82f6", "triadic", "--background", "white"}, domain.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGenerate_JSON(t *testing.T) {
	out, err := runCLI(t, "generate", "#3b82f6", "monochromatic", "--json")
	if err != nil {
		t.Fatalf("generate --json failed: %v", err)
	}
	if !strings.Contains(out, `"harmony": "monochromatic"`) || !strings.Contains(out, `"contrast_matrix"`) {
		t.Errorf("unexpected JSON output:\n%s", out)
	}
}

func TestGenerate_Background(t *testing.T) {
	out, err := runCLI(t, "generate", "#000000", "complementary", "--background", "#ffffff")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out, "21.00:1") {
		t.Errorf("expected black-on-white audit line:\n%s", out)
	}
}

func TestExport_MultipleFormatsNeedOut(t *testing.T) {
	_, err := runCLI(t, "export", "Ocean", "--format", "css,json")
	if err == nil || !strings.Contains(err.Error(), "--out") {
		t.Errorf("expected --out error, got %v", err)
	}
}
