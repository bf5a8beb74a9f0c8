package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/palette/internal/domain"
)

// WriteFiles renders p once per format into dir, concurrently. Files are
// named after the palette slug plus the format extension. The returned paths
// follow the order of formats.
func WriteFiles(ctx context.Context, p *domain.Palette, dir string, formats []Format, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := Slug(p.Name)
	if base == "" {
		base = p.ID
	}

	paths := make([]string, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		paths[i] = filepath.Join(dir, base+f.Extension())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := Render(ctx, &buf, p, f, opts); err != nil {
				return fmt.Errorf("render %s: %w", f, err)
			}
			if err := os.WriteFile(paths[i], buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("write %s: %w", paths[i], err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
