package ports

import (
	"context"

	"github.com/emiliopalmerini/palette/internal/domain"
)

// MetricsExporter exports usage metrics to an external observability system.
type MetricsExporter interface {
	// RecordGeneration counts a generated palette.
	RecordGeneration(ctx context.Context, harmony domain.HarmonyType, swatches int) error
	// RecordContrast counts graded contrast checks by grade.
	RecordContrast(ctx context.Context, results []domain.ContrastResult) error
	// RecordExport counts a rendered export.
	RecordExport(ctx context.Context, format string) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
