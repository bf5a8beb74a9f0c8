package otel

import (
	"context"

	"github.com/emiliopalmerini/palette/internal/domain"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordGeneration(ctx context.Context, harmony domain.HarmonyType, swatches int) error {
	return nil
}

func (e *NoOpExporter) RecordContrast(ctx context.Context, results []domain.ContrastResult) error {
	return nil
}

func (e *NoOpExporter) RecordExport(ctx context.Context, format string) error {
	return nil
}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
