package otel

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/palette/internal/domain"
	"github.com/emiliopalmerini/palette/internal/infrastructure/config"
)

const (
	serviceName    = "palette"
	serviceVersion = "1.0.0"
)

// ErrDisabled is returned by NewExporter when metrics export is off.
var ErrDisabled = errors.New("OTEL exporter is disabled or endpoint not configured")

// ErrClosed is returned when recording on an exporter that was shut down.
var ErrClosed = errors.New("OTEL exporter is closed")

// Exporter exports palette usage metrics to an OTEL Collector.
type Exporter struct {
	provider       *sdkmetric.MeterProvider
	palettesTotal  metric.Int64Counter
	swatchesHist   metric.Int64Histogram
	contrastsTotal metric.Int64Counter
	exportsTotal   metric.Int64Counter
	closed         atomic.Bool
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg config.OTEL) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, ErrDisabled
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	palettesTotal, err := meter.Int64Counter(
		"palette_generated_total",
		metric.WithDescription("Palettes generated, by harmony type"),
		metric.WithUnit("{palette}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating palettes counter: %w", err)
	}

	swatchesHist, err := meter.Int64Histogram(
		"palette_swatches",
		metric.WithDescription("Number of swatches per generated palette"),
		metric.WithUnit("{swatch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating swatches histogram: %w", err)
	}

	contrastsTotal, err := meter.Int64Counter(
		"palette_contrast_checks_total",
		metric.WithDescription("Graded contrast checks, by WCAG grade"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating contrast counter: %w", err)
	}

	exportsTotal, err := meter.Int64Counter(
		"palette_exports_total",
		metric.WithDescription("Rendered exports, by format"),
		metric.WithUnit("{export}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating exports counter: %w", err)
	}

	return &Exporter{
		provider:       provider,
		palettesTotal:  palettesTotal,
		swatchesHist:   swatchesHist,
		contrastsTotal: contrastsTotal,
		exportsTotal:   exportsTotal,
	}, nil
}

func (e *Exporter) RecordGeneration(ctx context.Context, harmony domain.HarmonyType, swatches int) error {
	if e.closed.Load() {
		return ErrClosed
	}
	opt := metric.WithAttributes(attribute.String("harmony", string(harmony)))
	e.palettesTotal.Add(ctx, 1, opt)
	e.swatchesHist.Record(ctx, int64(swatches), opt)
	return nil
}

func (e *Exporter) RecordContrast(ctx context.Context, results []domain.ContrastResult) error {
	if e.closed.Load() {
		return ErrClosed
	}
	counts := make(map[domain.Grade]int64)
	for _, r := range results {
		counts[r.Grade]++
	}
	for grade, n := range counts {
		e.contrastsTotal.Add(ctx, n, metric.WithAttributes(attribute.String("grade", string(grade))))
	}
	return nil
}

func (e *Exporter) RecordExport(ctx context.Context, format string) error {
	if e.closed.Load() {
		return ErrClosed
	}
	e.exportsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("format", format)))
	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	if e.closed.Swap(true) {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
