package otel

import (
	"context"
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

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

const (
	serviceName    = "projectboard"
	serviceVersion = "1.0.0"
)

// Exporter pushes project board metrics to an OTEL Collector.
type Exporter struct {
	provider           *sdkmetric.MeterProvider
	meter              metric.Meter
	projectsTotal      metric.Int64Counter
	peopleHist         metric.Int64Histogram
	rejectedTotal      metric.Int64Counter
	invalidFieldsTotal metric.Int64Counter
	storeSize          atomic.Int64
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Active() {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
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

	projectsTotal, err := meter.Int64Counter(
		"projectboard_projects_added_total",
		metric.WithDescription("Projects accepted into the store"),
		metric.WithUnit("{project}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating projects counter: %w", err)
	}

	peopleHist, err := meter.Int64Histogram(
		"projectboard_project_people",
		metric.WithDescription("Team size of added projects"),
		metric.WithUnit("{person}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating people histogram: %w", err)
	}

	rejectedTotal, err := meter.Int64Counter(
		"projectboard_submissions_rejected_total",
		metric.WithDescription("Form submissions that failed validation"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rejected counter: %w", err)
	}

	invalidFieldsTotal, err := meter.Int64Counter(
		"projectboard_invalid_fields_total",
		metric.WithDescription("Invalid form fields by name"),
		metric.WithUnit("{field}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating invalid fields counter: %w", err)
	}

	e := &Exporter{
		provider:           provider,
		meter:              meter,
		projectsTotal:      projectsTotal,
		peopleHist:         peopleHist,
		rejectedTotal:      rejectedTotal,
		invalidFieldsTotal: invalidFieldsTotal,
	}

	_, err = meter.Int64ObservableGauge(
		"projectboard_store_projects",
		metric.WithDescription("Projects currently held in the store"),
		metric.WithUnit("{project}"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(e.storeSize.Load())
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating store size gauge: %w", err)
	}

	return e, nil
}

func (e *Exporter) ProjectAdded(ctx context.Context, p domain.Project) {
	opt := metric.WithAttributes(attribute.String("status", p.Status.String()))
	e.projectsTotal.Add(ctx, 1, opt)
	e.peopleHist.Record(ctx, int64(p.People), opt)
}

func (e *Exporter) ValidationFailed(ctx context.Context, fields []string) {
	e.rejectedTotal.Add(ctx, 1)
	for _, f := range fields {
		e.invalidFieldsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("field", f)))
	}
}

func (e *Exporter) StoreSize(ctx context.Context, n int) {
	e.storeSize.Store(int64(n))
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
