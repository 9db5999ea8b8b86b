package otel

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

func newTestExporter(t *testing.T) (*Exporter, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	exp, err := newExporter(provider)
	if err != nil {
		t.Fatalf("newExporter() error = %v", err)
	}
	t.Cleanup(func() { _ = exp.Close(context.Background()) })
	return exp, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func sumInt64(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("%s: data is %T, want Sum[int64]", m.Name, m.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestExporter_ProjectAdded(t *testing.T) {
	exp, reader := newTestExporter(t)
	ctx := context.Background()

	exp.ProjectAdded(ctx, domain.Project{People: 3, Status: domain.StatusActive})
	exp.ProjectAdded(ctx, domain.Project{People: 5, Status: domain.StatusActive})

	metrics := collect(t, reader)
	if got := sumInt64(t, metrics["projectboard_projects_added_total"]); got != 2 {
		t.Errorf("projects added = %d, want 2", got)
	}

	hist, ok := metrics["projectboard_project_people"].Data.(metricdata.Histogram[int64])
	if !ok {
		t.Fatalf("people histogram missing")
	}
	if len(hist.DataPoints) != 1 || hist.DataPoints[0].Sum != 8 {
		t.Errorf("people histogram = %+v, want one point with sum 8", hist.DataPoints)
	}
}

func TestExporter_ValidationFailed(t *testing.T) {
	exp, reader := newTestExporter(t)

	exp.ValidationFailed(context.Background(), []string{"title", "people"})

	metrics := collect(t, reader)
	if got := sumInt64(t, metrics["projectboard_submissions_rejected_total"]); got != 1 {
		t.Errorf("rejected = %d, want 1", got)
	}
	if got := sumInt64(t, metrics["projectboard_invalid_fields_total"]); got != 2 {
		t.Errorf("invalid fields = %d, want 2", got)
	}
}

func TestExporter_StoreSize(t *testing.T) {
	exp, reader := newTestExporter(t)

	exp.StoreSize(context.Background(), 4)

	metrics := collect(t, reader)
	gauge, ok := metrics["projectboard_store_projects"].Data.(metricdata.Gauge[int64])
	if !ok {
		t.Fatalf("store size gauge missing")
	}
	if len(gauge.DataPoints) != 1 || gauge.DataPoints[0].Value != 4 {
		t.Errorf("store size = %+v, want 4", gauge.DataPoints)
	}
}

func TestNewExporter_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "disabled", cfg: Config{Endpoint: "localhost:4317"}},
		{name: "no endpoint", cfg: Config{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewExporter(context.Background(), tt.cfg); err == nil {
				t.Error("NewExporter() expected error")
			}
		})
	}
}
