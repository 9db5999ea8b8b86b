package otel

import (
	"context"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) ProjectAdded(ctx context.Context, p domain.Project) {}

func (e *NoOpExporter) ValidationFailed(ctx context.Context, fields []string) {}

func (e *NoOpExporter) StoreSize(ctx context.Context, n int) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
