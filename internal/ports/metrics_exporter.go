package ports

import (
	"context"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

// MetricsRecorder records project board activity to an observability backend.
type MetricsRecorder interface {
	// ProjectAdded records a project accepted into the store.
	ProjectAdded(ctx context.Context, p domain.Project)
	// ValidationFailed records a rejected submission and the fields that failed.
	ValidationFailed(ctx context.Context, fields []string)
	// StoreSize records the number of projects currently held.
	StoreSize(ctx context.Context, n int)
	// Close flushes pending metrics and releases the backend.
	Close(ctx context.Context) error
}
