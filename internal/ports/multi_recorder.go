package ports

import (
	"context"
	"errors"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

// MultiRecorder fans every call out to each recorder in order.
type MultiRecorder []MetricsRecorder

func (m MultiRecorder) ProjectAdded(ctx context.Context, p domain.Project) {
	for _, r := range m {
		r.ProjectAdded(ctx, p)
	}
}

func (m MultiRecorder) ValidationFailed(ctx context.Context, fields []string) {
	for _, r := range m {
		r.ValidationFailed(ctx, fields)
	}
}

func (m MultiRecorder) StoreSize(ctx context.Context, n int) {
	for _, r := range m {
		r.StoreSize(ctx, n)
	}
}

func (m MultiRecorder) Close(ctx context.Context) error {
	var errs []error
	for _, r := range m {
		if err := r.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
