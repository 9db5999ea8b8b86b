package ports_test

import (
	"context"
	"errors"
	"testing"

	"github.com/emiliopalmerini/projectboard/internal/domain"
	"github.com/emiliopalmerini/projectboard/internal/ports"
)

type countingRecorder struct {
	added, failed, sizes int
	closeErr             error
}

func (c *countingRecorder) ProjectAdded(context.Context, domain.Project) { c.added++ }
func (c *countingRecorder) ValidationFailed(context.Context, []string) { c.failed++ }
func (c *countingRecorder) StoreSize(context.Context, int) { c.sizes++ }
func (c *countingRecorder) Close(context.Context) error { return c.closeErr }

func TestMultiRecorder_FansOut(t *testing.T) {
	a, b := &countingRecorder{}, &countingRecorder{}
	m := ports.MultiRecorder{a, b}
	ctx := context.Background()

	m.ProjectAdded(ctx, domain.Project{})
	m.ValidationFailed(ctx, []string{"title"})
	m.StoreSize(ctx, 1)
	m.StoreSize(ctx, 2)

	for i, r := range []*countingRecorder{a, b} {
		if r.added != 1 || r.failed != 1 || r.sizes != 2 {
			t.Errorf("recorder %d = %+v, want 1 added, 1 failed, 2 sizes", i, *r)
		}
	}
}

func TestMultiRecorder_CloseJoinsErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	m := ports.MultiRecorder{
		&countingRecorder{closeErr: errA},
		&countingRecorder{},
		&countingRecorder{closeErr: errB},
	}

	err := m.Close(context.Background())
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Close() = %v, want both errors", err)
	}
}

func TestMultiRecorder_Empty(t *testing.T) {
	var m ports.MultiRecorder
	m.ProjectAdded(context.Background(), domain.Project{})
	if err := m.Close(context.Background()); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}
