package projectinput

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

func TestService_Submit_Valid(t *testing.T) {
	store := &MockStore{}
	metrics := &MockMetrics{}
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewService(store, metrics, zap.New(core))

	p, err := svc.Submit(context.Background(), Form{Title: "Build API", Description: "Implement REST endpoints", People: "3"})

	require.NoError(t, err)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, "Build API", p.Title)
	assert.Equal(t, "Implement REST endpoints", p.Description)
	assert.Equal(t, 3, p.People)
	require.Len(t, metrics.Added, 1)
	assert.Empty(t, metrics.Failed)
	assert.Equal(t, 1, logs.FilterMessage("project added").Len())
}

func TestService_Submit_Invalid(t *testing.T) {
	store := &MockStore{
		AddProjectFunc: func(title, description string, people int) domain.Project {
			t.Fatal("AddProject must not be called for invalid input")
			return domain.Project{}
		},
	}
	metrics := &MockMetrics{}
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewService(store, metrics, zap.New(core))

	_, err := svc.Submit(context.Background(), Form{Title: "", Description: "ok", People: "2"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, 0, store.calls)
	assert.Empty(t, metrics.Added)
	require.Len(t, metrics.Failed, 1)
	assert.Equal(t, []string{FieldTitle, FieldDescription}, metrics.Failed[0])
	assert.Equal(t, 1, logs.FilterMessage("project rejected").Len())
}

func TestService_Submit_NilMetrics(t *testing.T) {
	svc := NewService(&MockStore{}, nil, nil)

	_, err := svc.Submit(context.Background(), Form{Title: "t", Description: "long enough", People: "1"})
	assert.NoError(t, err)

	_, err = svc.Submit(context.Background(), Form{})
	assert.Error(t, err)
}

func TestNewService_NilStorePanics(t *testing.T) {
	assert.Panics(t, func() { NewService(nil, nil, nil) })
}
