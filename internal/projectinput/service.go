package projectinput

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/domain"
	"github.com/emiliopalmerini/projectboard/internal/ports"
)

// ProjectAdder is the part of the store the form writes to.
type ProjectAdder interface {
	AddProject(title, description string, people int) domain.Project
}

// Service validates submissions and hands accepted ones to the store.
type Service struct {
	store   ProjectAdder
	metrics ports.MetricsRecorder
	logger  *zap.Logger
}

func NewService(store ProjectAdder, metrics ports.MetricsRecorder, logger *zap.Logger) *Service {
	if store == nil {
		panic("projectinput: nil store")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, metrics: metrics, logger: logger}
}

// Submit adds the project described by f. A submission either adds exactly
// one project or, when any field is invalid, returns a *ValidationError and
// leaves the store untouched.
func (s *Service) Submit(ctx context.Context, f Form) (domain.Project, error) {
	if err := f.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			s.logger.Info("project rejected", zap.Strings("fields", verr.Fields))
			if s.metrics != nil {
				s.metrics.ValidationFailed(ctx, verr.Fields)
			}
		}
		return domain.Project{}, err
	}

	p := s.store.AddProject(f.Title, f.Description, f.PeopleCount())
	s.logger.Info("project added",
		zap.String("id", p.ID),
		zap.String("title", p.Title),
		zap.Int("people", p.People),
	)
	if s.metrics != nil {
		s.metrics.ProjectAdded(ctx, p)
	}
	return p, nil
}
