// Package state holds the application's project store and its listener
// registry.
package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

// Listener receives a snapshot of every project whenever the set changes.
// The slice is owned by the listener.
type Listener func(projects []domain.Project)

type subscription struct {
	tag      string
	listener Listener
}

// Store is the single project registry of a running application. It is
// constructed once and handed to every component that reads or adds projects.
type Store struct {
	// addMu serializes AddProject so notifications for one add finish before
	// the next add starts.
	addMu sync.Mutex

	mu            sync.RWMutex
	projects      []domain.Project
	subscriptions []subscription

	newID func() string
	now   func() time.Time
}

type Option func(*Store)

// WithIDGenerator replaces the uuid based id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock sets the time source used for CreatedAt.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		newID: func() string { return uuid.New().String() },
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers a listener under a tag. Listeners are called for every
// later change, in registration order; existing projects are not replayed.
func (s *Store) Subscribe(tag string, l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions = append(s.subscriptions, subscription{tag: tag, listener: l})
}

// Tags returns the tags of the registered listeners in registration order.
func (s *Store) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tags := make([]string, len(s.subscriptions))
	for i, sub := range s.subscriptions {
		tags[i] = sub.tag
	}
	return tags
}

// AddProject appends a new active project and notifies every listener before
// returning. Input is not validated here. Listeners must not call AddProject.
func (s *Store) AddProject(title, description string, people int) domain.Project {
	s.addMu.Lock()
	defer s.addMu.Unlock()

	p := domain.Project{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      domain.StatusActive,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	s.projects = append(s.projects, p)
	subs := make([]subscription, len(s.subscriptions))
	copy(subs, s.subscriptions)
	projects := s.projects
	s.mu.Unlock()

	// projects is only appended to under addMu, so the prefix read below is
	// stable while we hold it.
	for _, sub := range subs {
		sub.listener(snapshot(projects))
	}

	return p
}

// Projects returns a copy of every project in insertion order.
func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.projects)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

func snapshot(projects []domain.Project) []domain.Project {
	out := make([]domain.Project, len(projects))
	copy(out, projects)
	return out
}
