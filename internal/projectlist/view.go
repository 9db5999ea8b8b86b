// Package projectlist renders the projects of one status as a list that
// follows the store.
package projectlist

import (
	"strings"
	"sync"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/projectboard/internal/domain"
	"github.com/emiliopalmerini/projectboard/internal/state"
)

// Subscriber is the part of the store a view listens to.
type Subscriber interface {
	Subscribe(tag string, l state.Listener)
}

// View keeps the projects of one status, recomputed from every store
// notification.
type View struct {
	status domain.ProjectStatus

	mu       sync.RWMutex
	assigned []domain.Project
}

// NewView creates a view and subscribes it to the store.
func NewView(store Subscriber, status domain.ProjectStatus) *View {
	if store == nil {
		panic("projectlist: nil store")
	}
	v := &View{status: status, assigned: []domain.Project{}}
	store.Subscribe(v.ID(), v.update)
	return v
}

// update replaces the assignment wholesale; nothing from the previous
// notification survives.
func (v *View) update(projects []domain.Project) {
	relevant := domain.FilterByStatus(projects, v.status)
	v.mu.Lock()
	v.assigned = relevant
	v.mu.Unlock()
}

func (v *View) Status() domain.ProjectStatus { return v.status }

// ID is the element id of the list section, also used as the store tag.
func (v *View) ID() string { return v.status.String() + "-projects" }

// ListID is the element id of the list items container.
func (v *View) ListID() string { return v.ID() + "-list" }

func (v *View) Heading() string {
	return strings.ToUpper(v.status.String()) + " PROJECTS"
}

// Assigned returns a copy of the projects currently shown.
func (v *View) Assigned() []domain.Project {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]domain.Project, len(v.assigned))
	copy(out, v.assigned)
	return out
}

// Component renders the whole section: heading plus list.
func (v *View) Component() templ.Component {
	return section(v.ID(), v.Heading(), v.ListID(), v.Assigned())
}

// ListComponent renders only the list items container.
func (v *View) ListComponent() templ.Component {
	return projectList(v.ListID(), false, v.Assigned())
}

// OOBComponent renders the list container marked for an htmx out-of-band
// swap, replacing the element with the same id.
func (v *View) OOBComponent() templ.Component {
	return projectList(v.ListID(), true, v.Assigned())
}
