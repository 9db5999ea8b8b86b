package projectinput

import (
	"context"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

// MockStore is a mock implementation of ProjectAdder for testing.
type MockStore struct {
	AddProjectFunc func(title, description string, people int) domain.Project
	calls          int
}

func (m *MockStore) AddProject(title, description string, people int) domain.Project {
	m.calls++
	if m.AddProjectFunc != nil {
		return m.AddProjectFunc(title, description, people)
	}
	return domain.Project{ID: "mock", Title: title, Description: description, People: people, Status: domain.StatusActive}
}

// MockMetrics records the calls it receives.
type MockMetrics struct {
	Added  []domain.Project
	Failed [][]string
	Sizes  []int
	Closed bool
}

func (m *MockMetrics) ProjectAdded(ctx context.Context, p domain.Project) { m.Added = append(m.Added, p) }

func (m *MockMetrics) ValidationFailed(ctx context.Context, fields []string) {
	m.Failed = append(m.Failed, fields)
}

func (m *MockMetrics) StoreSize(ctx context.Context, n int) { m.Sizes = append(m.Sizes, n) }

func (m *MockMetrics) Close(ctx context.Context) error {
	m.Closed = true
	return nil
}

// MockBoard renders fixed markers so tests can tell which part was drawn.
type MockBoard struct {
	PageForm    Form
	PageInvalid []string
	PageAlert   string
}

func (m *MockBoard) Page(f Form, invalid []string, alert string) templ.Component {
	m.PageForm = f
	m.PageInvalid = invalid
	m.PageAlert = alert
	return templ.Raw(`<page>` + templ.EscapeString(alert) + `</page>`)
}

func (m *MockBoard) ListSwaps() templ.Component {
	return templ.Raw(`<lists hx-swap-oob="true"></lists>`)
}
