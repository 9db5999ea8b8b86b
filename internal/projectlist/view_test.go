package projectlist

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emiliopalmerini/projectboard/internal/domain"
	"github.com/emiliopalmerini/projectboard/internal/state"
)

func html(t *testing.T, v *View, oob bool) string {
	t.Helper()
	var b strings.Builder
	c := v.ListComponent()
	if oob {
		c = v.OOBComponent()
	}
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestNewView_Subscribes(t *testing.T) {
	s := state.NewStore()
	NewView(s, domain.StatusActive)
	NewView(s, domain.StatusFinished)

	assert.Equal(t, []string{"active-projects", "finished-projects"}, s.Tags())
}

func TestView_Names(t *testing.T) {
	s := state.NewStore()
	active := NewView(s, domain.StatusActive)
	finished := NewView(s, domain.StatusFinished)

	assert.Equal(t, "active-projects", active.ID())
	assert.Equal(t, "active-projects-list", active.ListID())
	assert.Equal(t, "ACTIVE PROJECTS", active.Heading())
	assert.Equal(t, "finished-projects-list", finished.ListID())
	assert.Equal(t, "FINISHED PROJECTS", finished.Heading())
}

func TestView_FiltersByStatus(t *testing.T) {
	s := state.NewStore()
	active := NewView(s, domain.StatusActive)
	finished := NewView(s, domain.StatusFinished)

	s.AddProject("Build API", "Implement REST endpoints", 3)

	require.Len(t, active.Assigned(), 1)
	assert.Equal(t, "Build API", active.Assigned()[0].Title)
	assert.Empty(t, finished.Assigned())
}

func TestView_UpdateReplacesAssignment(t *testing.T) {
	v := &View{status: domain.StatusFinished}

	v.update([]domain.Project{
		{ID: "1", Title: "a", Status: domain.StatusFinished},
		{ID: "2", Title: "b", Status: domain.StatusActive},
		{ID: "3", Title: "c", Status: domain.StatusFinished},
	})
	require.Len(t, v.Assigned(), 2)

	v.update([]domain.Project{{ID: "4", Title: "d", Status: domain.StatusFinished}})
	assigned := v.Assigned()
	require.Len(t, assigned, 1)
	assert.Equal(t, "4", assigned[0].ID)
}

func TestView_RendersEachProjectOnce(t *testing.T) {
	s := state.NewStore()
	v := NewView(s, domain.StatusActive)

	s.AddProject("first", "first project", 1)
	s.AddProject("second", "second project", 2)

	out := html(t, v, false)
	assert.Equal(t, 2, strings.Count(out, "<li"))
	assert.Equal(t, 1, strings.Count(out, ">first</li>"))
	assert.Equal(t, 1, strings.Count(out, ">second</li>"))
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestView_RenderIsRepeatable(t *testing.T) {
	s := state.NewStore()
	v := NewView(s, domain.StatusActive)
	s.AddProject("only", "only project", 1)

	first := html(t, v, false)
	second := html(t, v, false)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(second, "<li"))
}

func TestView_EscapesTitles(t *testing.T) {
	s := state.NewStore()
	v := NewView(s, domain.StatusActive)
	s.AddProject(`<script>alert("x")</script>`, "description", 1)

	out := html(t, v, false)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestView_Component(t *testing.T) {
	s := state.NewStore(state.WithIDGenerator(func() string { return "p1" }))
	v := NewView(s, domain.StatusActive)
	s.AddProject("Build API", "Implement REST endpoints", 3)

	var b strings.Builder
	require.NoError(t, v.Component().Render(context.Background(), &b))

	assert.Equal(t,
		`<section class="projects" id="active-projects"><header><h2>ACTIVE PROJECTS</h2></header>`+
			`<ul id="active-projects-list"><li id="project-p1">Build API</li></ul></section>`,
		b.String())
}

func TestView_OOBComponent(t *testing.T) {
	s := state.NewStore()
	v := NewView(s, domain.StatusFinished)

	out := html(t, v, true)
	assert.Equal(t, `<ul id="finished-projects-list" hx-swap-oob="true"></ul>`, out)
}

func TestView_ManyNotifications(t *testing.T) {
	s := state.NewStore()
	v := NewView(s, domain.StatusActive)
	for i := 0; i < 10; i++ {
		s.AddProject(fmt.Sprintf("p%d", i), "description", 1)
	}

	assert.Len(t, v.Assigned(), 10)
	assert.Equal(t, 10, strings.Count(html(t, v, false), "<li"))
}
