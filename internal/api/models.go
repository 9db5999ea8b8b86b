package api

import (
	"time"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	People      int       `json:"people"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

func toProjectResponse(p domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		People:      p.People,
		Status:      p.Status.String(),
		CreatedAt:   p.CreatedAt,
	}
}
