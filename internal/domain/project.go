package domain

import (
	"fmt"
	"time"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus int

const (
	StatusActive ProjectStatus = iota
	StatusFinished
)

func (s ProjectStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseProjectStatus maps the list type names used in URLs and element ids
// back to a status.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch s {
	case "active":
		return StatusActive, nil
	case "finished":
		return StatusFinished, nil
	default:
		return 0, fmt.Errorf("unknown project status %q", s)
	}
}

type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      ProjectStatus
	CreatedAt   time.Time
}

// FilterByStatus returns the projects with the given status, keeping their
// order. The input slice is never modified.
func FilterByStatus(projects []Project, status ProjectStatus) []Project {
	filtered := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == status {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
