package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

// ProjectLister reads the current projects.
type ProjectLister interface {
	Projects() []domain.Project
}

type Handler struct {
	store  ProjectLister
	logger *zap.Logger
}

func NewHandler(store ProjectLister, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// Projects returns the store snapshot as JSON, optionally filtered with
// ?status=active|finished.
func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	projects := h.store.Projects()

	if s := r.URL.Query().Get("status"); s != "" {
		status, err := domain.ParseProjectStatus(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		projects = domain.FilterByStatus(projects, status)
	}

	resp := ProjectsResponse{
		Projects: make([]ProjectResponse, 0, len(projects)),
		Count:    len(projects),
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, toProjectResponse(p))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode projects", zap.Error(err))
	}
}
