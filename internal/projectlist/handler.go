package projectlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

type Handler struct {
	views  map[domain.ProjectStatus]*View
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger, views ...*View) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{views: make(map[domain.ProjectStatus]*View, len(views)), logger: logger}
	for _, v := range views {
		h.views[v.Status()] = v
	}
	return h
}

// List renders the list fragment of one status.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status, err := domain.ParseProjectStatus(chi.URLParam(r, "status"))
	if err != nil {
		http.Error(w, "Unknown project list", http.StatusNotFound)
		return
	}
	v, ok := h.views[status]
	if !ok {
		http.Error(w, "Unknown project list", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.ListComponent().Render(r.Context(), w); err != nil {
		h.logger.Error("render list", zap.String("status", status.String()), zap.Error(err))
	}
}
