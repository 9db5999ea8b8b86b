package projectinput

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/shared/middleware"
)

// Board renders what surrounds the form: the full page for plain requests and
// the list regions swapped in after an HTMX submission.
type Board interface {
	Page(f Form, invalid []string, alert string) templ.Component
	ListSwaps() templ.Component
}

type Handler struct {
	service *Service
	board   Board
	logger  *zap.Logger
}

func NewHandler(service *Service, board Board, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, board: board, logger: logger}
}

// Create handles a form submission.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := Form{
		Title:       strings.TrimSpace(r.FormValue(FieldTitle)),
		Description: strings.TrimSpace(r.FormValue(FieldDescription)),
		People:      strings.TrimSpace(r.FormValue(FieldPeople)),
	}

	_, err := h.service.Submit(ctx, form)
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		h.reject(w, r, form, verr)
		return
	case err != nil:
		h.logger.Error("submit project", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if !middleware.IsHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := FormComponent(Form{}, nil).Render(ctx, w); err != nil {
		h.logger.Error("render form", zap.Error(err))
		return
	}
	if err := h.board.ListSwaps().Render(ctx, w); err != nil {
		h.logger.Error("render lists", zap.Error(err))
	}
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, form Form, verr *ValidationError) {
	if middleware.IsHTMX(r) {
		if err := middleware.Trigger(w, "showAlert", AlertMessage); err != nil {
			h.logger.Error("set alert trigger", zap.Error(err))
		}
		middleware.Reswap(w, "none")
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := h.board.Page(form, verr.Fields, AlertMessage).Render(r.Context(), w); err != nil {
		h.logger.Error("render page", zap.Error(err))
	}
}
