package board

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/projectinput"
)

type Handler struct {
	board  *Board
	logger *zap.Logger
}

func NewHandler(board *Board, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{board: board, logger: logger}
}

// Index renders the page with an empty form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.board.Page(projectinput.Form{}, nil, "").Render(r.Context(), w); err != nil {
		h.logger.Error("render board", zap.Error(err))
	}
}
