package handlers

import (
	"log/slog"
	"net/http"

	"github.com/trapdata/companion/internal/view"
	"github.com/trapdata/companion/internal/ws"
)

type Handler struct {
	view   *view.View
	hub    *ws.Hub
	title  string
	logger *slog.Logger
}

func New(v *view.View, hub *ws.Hub, title string, logger *slog.Logger) *Handler {
	return &Handler{view: v, hub: hub, title: title, logger: logger}
}

func (h *Handler) serverError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
) {
	h.logger.Error("handler error", "path", r.URL.Path, "err", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
