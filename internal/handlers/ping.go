package handlers

import (
	"errors"
	"net/http"

	"github.com/trapdata/companion/internal/view"
)

func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	err := h.view.Ping(r.Context())
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, view.ErrNoBridge):
		http.Error(w, "not hooked up to a desktop app", http.StatusConflict)
	default:
		h.serverError(w, r, err)
	}
}
