package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/trapdata/companion/components/pages"
)

func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.App(h.title, h.view.State()).Render(r.Context(), w); err != nil {
		h.serverError(w, r, err)
	}
}

func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.view.State()); err != nil {
		h.serverError(w, r, err)
	}
}
