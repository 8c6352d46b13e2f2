package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/trapdata/companion/components/assets"
	"github.com/trapdata/companion/internal/handlers"
	"github.com/trapdata/companion/internal/logger"
)

func New(h *handlers.Handler, slogger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logger.RequestLogger(slogger))
	r.Use(chimw.Recoverer)

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assets.DistFS()))))

	r.Get("/", h.HandlePage)
	r.Get("/ws", h.HandleWS)
	r.Get("/api/state", h.HandleState)
	r.Post("/api/ping", h.HandlePing)

	return r
}
