package logger

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// RequestLogger logs every HTTP request through logger.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return chimw.RequestLogger(&formatter{logger: logger})
}

type formatter struct {
	logger *slog.Logger
}

func (f *formatter) NewLogEntry(r *http.Request) chimw.LogEntry {
	return &entry{logger: f.logger.With(
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimw.GetReqID(r.Context()),
	)}
}

type entry struct {
	logger *slog.Logger
}

func (e *entry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	e.logger.Debug("request",
		"status", status,
		"bytes", bytes,
		"elapsed", elapsed,
	)
}

func (e *entry) Panic(v interface{}, stack []byte) {
	e.logger.Error("request panic", "panic", v, "stack", string(stack))
}
