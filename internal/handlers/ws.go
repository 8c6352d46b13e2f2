package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/trapdata/companion/components/pages"
	"github.com/trapdata/companion/internal/view"
	"github.com/trapdata/companion/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", "err", err)
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register(client)
	go client.WritePump()

	client.ReadPump()
}

// StatePusher returns a view change listener that renders the message
// fragment and sends it to every open page.
func StatePusher(hub *ws.Hub, logger *slog.Logger) func(view.State) {
	return func(st view.State) {
		var buf bytes.Buffer
		if err := pages.Message(st, true).Render(context.Background(), &buf); err != nil {
			logger.Error("render message fragment", "err", err)
			return
		}
		hub.Broadcast(buf.Bytes())
	}
}
