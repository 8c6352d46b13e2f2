package ws

import (
	"log/slog"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
)

type Hub struct {
	// mu orders channel close in Unregister against sends in Broadcast.
	mu      sync.RWMutex
	clients *xsync.Map[*Client, struct{}]
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: xsync.NewMap[*Client, struct{}](),
		logger:  logger,
	}
}

func (h *Hub) Register(c *Client) {
	h.clients.Store(c, struct{}{})
	h.logger.Debug("ws register", "clients", h.clients.Size())
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, loaded := h.clients.LoadAndDelete(c); !loaded {
		return
	}
	close(c.Send)
	h.logger.Debug("ws unregister", "clients", h.clients.Size())
}

func (h *Hub) Count() int {
	return h.clients.Size()
}

// Broadcast queues data for every client. Clients with a full buffer
// miss the message.
func (h *Hub) Broadcast(data []byte) {
	if data == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	h.clients.Range(func(c *Client, _ struct{}) bool {
		select {
		case c.Send <- data:
			sent++
		default:
			h.logger.Warn("ws dropped message")
		}
		return true
	})

	h.logger.Debug("ws broadcast", "recipients", sent)
}
