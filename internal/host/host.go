package host

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trapdata/companion/internal/bridge"
)

var _ bridge.Host = (*API)(nil)

// API is the desktop side of the bridge. Every message from the page is
// logged and answered with a PONG carrying the host's Unix time.
type API struct {
	logger *slog.Logger
	now    func() time.Time

	mu       sync.RWMutex
	receiver bridge.Receiver

	received atomic.Int64
}

func New(logger *slog.Logger) *API {
	return &API{logger: logger, now: time.Now}
}

// NewWithClock is New with a fixed clock, for tests.
func NewWithClock(logger *slog.Logger, now func() time.Time) *API {
	return &API{logger: logger, now: now}
}

func (a *API) SendMessage(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.received.Add(1)
	a.logger.Info("message from view", "text", text)

	a.mu.RLock()
	fn := a.receiver
	a.mu.RUnlock()

	if fn == nil {
		a.logger.Debug("no receiver installed, reply dropped")
		return nil
	}

	fn(PongMessage(a.now()))
	return nil
}

func (a *API) SetReceiver(fn bridge.Receiver) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.receiver = fn
}

// Received reports how many messages the view has sent.
func (a *API) Received() int64 {
	return a.received.Load()
}

func PongMessage(t time.Time) string {
	return fmt.Sprintf("PONG (%d)", t.Unix())
}
